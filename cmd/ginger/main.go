package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/gingerlang/ginger/internal/catalog"
	"github.com/gingerlang/ginger/internal/config"
	"github.com/gingerlang/ginger/internal/evaluator"
	"github.com/gingerlang/ginger/internal/lexer"
	"github.com/gingerlang/ginger/internal/parser"
	"github.com/gingerlang/ginger/internal/pipeline"
	"github.com/gingerlang/ginger/internal/project"
	"github.com/gingerlang/ginger/internal/report"
	"github.com/gingerlang/ginger/internal/typecheck"
)

func main() {
	// Catch panics and show user-friendly error
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv("DEBUG") == "1" {
				panic(r) // Re-panic to get stack trace
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			fmt.Fprintln(os.Stderr, "This is a bug. Please report it.")
			os.Exit(1)
		}
	}()

	var (
		projectPath = flag.String("project", "", "project file (default "+config.ProjectFileName+" if present)")
		catalogPath = flag.String("catalog", "", "catalog source file")
		codePath    = flag.String("code", "", "code source file")
		colorMode   = flag.String("color", "", "color output: auto, always or never")
	)
	flag.Parse()

	cfg, err := resolveConfig(*projectPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.Catalog = *catalogPath
	}
	if *codePath != "" {
		cfg.Code = *codePath
	}
	if flag.NArg() >= 1 {
		path := flag.Arg(0)
		if !isSourceFile(path) {
			fmt.Fprintf(os.Stderr, "Error: %s is not a %s file\n", path, config.SourceFileExt)
			os.Exit(1)
		}
		cfg.Code = path
	}
	if *colorMode != "" {
		cfg.Report.Color = *colorMode
	}

	catalogSource, err := os.ReadFile(cfg.Catalog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %s\n", err)
		os.Exit(1)
	}
	codeSource, err := os.ReadFile(cfg.Code)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading code: %s\n", err)
		os.Exit(1)
	}

	ctx := pipeline.NewPipelineContext(string(codeSource))
	ctx.FilePath = cfg.Code
	ctx.CatalogSource = string(catalogSource)
	ctx.CatalogPath = cfg.Catalog

	mapping := typecheck.DefaultMapping()
	pl := pipeline.New(
		&catalog.LoaderProcessor{Builtins: mapping},
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&typecheck.CheckerProcessor{Mapping: mapping},
		&evaluator.EvaluatorProcessor{Registry: evaluator.Builtins},
	)
	final := pl.Run(ctx)

	out := report.New(os.Stdout, useColor(cfg.Report.Color))
	if !out.Write(final) {
		fmt.Fprintf(os.Stderr, "run %s failed\n", final.RunID)
		os.Exit(1)
	}
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// resolveConfig loads the project file when one was named or when the
// default ginger.yaml exists; otherwise the built-in defaults apply.
func resolveConfig(path string) (*project.Config, error) {
	if path != "" {
		return project.Load(path)
	}
	if _, err := os.Stat(config.ProjectFileName); err == nil {
		return project.Load(config.ProjectFileName)
	}
	return project.Default(), nil
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
