package tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/gingerlang/ginger/internal/catalog"
	"github.com/gingerlang/ginger/internal/evaluator"
	"github.com/gingerlang/ginger/internal/lexer"
	"github.com/gingerlang/ginger/internal/parser"
	"github.com/gingerlang/ginger/internal/pipeline"
	"github.com/gingerlang/ginger/internal/report"
	"github.com/gingerlang/ginger/internal/typecheck"
)

// TestFixtures runs every txtar archive under fixtures/ through the full
// pipeline and compares the rendered run report with the archive's want
// file. An archive containing a "fail" file is expected to exit with
// errors.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("fixtures", "*.txtar"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found")
	}

	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			archive := txtar.Parse(data)

			files := make(map[string]string)
			for _, f := range archive.Files {
				files[f.Name] = string(f.Data)
			}
			for _, required := range []string{"catalog.ginger", "code.ginger", "want"} {
				if _, ok := files[required]; !ok {
					t.Fatalf("fixture is missing %s", required)
				}
			}
			_, wantFail := files["fail"]

			ctx := pipeline.NewPipelineContext(files["code.ginger"])
			ctx.FilePath = "code.ginger"
			ctx.CatalogSource = files["catalog.ginger"]
			ctx.CatalogPath = "catalog.ginger"

			mapping := typecheck.DefaultMapping()
			final := pipeline.New(
				&catalog.LoaderProcessor{Builtins: mapping},
				&lexer.LexerProcessor{},
				&parser.ParserProcessor{},
				&typecheck.CheckerProcessor{Mapping: mapping},
				&evaluator.EvaluatorProcessor{Registry: evaluator.Builtins},
			).Run(ctx)

			var out bytes.Buffer
			ok := report.New(&out, false).Write(final)

			if ok == wantFail {
				t.Errorf("run ok = %v, want fail = %v", ok, wantFail)
			}
			if got := out.String(); got != files["want"] {
				t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", got, files["want"])
			}
		})
	}
}
