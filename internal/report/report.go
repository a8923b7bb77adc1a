// Package report renders the run report: one line per call pairing the
// call's source form with its result or failure. The exact presentation
// belongs to the driver, not the core phases.
package report

import (
	"fmt"
	"io"

	"github.com/gingerlang/ginger/internal/evaluator"
	"github.com/gingerlang/ginger/internal/pipeline"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

type Writer struct {
	out   io.Writer
	color bool
}

func New(out io.Writer, color bool) *Writer {
	return &Writer{out: out, color: color}
}

// Write prints warnings, then either the per-call results or the errors
// that stopped the run. It returns true when the run succeeded.
func (w *Writer) Write(ctx *pipeline.PipelineContext) bool {
	for _, warn := range ctx.Warnings {
		fmt.Fprintf(w.out, "%s\n", w.paint(ansiYellow, "warning: "+warn.Error()))
	}

	if len(ctx.Errors) > 0 {
		for _, err := range ctx.Errors {
			fmt.Fprintf(w.out, "%s\n", w.paint(ansiRed, err.Error()))
		}
		return false
	}

	results, ok := ctx.Results.([]evaluator.Result)
	if !ok {
		return true
	}
	for _, res := range results {
		fmt.Fprintf(w.out, "%s => %s : %s\n",
			res.Source, w.paint(ansiGreen, res.Value.Inspect()), res.ReturnType)
	}
	return true
}

func (w *Writer) paint(color, s string) string {
	if !w.color {
		return s
	}
	return color + s + ansiReset
}
