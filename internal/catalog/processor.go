package catalog

import (
	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/pipeline"
)

// LoaderProcessor is the pipeline stage that loads the catalog. It runs
// first; a catalog error stops the pipeline before any code is touched.
type LoaderProcessor struct {
	Builtins BuiltinTypes
}

func (lp *LoaderProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	cat, diags := Load(ctx.CatalogSource, lp.Builtins)

	for _, d := range diags {
		if d.File == "" {
			d.File = ctx.CatalogPath
		}
		if d.Severity == diagnostics.SeverityWarning {
			ctx.Warnings = append(ctx.Warnings, d)
		} else {
			ctx.Errors = append(ctx.Errors, d)
		}
	}

	if cat != nil {
		ctx.Catalog = cat
	}
	return ctx
}
