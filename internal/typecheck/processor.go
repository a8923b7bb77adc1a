package typecheck

import (
	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/catalog"
	"github.com/gingerlang/ginger/internal/pipeline"
)

type CheckerProcessor struct {
	Mapping TypeMapping
}

func (cp *CheckerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || len(ctx.Errors) > 0 {
		return ctx
	}

	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return ctx
	}
	cat, ok := ctx.Catalog.(*catalog.Catalog)
	if !ok {
		return ctx
	}

	checker := New(cat, cp.Mapping)
	checked, err := checker.Check(program)
	if err != nil {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	ctx.CheckedCalls = checked
	return ctx
}
