package evaluator

import (
	"github.com/gingerlang/ginger/internal/pipeline"
	"github.com/gingerlang/ginger/internal/typecheck"
)

type EvaluatorProcessor struct {
	Registry Registry
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if len(ctx.Errors) > 0 {
		return ctx
	}
	checked, ok := ctx.CheckedCalls.([]typecheck.CheckedCall)
	if !ok {
		return ctx
	}

	eval := New(ep.Registry)
	results, err := eval.Eval(checked)
	if err != nil {
		if err.File == "" {
			err.File = ctx.FilePath
		}
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	ctx.Results = results
	return ctx
}
