package pipeline

import (
	"github.com/google/uuid"

	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is implemented by lexer.TokenStream.
type TokenStream interface {
	Next() token.Token
}

// PipelineContext is the shared state threaded through the stages.
// Catalog, CheckedCalls and Results are loosely typed to avoid import
// cycles with the packages that produce them; consumers assert the
// concrete type.
type PipelineContext struct {
	RunID string

	SourceCode string // code source text
	FilePath   string

	CatalogSource string
	CatalogPath   string

	TokenStream TokenStream
	AstRoot     ast.Node

	Catalog      interface{} // *catalog.Catalog
	CheckedCalls interface{} // []typecheck.CheckedCall
	Results      interface{} // []evaluator.Result

	Errors   []*diagnostics.DiagnosticError
	Warnings []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		RunID:      uuid.NewString(),
		SourceCode: sourceCode,
	}
}
