package typecheck

import (
	"fmt"

	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/catalog"
	"github.com/gingerlang/ginger/internal/diagnostics"
)

// CheckedCall is a CallExpression proven to match its catalog signature:
// the argument count equals the parameter count and every argument's
// literal kind maps to the declared type at its position.
type CheckedCall struct {
	Call *ast.CallExpression
	Sig  *catalog.FunctionSignature
}

// Checker validates call expressions against a loaded catalog. The check
// is purely nominal on literal kind vs declared type name: no coercion,
// no subtyping, no inference beyond the parser's kind classification.
type Checker struct {
	catalog *catalog.Catalog
	mapping TypeMapping
}

func New(cat *catalog.Catalog, mapping TypeMapping) *Checker {
	return &Checker{catalog: cat, mapping: mapping}
}

// Check validates calls in source order and fails fast at the first
// offending call. The Nth CheckedCall corresponds to the Nth call of the
// program.
func (c *Checker) Check(program *ast.Program) ([]CheckedCall, *diagnostics.DiagnosticError) {
	checked := make([]CheckedCall, 0, len(program.Calls))
	for _, call := range program.Calls {
		cc, err := c.checkCall(call)
		if err != nil {
			return nil, err
		}
		checked = append(checked, cc)
	}
	return checked, nil
}

func (c *Checker) checkCall(call *ast.CallExpression) (CheckedCall, *diagnostics.DiagnosticError) {
	sig, ok := c.catalog.Lookup(call.Name)
	if !ok {
		return CheckedCall{}, diagnostics.NewError(diagnostics.ErrT001, call.Token,
			fmt.Sprintf("unknown function %q", call.Name))
	}

	// Arity is a precondition to any per-position comparison.
	if len(call.Args) != len(sig.Params) {
		return CheckedCall{}, diagnostics.NewError(diagnostics.ErrT002, call.Token,
			fmt.Sprintf("%s: expected %d args, got %d", call.Name, len(sig.Params), len(call.Args)))
	}

	for i, arg := range call.Args {
		declared := sig.Params[i]
		if !c.mapping.Accepts(declared, arg.Kind()) {
			return CheckedCall{}, diagnostics.NewError(diagnostics.ErrT003, arg.GetToken(),
				fmt.Sprintf("%s: arg %d must be %s, got %s literal %s",
					call.Name, i+1, declared, arg.Kind(), arg.Inspect()))
		}
	}

	return CheckedCall{Call: call, Sig: sig}, nil
}
