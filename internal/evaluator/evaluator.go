package evaluator

import (
	"fmt"

	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/typecheck"
)

// Result is the outcome of one evaluated call. ReturnType carries the
// signature's declared return type for reporting only; the value is
// never re-validated against it.
type Result struct {
	Source     string // the call's source form, e.g. add(1, 2)
	Value      Object
	ReturnType string
}

// Evaluator executes checked calls against a builtin registry. There is
// no environment and no state shared across calls: Ginger has no
// variables, and every call evaluates independently in source order.
type Evaluator struct {
	registry Registry
}

func New(registry Registry) *Evaluator {
	return &Evaluator{registry: registry}
}

// Eval executes the calls in order, failing fast. A checked call whose
// name has no registered builtin is an R001 error: the catalog and the
// registry disagree, which is a distinct failure class from type errors.
func (e *Evaluator) Eval(calls []typecheck.CheckedCall) ([]Result, *diagnostics.DiagnosticError) {
	results := make([]Result, 0, len(calls))
	for _, cc := range calls {
		builtin, ok := e.registry.Lookup(cc.Call.Name)
		if !ok {
			return nil, diagnostics.NewError(diagnostics.ErrR001, cc.Call.Token,
				fmt.Sprintf("no implementation registered for %q", cc.Call.Name))
		}

		args := make([]Object, 0, len(cc.Call.Args))
		for _, lit := range cc.Call.Args {
			args = append(args, literalObject(lit))
		}

		value := builtin.Fn(args...)
		if errObj, failed := value.(*Error); failed {
			return nil, diagnostics.NewError(diagnostics.ErrR002, cc.Call.Token, errObj.Message)
		}

		results = append(results, Result{
			Source:     cc.Call.String(),
			Value:      value,
			ReturnType: cc.Sig.Return,
		})
	}
	return results, nil
}

func literalObject(lit ast.Literal) Object {
	switch l := lit.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: l.Value}
	case *ast.FloatLiteral:
		return &Float{Value: l.Value}
	case *ast.StringLiteral:
		return &String{Value: l.Value}
	case *ast.BooleanLiteral:
		return &Boolean{Value: l.Value}
	default:
		return newError("unsupported literal kind %s", lit.Kind())
	}
}
