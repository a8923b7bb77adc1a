package evaluator

import (
	"fmt"
	"strings"

	"github.com/gingerlang/ginger/internal/config"
)

func init() {
	// Verify all builtins have an implementation attached
	for name, builtin := range Builtins {
		if builtin.Fn == nil {
			panic(fmt.Sprintf("builtin %q is missing Fn", name))
		}
	}
}

type BuiltinFunction func(args ...Object) Object

type Builtin struct {
	Fn BuiltinFunction
}

// Registry resolves a function name to its builtin implementation. It is
// an injected collaborator of the evaluator: the catalog declares what
// may be called, the registry supplies the actual computation.
type Registry map[string]*Builtin

func (r Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r[name]
	return b, ok
}

// Builtins is the default registry. Every entry expects the argument
// shapes the default catalog mapping admits; the shape guards stay in
// place because the registry is swappable and not every caller runs the
// type checker first.
var Builtins = Registry{
	config.AddFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.AddFuncName, args)
		if err != nil {
			return err
		}
		return &Integer{Value: a + b}
	}},
	config.SubFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.SubFuncName, args)
		if err != nil {
			return err
		}
		return &Integer{Value: a - b}
	}},
	config.MulFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.MulFuncName, args)
		if err != nil {
			return err
		}
		return &Integer{Value: a * b}
	}},
	config.DivFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.DivFuncName, args)
		if err != nil {
			return err
		}
		if b == 0 {
			return newError("%s: division by zero", config.DivFuncName)
		}
		return &Integer{Value: a / b}
	}},
	config.NegFuncName: {Fn: func(args ...Object) Object {
		a, err := oneInt(config.NegFuncName, args)
		if err != nil {
			return err
		}
		return &Integer{Value: -a}
	}},
	config.MaxFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.MaxFuncName, args)
		if err != nil {
			return err
		}
		if a > b {
			return &Integer{Value: a}
		}
		return &Integer{Value: b}
	}},
	config.MinFuncName: {Fn: func(args ...Object) Object {
		a, b, err := twoInts(config.MinFuncName, args)
		if err != nil {
			return err
		}
		if a < b {
			return &Integer{Value: a}
		}
		return &Integer{Value: b}
	}},
	config.ConcatFuncName: {Fn: func(args ...Object) Object {
		if len(args) != 2 {
			return wrongArgCount(config.ConcatFuncName, 2, len(args))
		}
		a, ok := args[0].(*String)
		if !ok {
			return wrongArgType(config.ConcatFuncName, 1, "String", args[0])
		}
		b, ok := args[1].(*String)
		if !ok {
			return wrongArgType(config.ConcatFuncName, 2, "String", args[1])
		}
		return &String{Value: a.Value + b.Value}
	}},
	config.RepeatFuncName: {Fn: func(args ...Object) Object {
		if len(args) != 2 {
			return wrongArgCount(config.RepeatFuncName, 2, len(args))
		}
		s, ok := args[0].(*String)
		if !ok {
			return wrongArgType(config.RepeatFuncName, 1, "String", args[0])
		}
		n, ok := args[1].(*Integer)
		if !ok {
			return wrongArgType(config.RepeatFuncName, 2, "Int", args[1])
		}
		if n.Value < 0 {
			return newError("%s: negative count %d", config.RepeatFuncName, n.Value)
		}
		return &String{Value: strings.Repeat(s.Value, int(n.Value))}
	}},
	config.LengthFuncName: {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return wrongArgCount(config.LengthFuncName, 1, len(args))
		}
		s, ok := args[0].(*String)
		if !ok {
			return wrongArgType(config.LengthFuncName, 1, "String", args[0])
		}
		return &Integer{Value: int64(len([]rune(s.Value)))}
	}},
	config.UpperFuncName: {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return wrongArgCount(config.UpperFuncName, 1, len(args))
		}
		s, ok := args[0].(*String)
		if !ok {
			return wrongArgType(config.UpperFuncName, 1, "String", args[0])
		}
		return &String{Value: strings.ToUpper(s.Value)}
	}},
	config.NotFuncName: {Fn: func(args ...Object) Object {
		if len(args) != 1 {
			return wrongArgCount(config.NotFuncName, 1, len(args))
		}
		b, ok := args[0].(*Boolean)
		if !ok {
			return wrongArgType(config.NotFuncName, 1, "Bool", args[0])
		}
		return &Boolean{Value: !b.Value}
	}},
}

func oneInt(name string, args []Object) (int64, *Error) {
	if len(args) != 1 {
		return 0, wrongArgCount(name, 1, len(args))
	}
	a, ok := args[0].(*Integer)
	if !ok {
		return 0, wrongArgType(name, 1, "Int", args[0])
	}
	return a.Value, nil
}

func twoInts(name string, args []Object) (int64, int64, *Error) {
	if len(args) != 2 {
		return 0, 0, wrongArgCount(name, 2, len(args))
	}
	a, ok := args[0].(*Integer)
	if !ok {
		return 0, 0, wrongArgType(name, 1, "Int", args[0])
	}
	b, ok := args[1].(*Integer)
	if !ok {
		return 0, 0, wrongArgType(name, 2, "Int", args[1])
	}
	return a.Value, b.Value, nil
}

func wrongArgCount(name string, want, got int) *Error {
	return newError("%s: expected %d args, got %d", name, want, got)
}

func wrongArgType(name string, pos int, want string, got Object) *Error {
	return newError("%s: arg %d must be %s, got %s", name, pos, want, got.Type())
}
