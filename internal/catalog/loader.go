package catalog

import (
	"fmt"
	"strings"

	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/token"
)

// BuiltinTypes reports type names recognized by the host type mapping
// even when not declared via `type`. Satisfied by typecheck.HostMapping.
type BuiltinTypes interface {
	Known(name string) bool
}

// Load parses catalog source text into a Catalog. The loader performs no
// I/O; the caller owns delivering the source string.
//
// The grammar is line-based and indentation-insensitive:
//
//	catalog <Name>          optional display name
//	type <Name>             declares a type (idempotent)
//	fn <name>               opens a function block
//	args: T1, T2, ...       positional parameter types (required)
//	return: T               single return type (required)
//	description: "..."      free text (optional)
//
// Blank lines and lines starting with // are ignored. Loading fails fast:
// the returned slice holds either exactly one error, or only warnings
// (currently C-W01 for declared-but-unreferenced types) alongside a valid
// Catalog.
func Load(src string, builtins BuiltinTypes) (*Catalog, []*diagnostics.DiagnosticError) {
	l := &loader{cat: newCatalog(), builtins: builtins}
	if err := l.run(src); err != nil {
		return nil, []*diagnostics.DiagnosticError{err}
	}
	return l.cat, l.warnings
}

type loader struct {
	cat      *Catalog
	builtins BuiltinTypes

	current    *FunctionSignature
	currentPos token.Token
	seenArgs   bool
	seenReturn bool

	order    []string // function declaration order
	sigPos   map[string]token.Token
	typePos  map[string]token.Token
	warnings []*diagnostics.DiagnosticError
}

func (l *loader) run(src string) *diagnostics.DiagnosticError {
	l.sigPos = make(map[string]token.Token)
	l.typePos = make(map[string]token.Token)

	for i, raw := range strings.Split(src, "\n") {
		pos := token.Token{Line: i + 1, Column: 1}
		line := strings.TrimSpace(raw)

		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		if name, ok := keyword(line, "catalog"); ok {
			l.cat.Name = name
			continue
		}

		if name, ok := keyword(line, "type"); ok {
			if err := l.closeBlock(); err != nil {
				return err
			}
			if name == "" {
				return diagnostics.NewError(diagnostics.ErrC001, pos, "type declaration requires a name")
			}
			// Redeclaration is idempotent.
			if !l.cat.types[name] {
				l.cat.types[name] = true
				l.typePos[name] = pos
			}
			continue
		}

		if name, ok := keyword(line, "fn"); ok {
			if err := l.closeBlock(); err != nil {
				return err
			}
			if name == "" {
				return diagnostics.NewError(diagnostics.ErrC001, pos, "fn declaration requires a name")
			}
			if _, dup := l.cat.funcs[name]; dup {
				return diagnostics.NewError(diagnostics.ErrC004, pos,
					fmt.Sprintf("duplicate function %q", name))
			}
			l.current = &FunctionSignature{Name: name}
			l.currentPos = pos
			l.seenArgs = false
			l.seenReturn = false
			l.cat.funcs[name] = l.current
			l.order = append(l.order, name)
			l.sigPos[name] = pos
			continue
		}

		key, rhs, keyed := keyedLine(line)
		if !keyed {
			return diagnostics.NewError(diagnostics.ErrC001, pos,
				fmt.Sprintf("unrecognized catalog line: %s", line))
		}
		if l.current == nil {
			return diagnostics.NewError(diagnostics.ErrC005, pos,
				fmt.Sprintf("%s: outside a fn block", key))
		}

		switch key {
		case "args":
			l.current.Params = splitTypeList(rhs)
			l.seenArgs = true
		case "return":
			if rhs == "" || strings.ContainsAny(rhs, ", \t") {
				return diagnostics.NewError(diagnostics.ErrC001, pos,
					"return: takes exactly one type name")
			}
			l.current.Return = rhs
			l.seenReturn = true
		case "description":
			l.current.Description = unquote(rhs)
		default:
			return diagnostics.NewError(diagnostics.ErrC001, pos,
				fmt.Sprintf("unrecognized catalog key: %s", key))
		}
	}

	if err := l.closeBlock(); err != nil {
		return err
	}
	if err := l.checkTypeRefs(); err != nil {
		return err
	}
	l.warnUnusedTypes()
	return nil
}

// closeBlock validates the open fn block, if any. args and return are
// mandatory by the time the block closes.
func (l *loader) closeBlock() *diagnostics.DiagnosticError {
	if l.current == nil {
		return nil
	}
	sig := l.current
	l.current = nil

	if !l.seenArgs {
		return diagnostics.NewError(diagnostics.ErrC002, l.currentPos,
			fmt.Sprintf("fn %s: args is required", sig.Name))
	}
	if !l.seenReturn {
		return diagnostics.NewError(diagnostics.ErrC002, l.currentPos,
			fmt.Sprintf("fn %s: return is required", sig.Name))
	}
	return nil
}

// checkTypeRefs runs after the full pass so `type` lines may appear
// anywhere in the source, including after the fn blocks that use them.
func (l *loader) checkTypeRefs() *diagnostics.DiagnosticError {
	for _, name := range l.order {
		sig := l.cat.funcs[name]
		for _, t := range sig.Params {
			if err := l.checkTypeRef(sig, t); err != nil {
				return err
			}
		}
		if err := l.checkTypeRef(sig, sig.Return); err != nil {
			return err
		}
	}
	return nil
}

func (l *loader) checkTypeRef(sig *FunctionSignature, t string) *diagnostics.DiagnosticError {
	if l.cat.types[t] {
		return nil
	}
	if l.builtins != nil && l.builtins.Known(t) {
		return nil
	}
	return diagnostics.NewError(diagnostics.ErrC003, l.sigPos[sig.Name],
		fmt.Sprintf("fn %s: unknown type %q", sig.Name, t))
}

func (l *loader) warnUnusedTypes() {
	referenced := make(map[string]bool)
	for _, sig := range l.cat.funcs {
		for _, t := range sig.Params {
			referenced[t] = true
		}
		referenced[sig.Return] = true
	}
	for _, t := range l.cat.Types() {
		if !referenced[t] {
			l.warnings = append(l.warnings, diagnostics.NewWarning(
				diagnostics.WarnCW01, l.typePos[t],
				fmt.Sprintf("type %s is declared but never referenced", t)))
		}
	}
}

// keyword matches `<kw> <rest>` lines and returns the trimmed rest.
func keyword(line, kw string) (string, bool) {
	if line == kw {
		return "", true
	}
	if strings.HasPrefix(line, kw+" ") || strings.HasPrefix(line, kw+"\t") {
		return strings.TrimSpace(line[len(kw)+1:]), true
	}
	return "", false
}

// keyedLine matches `<key>: <rhs>` lines.
func keyedLine(line string) (key, rhs string, ok bool) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

func splitTypeList(rhs string) []string {
	var types []string
	for _, part := range strings.Split(rhs, ",") {
		if t := strings.TrimSpace(part); t != "" {
			types = append(types, t)
		}
	}
	return types
}

// unquote strips exactly one pair of surrounding double quotes. Interior
// quotes are kept verbatim; there is no escape syntax in descriptions.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
