package typecheck

import (
	"github.com/gingerlang/ginger/internal/ast"
	"github.com/gingerlang/ginger/internal/config"
)

// TypeMapping maps catalog type names to the literal kinds they accept.
// It is an injected capability: the checker consumes it via lookups and
// does not own the mapping's contents, so swapping the mapping changes
// the type semantics without touching the checker.
type TypeMapping interface {
	// Known reports whether the mapping recognizes the type name.
	Known(name string) bool
	// Accepts reports whether the type accepts a literal of the given kind.
	Accepts(name string, kind ast.LiteralKind) bool
}

// HostMapping is the table-backed TypeMapping used by the driver.
type HostMapping map[string][]ast.LiteralKind

func (m HostMapping) Known(name string) bool {
	_, ok := m[name]
	return ok
}

func (m HostMapping) Accepts(name string, kind ast.LiteralKind) bool {
	for _, k := range m[name] {
		if k == kind {
			return true
		}
	}
	return false
}

// DefaultMapping maps the built-in primitive type names onto the literal
// kinds the lexer produces.
func DefaultMapping() HostMapping {
	return HostMapping{
		config.IntTypeName:    {ast.KindInteger},
		config.FloatTypeName:  {ast.KindFloat},
		config.StringTypeName: {ast.KindString},
		config.BoolTypeName:   {ast.KindBoolean},
	}
}
