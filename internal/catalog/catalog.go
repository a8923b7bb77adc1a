package catalog

import "sort"

// FunctionSignature declares a callable function: positional parameter
// types, a single return type and optional free-text documentation.
type FunctionSignature struct {
	Name        string
	Params      []string // declared parameter type names, order significant
	Return      string
	Description string
}

// Catalog is the declarative registry of types and function signatures
// defining what may be called. It is built in a single load pass and
// read-only afterwards.
type Catalog struct {
	Name  string // optional display name from a `catalog <Name>` header
	types map[string]bool
	funcs map[string]*FunctionSignature
}

func newCatalog() *Catalog {
	return &Catalog{
		types: make(map[string]bool),
		funcs: make(map[string]*FunctionSignature),
	}
}

// Lookup resolves a function signature by name.
func (c *Catalog) Lookup(name string) (*FunctionSignature, bool) {
	sig, ok := c.funcs[name]
	return sig, ok
}

// HasType reports whether a type name was declared via `type`.
func (c *Catalog) HasType(name string) bool {
	return c.types[name]
}

// Functions returns all signatures sorted by name.
func (c *Catalog) Functions() []*FunctionSignature {
	names := make([]string, 0, len(c.funcs))
	for name := range c.funcs {
		names = append(names, name)
	}
	sort.Strings(names)

	sigs := make([]*FunctionSignature, 0, len(names))
	for _, name := range names {
		sigs = append(sigs, c.funcs[name])
	}
	return sigs
}

// Types returns all declared type names, sorted.
func (c *Catalog) Types() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
