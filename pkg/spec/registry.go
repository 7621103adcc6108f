package spec

import (
	"errors"
	"sort"
)

// Registry stores spec definitions by record type. Type names are case
// sensitive. Definitions are validated lazily, when Definition parses them.
type Registry struct {
	defs map[string]string
}

// NewRegistry returns a registry seeded with the built-in definitions.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Reset()
	return r
}

// Reset discards every definition and reloads the built-in table.
func (r *Registry) Reset() {
	r.defs = make(map[string]string, len(builtinDefinitions))
	for _, entry := range builtinDefinitions {
		r.defs[entry.Type] = entry.Definition
	}
}

// Define stores the definition for typ, replacing any previous one.
func (r *Registry) Define(typ, definition string) {
	if r.defs == nil {
		r.defs = make(map[string]string)
	}
	r.defs[typ] = definition
}

// Lookup returns the raw definition text for typ.
func (r *Registry) Lookup(typ string) (string, bool) {
	if r == nil {
		return "", false
	}
	def, ok := r.defs[typ]
	return def, ok
}

// Has reports whether a definition is registered for typ.
func (r *Registry) Has(typ string) bool {
	_, ok := r.Lookup(typ)
	return ok
}

// Types returns the registered record types in sorted order.
func (r *Registry) Types() []string {
	if r == nil {
		return nil
	}
	types := make([]string, 0, len(r.defs))
	for typ := range r.defs {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Definition resolves and parses the definition for typ. A missing type
// yields *UnknownSchemaError and a malformed one *SchemaError; the stored text
// is left untouched either way.
func (r *Registry) Definition(typ string) (Definition, error) {
	text, ok := r.Lookup(typ)
	if !ok {
		return nil, &UnknownSchemaError{Type: typ}
	}
	def, err := Parse(text)
	if err != nil {
		var schemaErr *SchemaError
		if errors.As(err, &schemaErr) {
			schemaErr.Type = typ
		}
		return nil, err
	}
	return def, nil
}

// Fields returns the lowercase to canonical tag table for typ.
func (r *Registry) Fields(typ string) (map[string]string, error) {
	def, err := r.Definition(typ)
	if err != nil {
		return nil, err
	}
	return def.Names(), nil
}

// Builtin returns the built-in definition for typ, independent of any
// registry state.
func Builtin(typ string) (string, bool) {
	for _, entry := range builtinDefinitions {
		if entry.Type == typ {
			return entry.Definition, true
		}
	}
	return "", false
}
