package openapi

import (
	"context"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-specform/pkg/spec"
)

// Option customises the generated document.
type Option func(*openapi3.T)

// WithInfo sets the document title and version.
func WithInfo(title, version string) Option {
	return func(doc *openapi3.T) {
		if title != "" {
			doc.Info.Title = title
		}
		if version != "" {
			doc.Info.Version = version
		}
	}
}

// Document builds an OpenAPI document whose components hold one schema per
// record type. With no types, every type the registry knows is exported.
// The result is validated before it is returned.
func Document(ctx context.Context, registry *spec.Registry, types []string, options ...Option) (*openapi3.T, error) {
	if registry == nil {
		return nil, fmt.Errorf("openapi: registry is required")
	}
	if len(types) == 0 {
		types = registry.Types()
	}

	doc := &openapi3.T{
		OpenAPI:    "3.0.3",
		Info:       &openapi3.Info{Title: "specform record types", Version: "1.0.0"},
		Paths:      openapi3.NewPaths(),
		Components: &openapi3.Components{Schemas: make(openapi3.Schemas, len(types))},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(doc)
	}

	for _, typ := range types {
		schema, err := SchemaFor(registry, typ)
		if err != nil {
			return nil, err
		}
		doc.Components.Schemas[typ] = openapi3.NewSchemaRef("", schema)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return doc, nil
}

// Load parses a JSON or YAML OpenAPI document.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// Definitions converts every component schema of doc into a definition keyed
// by component name.
func Definitions(doc *openapi3.T) (map[string]spec.Definition, error) {
	if doc == nil || doc.Components == nil {
		return nil, nil
	}
	out := make(map[string]spec.Definition, len(doc.Components.Schemas))
	for name, ref := range doc.Components.Schemas {
		if ref == nil || ref.Value == nil {
			continue
		}
		def, err := FromSchema(ref.Value)
		if err != nil {
			return nil, fmt.Errorf("openapi: component %s: %w", name, err)
		}
		out[name] = def
	}
	return out, nil
}

// Register defines every component schema of doc in registry and returns the
// registered type names, sorted.
func Register(registry *spec.Registry, doc *openapi3.T) ([]string, error) {
	defs, err := Definitions(doc)
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(defs))
	for typ, def := range defs {
		registry.Define(typ, def.String())
		types = append(types, typ)
	}
	sort.Strings(types)
	return types, nil
}
