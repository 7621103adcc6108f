package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
)

// Form pairs a record with the schema of its type.
type Form struct {
	Type       string
	Definition spec.Definition
	Record     *record.Record
}

// NewForm resolves the definition for typ from registry. A nil rec renders as
// an empty form.
func NewForm(registry *spec.Registry, typ string, rec *record.Record) (Form, error) {
	if registry == nil {
		return Form{}, fmt.Errorf("render: registry is required")
	}
	def, err := registry.Definition(typ)
	if err != nil {
		return Form{}, fmt.Errorf("render: %w", err)
	}
	if rec == nil {
		rec = record.New()
	}
	return Form{Type: typ, Definition: def, Record: rec}, nil
}

// Renderer converts a Form into a byte representation (form text, HTML,
// JSON, an interactive session's result, ...).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
