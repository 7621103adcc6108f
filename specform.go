// Package specform converts between tagged form text, server protocol
// dictionaries and structured records, and renders records for people.
//
// The root package wires the building blocks together; the pieces live in
// pkg/spec (definitions), pkg/record (records and the dictionary builder),
// pkg/forms (parse, format and protocol conversion) and pkg/render with its
// renderers.
package specform

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/renderers/data"
	"github.com/goliatone/go-specform/pkg/renderers/html"
	"github.com/goliatone/go-specform/pkg/renderers/text"
)

// RenderOptions describes per-request overrides renderers use for labels,
// errors and field subsets.
type RenderOptions = render.RenderOptions

// FieldSubset aliases render.FieldSubset for callers rendering part of a
// form.
type FieldSubset = render.FieldSubset

// NewManager exposes the forms manager constructor from the top-level module.
func NewManager(options ...forms.Option) *forms.Manager {
	return forms.New(options...)
}

// NewRenderers returns a registry holding the non-interactive renderers:
// text, json, yaml and html.
func NewRenderers(htmlOptions ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(
		text.New(),
		data.NewJSON(),
		data.NewYAML(),
		htmlRenderer,
	), nil
}

// Render resolves typ against the manager's registry and renders rec with
// the named renderer.
func Render(ctx context.Context, manager *forms.Manager, renderers *render.Registry, name, typ string, rec *record.Record, options RenderOptions) ([]byte, error) {
	if manager == nil || renderers == nil {
		return nil, fmt.Errorf("specform: manager and renderers are required")
	}
	form, err := render.NewForm(manager.Registry(), typ, rec)
	if err != nil {
		return nil, err
	}
	return renderers.Render(ctx, name, form, options)
}

// RenderText parses form text of typ and renders the result with the named
// renderer.
func RenderText(ctx context.Context, manager *forms.Manager, renderers *render.Registry, name, typ, input string, options RenderOptions) ([]byte, error) {
	rec, err := manager.ParseForm(typ, input)
	if err != nil {
		return nil, err
	}
	return Render(ctx, manager, renderers, name, typ, rec, options)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
