// Package text renders forms in the tagged text grammar servers accept as
// command input.
package text

import (
	"context"
	"fmt"

	"github.com/goliatone/go-specform/internal/formtext"
	"github.com/goliatone/go-specform/pkg/render"
)

// Renderer writes the record of a form as form text.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns a form text renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string {
	return "text"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render formats the fields of form that survive options.Subset. Labels and
// errors do not apply to form text.
func (r *Renderer) Render(_ context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if form.Record == nil {
		return nil, fmt.Errorf("text renderer: record is nil")
	}
	render.ApplySubset(&form, options.Subset)
	text, err := formtext.Format(form.Definition, formtext.FromRecord(form.Record))
	if err != nil {
		return nil, fmt.Errorf("text renderer: %w", err)
	}
	return []byte(text), nil
}
