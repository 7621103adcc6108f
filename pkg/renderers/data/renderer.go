// Package data renders form records as JSON or YAML documents with keys in
// record order.
package data

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
)

// Encoding selects the document format.
type Encoding string

const (
	JSON Encoding = "json"
	YAML Encoding = "yaml"
)

type Option func(*Renderer)

// WithIndent sets the JSON indentation. An empty string emits compact JSON.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer encodes the record behind a form.
type Renderer struct {
	encoding Encoding
	indent   string
}

var _ render.Renderer = (*Renderer)(nil)

// NewJSON returns a renderer emitting indented JSON.
func NewJSON(options ...Option) *Renderer {
	return newRenderer(JSON, options)
}

// NewYAML returns a renderer emitting YAML.
func NewYAML(options ...Option) *Renderer {
	return newRenderer(YAML, options)
}

func newRenderer(encoding Encoding, options []Option) *Renderer {
	r := &Renderer{encoding: encoding, indent: "  "}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Renderer) Name() string {
	return string(r.encoding)
}

func (r *Renderer) ContentType() string {
	if r.encoding == YAML {
		return "application/yaml"
	}
	return "application/json"
}

// Render encodes form.Record. With a subset, only the record entries of the
// remaining fields are written.
func (r *Renderer) Render(_ context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if form.Record == nil {
		return nil, fmt.Errorf("%s renderer: record is nil", r.encoding)
	}
	rec := project(form, options.Subset)

	switch r.encoding {
	case YAML:
		out, err := yaml.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("yaml renderer: %w", err)
		}
		return out, nil
	default:
		raw, err := json.Marshal(rec)
		if err != nil {
			return nil, fmt.Errorf("json renderer: %w", err)
		}
		if r.indent == "" {
			return raw, nil
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", r.indent); err != nil {
			return nil, fmt.Errorf("json renderer: %w", err)
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
}

func project(form render.Form, subset render.FieldSubset) *record.Record {
	if subset.Empty() {
		return form.Record
	}
	render.ApplySubset(&form, subset)

	out := record.New()
	for _, field := range form.Definition {
		key := form.Record.Canonical(field.Tag)
		if v, ok := form.Record.Lookup(key); ok {
			out.Store(key, v)
		}
	}
	return out
}
