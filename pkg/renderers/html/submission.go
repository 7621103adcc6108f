package html

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/spec"
)

// Decode turns a submitted form back into a record. The record type comes
// from the hidden type field. Read-only fields are ignored; list fields are
// split on newlines with blank lines dropped.
func Decode(registry *spec.Registry, values url.Values) (string, *record.Record, error) {
	typ := strings.TrimSpace(values.Get(render.HiddenTypeField))
	if typ == "" {
		return "", nil, fmt.Errorf("html: submission missing %s", render.HiddenTypeField)
	}
	form, err := render.NewForm(registry, typ, nil)
	if err != nil {
		return "", nil, fmt.Errorf("html: decode submission: %w", err)
	}

	rec := form.Record
	rec.SetNames(form.Definition.Names())
	for _, field := range form.Definition {
		if field.ReadOnly {
			continue
		}
		raw, ok := values[field.Tag]
		if !ok || len(raw) == 0 {
			continue
		}
		value := strings.ReplaceAll(raw[0], "\r\n", "\n")

		switch {
		case field.IsList():
			var items []string
			for _, line := range strings.Split(value, "\n") {
				if line = strings.TrimSpace(line); line != "" {
					items = append(items, line)
				}
			}
			if len(items) > 0 {
				record.SetList(rec, field.Tag, items)
			}
		case field.IsText():
			if strings.TrimSpace(value) == "" {
				continue
			}
			if !strings.HasSuffix(value, "\n") {
				value += "\n"
			}
			record.SetScalar(rec, field.Tag, value)
		default:
			if value = strings.TrimSpace(value); value != "" {
				record.SetScalar(rec, field.Tag, value)
			}
		}
	}
	return typ, rec, nil
}
