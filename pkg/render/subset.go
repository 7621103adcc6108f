package render

import (
	"strings"

	"github.com/goliatone/go-specform/pkg/spec"
)

// FieldSubset narrows the fields a renderer shows. The zero value keeps
// everything.
type FieldSubset struct {
	// Tags keeps only the named fields (any case). Empty keeps all.
	Tags []string
	// Writable drops read-only fields.
	Writable bool
	// Populated drops fields the record holds no value for.
	Populated bool
}

// Empty reports whether the subset filters nothing.
func (s FieldSubset) Empty() bool {
	return len(s.Tags) == 0 && !s.Writable && !s.Populated
}

// ApplySubset removes the fields of form's definition that do not match
// subset. The record is left untouched so hidden fields still round trip.
func ApplySubset(form *Form, subset FieldSubset) {
	if form == nil || subset.Empty() {
		return
	}

	var wanted map[string]struct{}
	if len(subset.Tags) > 0 {
		wanted = make(map[string]struct{}, len(subset.Tags))
		for _, tag := range subset.Tags {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				wanted[strings.ToLower(trimmed)] = struct{}{}
			}
		}
	}

	kept := make(spec.Definition, 0, len(form.Definition))
	for _, field := range form.Definition {
		if wanted != nil {
			if _, ok := wanted[strings.ToLower(field.Tag)]; !ok {
				continue
			}
		}
		if subset.Writable && field.ReadOnly {
			continue
		}
		if subset.Populated && !form.Record.Has(form.Record.Canonical(field.Tag)) {
			continue
		}
		kept = append(kept, field)
	}
	form.Definition = kept
}
