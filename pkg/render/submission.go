package render

import (
	"fmt"
	"sort"
	"strings"
)

// HiddenTypeField names the hidden input HTML forms use to carry the record
// type back on submission.
const HiddenTypeField = "_type"

// HiddenField represents a hidden form input emitted alongside the visible
// fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token.
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MergeHiddenFields returns a copy of base with the provided fields applied.
// Empty names are ignored; later fields win on name collisions.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	if len(base) == 0 && len(fields) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			out[trimmed] = value
		}
	}
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		out[name] = field.Value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields trims and sorts hidden fields by name for deterministic
// rendering. Empty names are dropped. Names that trim to the same value
// collapse into one field; the value of the untrimmed spelling wins.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	if len(fields) == 0 {
		return nil
	}
	raw := make([]string, 0, len(fields))
	for name := range fields {
		raw = append(raw, name)
	}
	sort.Slice(raw, func(i, j int) bool {
		ti, tj := strings.TrimSpace(raw[i]), strings.TrimSpace(raw[j])
		if ti != tj {
			return ti < tj
		}
		// padded spellings first, the exact one last
		pi, pj := raw[i] != ti, raw[j] != tj
		if pi != pj {
			return pi
		}
		return raw[i] < raw[j]
	})

	result := make([]HiddenField, 0, len(raw))
	for _, name := range raw {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if n := len(result); n > 0 && result[n-1].Name == trimmed {
			result[n-1].Value = fields[name]
			continue
		}
		result = append(result, HiddenField{Name: trimmed, Value: fields[name]})
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
