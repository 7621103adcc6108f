package formtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-specform/pkg/dict"
	"github.com/goliatone/go-specform/pkg/spec"
)

// Error reports a grammar problem at a 1-based line of the form text.
type Error struct {
	Line   int
	Field  string
	Reason string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("formtext: line %d: %s: %s", e.Line, e.Field, e.Reason)
	}
	return fmt.Sprintf("formtext: line %d: %s", e.Line, e.Reason)
}

type block struct {
	field  spec.Field
	line   int
	values []string
	blanks int
}

// Parse reads form text against def and returns the flat dictionary the
// server would have sent for it: scalars and text under the field tag, list
// elements under tag plus position. Keys use the tag as spelled in def.
//
// Lines starting with '#' are comments. A field starts with "Tag:" in column
// zero, optionally followed by a value on the same line. Indented lines
// continue the current field. Required fields are not enforced.
func Parse(def spec.Definition, text string) (dict.Dict, error) {
	out := dict.Dict{}
	seen := make(map[string]struct{}, len(def))
	var current *block

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		raw = strings.TrimSuffix(raw, "\r")

		if strings.TrimSpace(raw) == "" {
			if current != nil && current.field.IsText() && len(current.values) > 0 {
				current.blanks++
			}
			continue
		}

		switch raw[0] {
		case '\t', ' ':
			if current == nil {
				return nil, &Error{Line: lineNo, Reason: "value outside of a field"}
			}
			current.add(continuation(raw))
			continue
		case '#':
			continue
		}

		if err := current.flush(&out); err != nil {
			return nil, err
		}

		colon := strings.IndexByte(raw, ':')
		if colon <= 0 {
			return nil, &Error{Line: lineNo, Reason: fmt.Sprintf("expected \"Tag:\", got %q", raw)}
		}
		name := raw[:colon]
		field, ok := def.Lookup(name)
		if !ok {
			return nil, &Error{Line: lineNo, Field: name, Reason: "unknown field"}
		}
		if _, dup := seen[field.Tag]; dup {
			return nil, &Error{Line: lineNo, Field: field.Tag, Reason: "field appears more than once"}
		}
		seen[field.Tag] = struct{}{}

		current = &block{field: field, line: lineNo}
		if rest := strings.TrimSpace(raw[colon+1:]); rest != "" {
			current.values = append(current.values, rest)
		}
	}

	if err := current.flush(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// continuation strips the indentation of a continuation line: one tab, or
// the leading spaces when the line is space indented.
func continuation(raw string) string {
	if strings.HasPrefix(raw, "\t") {
		return raw[1:]
	}
	return strings.TrimLeft(raw, " ")
}

func (b *block) add(value string) {
	for ; b.blanks > 0; b.blanks-- {
		b.values = append(b.values, "")
	}
	b.values = append(b.values, value)
}

func (b *block) flush(out *dict.Dict) error {
	if b == nil {
		return nil
	}
	tag := b.field.Tag

	switch {
	case b.field.IsList():
		n := 0
		for _, value := range b.values {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			out.Add(tag+strconv.Itoa(n), value)
			n++
		}
	case b.field.IsText():
		if len(b.values) == 0 {
			return nil
		}
		out.Add(tag, strings.Join(b.values, "\n")+"\n")
	default:
		var value string
		for _, candidate := range b.values {
			candidate = strings.TrimSpace(candidate)
			if candidate == "" {
				continue
			}
			if value != "" {
				return &Error{Line: b.line, Field: tag, Reason: "field takes a single value"}
			}
			value = candidate
		}
		if value != "" {
			out.Add(tag, value)
		}
	}
	return nil
}
