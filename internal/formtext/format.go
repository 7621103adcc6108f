package formtext

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-specform/pkg/spec"
)

// ErrLineBreak is returned by Format when a scalar or list value contains a
// line break. Written out, the remainder would start a new line and read
// back as another field or list entry.
var ErrLineBreak = errors.New("value contains a line break")

// Format renders the values supplied by src as form text, one block per
// field in definition order. Fields with no value are left out.
//
// The output follows the server's form conventions, so Parse of the result
// does not always give back the source values exactly:
//   - list fields stop at the first position src reports absent, so entries
//     after a gap are not written;
//   - Parse trims surrounding whitespace from scalar values and list entries
//     and drops blank list entries;
//   - text values gain a trailing newline when Parse reads them back.
//
// Scalar and list values must fit on one line; a value with '\n' or '\r'
// fails with an error wrapping ErrLineBreak. Text fields take any number of
// lines.
func Format(def spec.Definition, src LineSource) (string, error) {
	var b strings.Builder
	for _, field := range def {
		switch {
		case field.IsList():
			var items []string
			for pos := 0; ; pos++ {
				item, ok := src.Line(field, pos)
				if !ok {
					break
				}
				if hasLineBreak(item) {
					return "", fmt.Errorf("formtext: %s entry %d: %w", field.Tag, pos, ErrLineBreak)
				}
				items = append(items, item)
			}
			if len(items) == 0 {
				continue
			}
			b.WriteString(field.Tag)
			b.WriteString(":\n")
			for _, item := range items {
				writeIndented(&b, item)
			}
			b.WriteByte('\n')
		case field.IsText():
			value, ok := src.Line(field, 0)
			if !ok || value == "" {
				continue
			}
			b.WriteString(field.Tag)
			b.WriteString(":\n")
			value = strings.ReplaceAll(value, "\r\n", "\n")
			for _, line := range strings.Split(strings.TrimSuffix(value, "\n"), "\n") {
				writeIndented(&b, line)
			}
			b.WriteByte('\n')
		default:
			value, ok := src.Line(field, 0)
			if !ok || value == "" {
				continue
			}
			if hasLineBreak(value) {
				return "", fmt.Errorf("formtext: %s: %w", field.Tag, ErrLineBreak)
			}
			b.WriteString(field.Tag)
			b.WriteString(":\t")
			b.WriteString(value)
			b.WriteString("\n\n")
		}
	}
	return b.String(), nil
}

func hasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

func writeIndented(b *strings.Builder, line string) {
	b.WriteByte('\t')
	b.WriteString(line)
	b.WriteByte('\n')
}
