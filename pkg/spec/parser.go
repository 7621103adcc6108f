package spec

import (
	"fmt"
	"strconv"
	"strings"
)

const fragmentTerminator = ";;"

// Definition is the ordered field list of a parsed spec definition. Order is
// the declaration order and drives form formatting.
type Definition []Field

// Lookup finds a field by tag, ignoring case.
func (d Definition) Lookup(tag string) (Field, bool) {
	for _, field := range d {
		if strings.EqualFold(field.Tag, tag) {
			return field, true
		}
	}
	return Field{}, false
}

// Tags returns the canonical tags in declaration order.
func (d Definition) Tags() []string {
	tags := make([]string, len(d))
	for i, field := range d {
		tags[i] = field.Tag
	}
	return tags
}

// Names maps each lowercased tag to its canonical spelling so callers can
// address fields case-insensitively.
func (d Definition) Names() map[string]string {
	names := make(map[string]string, len(d))
	for _, field := range d {
		names[strings.ToLower(field.Tag)] = field.Tag
	}
	return names
}

// String renders the definition back into its textual grammar. Parse of the
// result yields an equal Definition.
func (d Definition) String() string {
	var b strings.Builder
	for _, field := range d {
		b.WriteString(field.String())
	}
	return b.String()
}

// Parse converts a definition string into its ordered fields. Every field
// fragment must be terminated by ";;". Unknown attributes are ignored so newer
// server definitions remain readable.
func Parse(text string) (Definition, error) {
	var (
		def    Definition
		seen   = make(map[string]struct{})
		offset int
	)

	for index := 0; ; index++ {
		rest := text[offset:]
		trimmed := strings.TrimLeft(rest, " \t\r\n")
		if trimmed == "" {
			break
		}
		start := offset + len(rest) - len(trimmed)

		end := strings.Index(trimmed, fragmentTerminator)
		if end < 0 {
			return nil, &SchemaError{Fragment: index, Offset: start, Reason: "unterminated field fragment"}
		}

		field, err := parseFragment(trimmed[:end])
		if err != nil {
			return nil, &SchemaError{Fragment: index, Offset: start, Reason: err.Error()}
		}

		key := strings.ToLower(field.Tag)
		if _, dup := seen[key]; dup {
			return nil, &SchemaError{Fragment: index, Offset: start, Reason: fmt.Sprintf("duplicate field %q", field.Tag)}
		}
		seen[key] = struct{}{}
		def = append(def, field)

		offset = start + end + len(fragmentTerminator)
	}

	return def, nil
}

func parseFragment(fragment string) (Field, error) {
	tokens := strings.Split(fragment, ";")
	field := Field{
		Tag:  strings.TrimSpace(tokens[0]),
		Type: TypeWord,
	}
	if field.Tag == "" {
		return Field{}, fmt.Errorf("empty field tag")
	}

	for _, token := range tokens[1:] {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		key, value, hasValue := strings.Cut(token, ":")
		key = strings.ToLower(key)
		if !hasValue {
			switch key {
			case "rq":
				field.Required = true
			case "ro":
				field.ReadOnly = true
			}
			continue
		}

		var err error
		switch key {
		case "code":
			field.Code, err = atoi(key, value)
		case "type":
			field.Type = FieldType(strings.ToLower(value))
		case "fmt":
			field.Format = value
		case "len":
			field.Len, err = atoi(key, value)
		case "val":
			field.Values = value
		case "words":
			field.Words, err = atoi(key, value)
		case "maxwords":
			field.MaxWords, err = atoi(key, value)
		case "seq":
			field.Seq, err = atoi(key, value)
		case "opt":
			field.Opt = value
		case "pre":
			field.Preset = value
		case "open":
			field.Open = value
		}
		if err != nil {
			return Field{}, fmt.Errorf("field %q: %w", field.Tag, err)
		}
	}

	return field, nil
}

func atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s: %q is not a non-negative integer", key, value)
	}
	return n, nil
}
