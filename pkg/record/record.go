package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Record is the structured form of a response or spec: field names mapped to
// Values, kept in first-insertion order. A record built for a known spec
// type also carries the definition's lowercase to canonical tag table so fields can
// be addressed case-insensitively.
type Record struct {
	order  []string
	fields map[string]Value
	names  map[string]string
}

// New returns an empty record.
func New() *Record {
	return &Record{fields: make(map[string]Value)}
}

// Len is the number of top-level fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}

// Keys returns field names in insertion order.
func (r *Record) Keys() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.order...)
}

// Lookup returns the value stored under the exact key.
func (r *Record) Lookup(key string) (Value, bool) {
	if r == nil {
		return Value{}, false
	}
	v, ok := r.fields[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Store sets key to v. New keys are appended to the iteration order.
func (r *Record) Store(key string, v Value) {
	if r.fields == nil {
		r.fields = make(map[string]Value)
	}
	if _, exists := r.fields[key]; !exists {
		r.order = append(r.order, key)
	}
	r.fields[key] = v
}

// Delete removes key.
func (r *Record) Delete(key string) {
	if _, exists := r.fields[key]; !exists {
		return
	}
	delete(r.fields, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// SetNames attaches a lowercase to canonical tag table.
func (r *Record) SetNames(names map[string]string) {
	if len(names) == 0 {
		r.names = nil
		return
	}
	r.names = make(map[string]string, len(names))
	for k, v := range names {
		r.names[strings.ToLower(k)] = v
	}
}

// Names returns a copy of the attached tag table.
func (r *Record) Names() map[string]string {
	if r == nil || len(r.names) == 0 {
		return nil
	}
	out := make(map[string]string, len(r.names))
	for k, v := range r.names {
		out[k] = v
	}
	return out
}

// Canonical resolves name to the key it should be stored under: an existing
// key wins, then the tag table, then a case-insensitive match against
// existing keys. Unknown names are returned unchanged.
func (r *Record) Canonical(name string) string {
	if r == nil {
		return name
	}
	if _, ok := r.fields[name]; ok {
		return name
	}
	if tag, ok := r.names[strings.ToLower(name)]; ok {
		return tag
	}
	for _, key := range r.order {
		if strings.EqualFold(key, name) {
			return key
		}
	}
	return name
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	out := New()
	if r == nil {
		return out
	}
	for _, key := range r.order {
		out.Store(key, cloneValue(r.fields[key]))
	}
	out.SetNames(r.names)
	return out
}

// Equal compares field sets and values, ignoring order and tag tables.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for _, key := range r.Keys() {
		theirs, ok := other.Lookup(key)
		if !ok {
			return false
		}
		if !r.fields[key].Equal(theirs) {
			return false
		}
	}
	return true
}

// Map converts the record into plain Go data.
func (r *Record) Map() map[string]any {
	out := make(map[string]any, r.Len())
	for _, key := range r.Keys() {
		out[key] = r.fields[key].Interface()
	}
	return out
}

// MarshalJSON writes the fields as a JSON object in insertion order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(r.fields[key])
		if err != nil {
			return nil, fmt.Errorf("record: encode %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping the document's key order.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("record: decode: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: decode: expected object")
	}

	out := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("record: decode: %w", err)
		}
		key, _ := tok.(string)
		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("record: decode %s: %w", key, err)
		}
		v, err := FromInterface(raw)
		if err != nil {
			return fmt.Errorf("record: decode %s: %w", key, err)
		}
		out.Store(key, v)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("record: decode: %w", err)
	}

	out.names = r.names
	*r = *out
	return nil
}

// MarshalYAML produces an ordered mapping node.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range r.Keys() {
		var valueNode yaml.Node
		if err := valueNode.Encode(r.fields[key].Interface()); err != nil {
			return nil, fmt.Errorf("record: encode %s: %w", key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&valueNode,
		)
	}
	return node, nil
}

// UnmarshalYAML reads a mapping node, keeping the document's key order.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("record: decode: expected mapping at line %d", node.Line)
	}

	out := New()
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var raw any
		if err := node.Content[i+1].Decode(&raw); err != nil {
			return fmt.Errorf("record: decode %s: %w", key, err)
		}
		v, err := FromInterface(raw)
		if err != nil {
			return fmt.Errorf("record: decode %s: %w", key, err)
		}
		out.Store(key, v)
	}

	out.names = r.names
	*r = *out
	return nil
}

func cloneValue(v Value) Value {
	if v.kind != KindList {
		return v
	}
	out := Value{kind: KindList, list: make([]Value, len(v.list))}
	for i, item := range v.list {
		out.list[i] = cloneValue(item)
	}
	return out
}
