package record

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the variants a Value can hold.
type Kind uint8

const (
	// KindEmpty marks an unset slot, such as a list position no key addressed.
	KindEmpty Kind = iota
	KindScalar
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	default:
		return "empty"
	}
}

// Value is either empty, a scalar string, or an ordered list of Values. The
// zero Value is empty.
type Value struct {
	kind   Kind
	scalar string
	list   []Value
}

// Scalar wraps a string.
func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// List wraps the supplied items. List() is an empty list, not an empty Value.
func List(items ...Value) Value {
	return Value{kind: KindList, list: append([]Value{}, items...)}
}

// Strings builds a flat list of scalars.
func Strings(items ...string) Value {
	v := Value{kind: KindList, list: make([]Value, len(items))}
	for i, item := range items {
		v.list[i] = Scalar(item)
	}
	return v
}

func (v Value) Kind() Kind     { return v.kind }
func (v Value) IsEmpty() bool  { return v.kind == KindEmpty }
func (v Value) IsScalar() bool { return v.kind == KindScalar }
func (v Value) IsList() bool   { return v.kind == KindList }

// Str returns the scalar string; ok is false for any other variant.
func (v Value) Str() (string, bool) {
	if v.kind != KindScalar {
		return "", false
	}
	return v.scalar, true
}

// String returns the scalar content, or "" for lists and empty values.
func (v Value) String() string {
	return v.scalar
}

// Len is the number of list slots, gaps included.
func (v Value) Len() int {
	return len(v.list)
}

// At returns the list slot at i. Out of range positions are empty.
func (v Value) At(i int) Value {
	if v.kind != KindList || i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// Items returns a copy of the list slots.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return append([]Value(nil), v.list...)
}

// Equal reports deep equality. Trailing empty slots are significant.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindScalar:
		return v.scalar == other.scalar
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
	}
	return true
}

// Interface converts the value into plain Go data: string, []any (with nil
// gaps) or nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// FromInterface is the inverse of Interface. Numbers and booleans are
// formatted as strings since forms carry text only.
func FromInterface(in any) (Value, error) {
	switch typed := in.(type) {
	case nil:
		return Value{}, nil
	case string:
		return Scalar(typed), nil
	case bool:
		return Scalar(strconv.FormatBool(typed)), nil
	case int:
		return Scalar(strconv.Itoa(typed)), nil
	case int64:
		return Scalar(strconv.FormatInt(typed, 10)), nil
	case float64:
		return Scalar(strconv.FormatFloat(typed, 'f', -1, 64)), nil
	case json.Number:
		return Scalar(typed.String()), nil
	case []string:
		return Strings(typed...), nil
	case []any:
		v := Value{kind: KindList, list: make([]Value, len(typed))}
		for i, item := range typed {
			converted, err := FromInterface(item)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			v.list[i] = converted
		}
		return v, nil
	default:
		return Value{}, fmt.Errorf("record: unsupported value type %T", in)
	}
}

// MarshalJSON encodes the plain Go form of the value.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// MarshalYAML encodes the plain Go form of the value.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}

// slot returns a pointer to list position i, growing the list with empty
// slots as needed. v must be a list.
func (v *Value) slot(i int) *Value {
	for len(v.list) <= i {
		v.list = append(v.list, Value{})
	}
	return &v.list[i]
}
