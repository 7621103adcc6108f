package record

import (
	"errors"
	"fmt"
)

// ErrNotList is returned when a list operation targets a field holding a
// scalar.
var ErrNotList = errors.New("record: field is not a list")

// Store is the container contract the accessors rely on. *Record implements
// it; other containers can be swapped in without touching callers.
type Store interface {
	Lookup(key string) (Value, bool)
	Store(key string, v Value)
	Canonical(name string) string
}

var _ Store = (*Record)(nil)

// GetScalar returns the scalar stored under tag.
func GetScalar(s Store, tag string) (string, bool) {
	v, ok := s.Lookup(s.Canonical(tag))
	if !ok {
		return "", false
	}
	return v.Str()
}

// GetListElement returns the scalar at pos in the list stored under tag.
// Missing fields, gaps, nested lists and out of range positions are all
// reported as absent.
func GetListElement(s Store, tag string, pos int) (string, bool) {
	v, ok := s.Lookup(s.Canonical(tag))
	if !ok || !v.IsList() {
		return "", false
	}
	return v.At(pos).Str()
}

// GetList returns the list stored under tag as strings, stopping at the first
// gap or nested list.
func GetList(s Store, tag string) ([]string, bool) {
	v, ok := s.Lookup(s.Canonical(tag))
	if !ok || !v.IsList() {
		return nil, false
	}
	out := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item, ok := v.At(i).Str()
		if !ok {
			break
		}
		out = append(out, item)
	}
	return out, true
}

// SetScalar stores value under tag, replacing whatever was there.
func SetScalar(s Store, tag, value string) {
	s.Store(s.Canonical(tag), Scalar(value))
}

// SetListElement stores value at pos in the list under tag, creating the list
// and padding skipped positions with empty slots as needed.
func SetListElement(s Store, tag string, pos int, value string) error {
	if pos < 0 {
		return fmt.Errorf("record: %s: negative position %d", tag, pos)
	}
	key := s.Canonical(tag)
	v, ok := s.Lookup(key)
	switch {
	case !ok || v.IsEmpty():
		v = Value{kind: KindList}
	case !v.IsList():
		return fmt.Errorf("%w: %s", ErrNotList, key)
	default:
		v = cloneValue(v)
	}
	*v.slot(pos) = Scalar(value)
	s.Store(key, v)
	return nil
}

// SetList replaces the list under tag with values.
func SetList(s Store, tag string, values []string) {
	s.Store(s.Canonical(tag), Strings(values...))
}
