package formtext

import (
	"strconv"

	"github.com/goliatone/go-specform/pkg/dict"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
)

// LineSource feeds field values to Format. Scalar and text fields are only
// asked for position 0. List fields are asked for increasing positions until
// the source reports absent.
type LineSource interface {
	Line(field spec.Field, pos int) (string, bool)
}

// DictSource reads values from a flat dictionary: scalars under the tag,
// list elements under tag plus position (View0, View1, ...).
type DictSource dict.Dict

// Line implements LineSource.
func (s DictSource) Line(field spec.Field, pos int) (string, bool) {
	key := field.Tag
	if field.IsList() {
		key += strconv.Itoa(pos)
	} else if pos > 0 {
		return "", false
	}
	return dict.Dict(s).Get(key)
}

// RecordSource reads values from a structured record through the record
// accessors, so tags resolve case-insensitively.
type RecordSource struct {
	Store record.Store
}

// FromRecord wraps a record store as a LineSource.
func FromRecord(store record.Store) RecordSource {
	return RecordSource{Store: store}
}

// Line implements LineSource.
func (s RecordSource) Line(field spec.Field, pos int) (string, bool) {
	if s.Store == nil {
		return "", false
	}
	if field.IsList() {
		return record.GetListElement(s.Store, field.Tag, pos)
	}
	if pos > 0 {
		return "", false
	}
	return record.GetScalar(s.Store, field.Tag)
}
