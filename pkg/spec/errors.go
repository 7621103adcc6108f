package spec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSchema matches any UnknownSchemaError via errors.Is.
	ErrUnknownSchema = errors.New("spec: unknown schema type")
	// ErrMalformedSchema matches any SchemaError via errors.Is.
	ErrMalformedSchema = errors.New("spec: malformed definition")
)

// UnknownSchemaError reports a record type with no registered definition.
// Callers treat it as recoverable: raw data can still be used unstructured.
type UnknownSchemaError struct {
	Type string
}

func (e *UnknownSchemaError) Error() string {
	return fmt.Sprintf("spec: no definition registered for %q", e.Type)
}

// Is lets errors.Is(err, ErrUnknownSchema) match.
func (e *UnknownSchemaError) Is(target error) bool {
	return target == ErrUnknownSchema
}

// SchemaError reports a malformed definition string. Fragment is the 0-based
// index of the offending field fragment and Offset its byte offset within the
// definition text.
type SchemaError struct {
	Type     string
	Fragment int
	Offset   int
	Reason   string
}

func (e *SchemaError) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("spec: %s definition: fragment %d (offset %d): %s", e.Type, e.Fragment, e.Offset, e.Reason)
	}
	return fmt.Sprintf("spec: fragment %d (offset %d): %s", e.Fragment, e.Offset, e.Reason)
}

// Is lets errors.Is(err, ErrMalformedSchema) match.
func (e *SchemaError) Is(target error) bool {
	return target == ErrMalformedSchema
}
