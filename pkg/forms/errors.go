package forms

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-specform/internal/formtext"
)

// ErrMissingSpecDef is returned when a form era is requested for a
// dictionary that carries no specdef.
var ErrMissingSpecDef = errors.New("forms: dictionary has no specdef")

// ErrLineBreak is matched by errors from FormatForm and Input when a scalar
// or list value spans lines.
var ErrLineBreak = formtext.ErrLineBreak

// GrammarError reports form text that does not match its type's schema.
type GrammarError struct {
	Type   string
	Line   int
	Field  string
	Reason string
	Err    error
}

func (e *GrammarError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Field != "" {
		where += " (" + e.Field + ")"
	}
	if e.Type == "" {
		return fmt.Sprintf("forms: %s: %s", where, e.Reason)
	}
	return fmt.Sprintf("forms: %s form: %s: %s", e.Type, where, e.Reason)
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

func grammarError(typ string, err error) error {
	var formErr *formtext.Error
	if !errors.As(err, &formErr) {
		return err
	}
	return &GrammarError{
		Type:   typ,
		Line:   formErr.Line,
		Field:  formErr.Field,
		Reason: formErr.Reason,
		Err:    err,
	}
}
