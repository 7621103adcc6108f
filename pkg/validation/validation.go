package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
)

// Issue represents a validation error with optional location metadata. Path
// is the flat dictionary key of the offending value (View1 for the second
// View entry).
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Result captures validation outcomes for a record.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Errors groups the issue messages by field tag, the shape renderers accept
// for field errors.
func (r Result) Errors() map[string][]string {
	if len(r.Issues) == 0 {
		return nil
	}
	out := make(map[string][]string, len(r.Issues))
	for _, issue := range r.Issues {
		out[issue.Field] = append(out[issue.Field], issue.Message)
	}
	return out
}

// Err joins the issues into a single error, nil when the record is valid.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	errs := make([]error, 0, len(r.Issues))
	for _, issue := range r.Issues {
		errs = append(errs, errors.New(issue.String()))
	}
	return errors.Join(errs...)
}

// Validate checks store against def and reports every problem found.
// Read-only fields are checked like any other.
func Validate(def spec.Definition, store record.Store) Result {
	result := Result{Valid: true}
	add := func(path string, field spec.Field, message string) {
		result.Valid = false
		result.Issues = append(result.Issues, Issue{Path: path, Field: field.Tag, Message: message})
	}

	for _, field := range def {
		if field.IsList() {
			items, ok := record.GetList(store, field.Tag)
			if !ok {
				if _, scalar := record.GetScalar(store, field.Tag); scalar {
					add(field.Tag, field, "must be a list")
					continue
				}
			}
			if len(items) == 0 && field.Required {
				add(field.Tag, field, "is required")
			}
			for i, item := range items {
				if err := Value(field, item); err != nil {
					add(field.Tag+strconv.Itoa(i), field, err.Error())
				}
			}
			continue
		}

		value, ok := record.GetScalar(store, field.Tag)
		if !ok {
			if _, list := record.GetList(store, field.Tag); list {
				add(field.Tag, field, "must be a single value")
				continue
			}
		}
		if err := Value(field, value); err != nil {
			add(field.Tag, field, err.Error())
		}
	}
	return result
}

// Value checks a single value against field. Values of fields other than
// text must fit on one line. List entries are otherwise checked by word
// count only. The returned error reads as the tail of a sentence about
// the field ("is required", "must be a single word").
func Value(field spec.Field, value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if field.Required {
			return errors.New("is required")
		}
		return nil
	}
	if field.IsText() {
		return nil
	}
	if strings.ContainsAny(trimmed, "\r\n") {
		return errors.New("must fit on one line")
	}

	if field.IsList() {
		return checkWords(field, trimmed)
	}
	if field.Len > 0 && len(trimmed) > field.Len {
		return fmt.Errorf("must be at most %d characters", field.Len)
	}
	if field.Type == spec.TypeWord && strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return errors.New("must be a single word")
	}
	if options := field.Options(); len(options) > 0 && !contains(options, trimmed) {
		return fmt.Errorf("must be one of %s", strings.Join(options, ", "))
	}
	if groups := field.OptionPairs(); len(groups) > 0 {
		return checkOptionPairs(groups, trimmed)
	}
	return nil
}

// checkWords bounds the word count of a list entry: at least Words, at most
// MaxWords when set and exactly Words otherwise. Double quoted words may hold
// spaces.
func checkWords(field spec.Field, value string) error {
	if field.Words == 0 {
		return nil
	}
	words, err := SplitWords(value)
	if err != nil {
		return err
	}
	upper := field.Words
	if field.MaxWords > upper {
		upper = field.MaxWords
	}
	if len(words) >= field.Words && len(words) <= upper {
		return nil
	}
	if upper == field.Words {
		return fmt.Errorf("must have %d words", field.Words)
	}
	return fmt.Errorf("must have %d to %d words", field.Words, upper)
}

// SplitWords splits a list entry on spaces, keeping double quoted words
// whole and dropping their quotes.
func SplitWords(value string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		quoted  bool
		started bool
	)
	for _, r := range value {
		switch {
		case r == '"':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				words = append(words, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if quoted {
		return nil, errors.New("has an unterminated quote")
	}
	if started {
		words = append(words, current.String())
	}
	return words, nil
}

// checkOptionPairs accepts any subset of the groups, each used at most once.
func checkOptionPairs(groups [][]string, value string) error {
	used := make(map[int]string, len(groups))
	for _, word := range strings.Fields(value) {
		group := -1
		for i, options := range groups {
			if contains(options, word) {
				group = i
				break
			}
		}
		if group < 0 {
			return fmt.Errorf("unknown option %q", word)
		}
		if prev, dup := used[group]; dup {
			return fmt.Errorf("options %q and %q conflict", prev, word)
		}
		used[group] = word
	}
	return nil
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
