package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-specform/internal/formtext"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/spec"
	"github.com/goliatone/go-specform/pkg/validation"
)

// Renderer implements render.Renderer for terminal-driven editing sessions.
// Every writable field is prompted with its current value as default.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	review       bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, form text
// output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       newSurveyDriver(),
		outputFormat: OutputFormatText,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = newSurveyDriver()
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	if r.outputFormat == OutputFormatJSON {
		return "application/json"
	}
	return "text/plain; charset=utf-8"
}

// Render runs an editing session and serializes the result. Form text output
// covers the whole definition, so fields outside options.Subset keep their
// values.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	rec, err := r.Edit(ctx, form, opts)
	if err != nil {
		return nil, err
	}

	if r.outputFormat == OutputFormatJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("tui: encode record: %w", err)
		}
		return append(out, '\n'), nil
	}
	text, err := formtext.Format(form.Definition, formtext.FromRecord(rec))
	if err != nil {
		return nil, fmt.Errorf("tui: format record: %w", err)
	}
	return []byte(text), nil
}

// Edit prompts for each writable field of form and returns the edited copy
// of its record. The input record is not modified.
func (r *Renderer) Edit(ctx context.Context, form render.Form, opts render.RenderOptions) (*record.Record, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	rec := record.New()
	if form.Record != nil {
		rec = form.Record.Clone()
	}
	if len(rec.Names()) == 0 {
		rec.SetNames(form.Definition.Names())
	}

	if err := r.info(ctx, r.theme.InfoPrefix, render.Title(form, opts)); err != nil {
		return nil, err
	}
	mapping := render.MapErrors(form, opts.Errors)
	for _, message := range render.MergeFormErrors(opts.FormErrors, mapping.Form...) {
		if err := r.info(ctx, r.theme.ErrorPrefix, message); err != nil {
			return nil, err
		}
	}

	for _, view := range render.Views(form, opts) {
		if view.ReadOnly {
			continue
		}
		for _, message := range view.Errors {
			if err := r.info(ctx, r.theme.ErrorPrefix, view.Label+": "+message); err != nil {
				return nil, err
			}
		}
		if err := r.promptField(ctx, rec, view); err != nil {
			return nil, fmt.Errorf("tui: %s: %w", view.Tag, err)
		}
	}

	if r.review {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Save changes?", Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}
	return rec, nil
}

func (r *Renderer) promptField(ctx context.Context, rec *record.Record, view render.FieldView) error {
	switch {
	case view.IsSelect():
		return r.promptSelect(ctx, rec, view)
	case len(view.OptionPairs) > 0:
		return r.promptOptionPairs(ctx, rec, view)
	case view.IsList():
		return r.promptList(ctx, rec, view)
	case view.IsText():
		return r.promptText(ctx, rec, view)
	default:
		return r.promptInput(ctx, rec, view)
	}
}

func (r *Renderer) promptSelect(ctx context.Context, rec *record.Record, view render.FieldView) error {
	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      view.Label,
		Options:      view.Options,
		DefaultIndex: max(indexOf(view.Options, view.Value), 0),
		Help:         help(view),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(view.Options) {
		return ErrInvalidChoice
	}
	record.SetScalar(rec, view.Tag, view.Options[idx])
	return nil
}

// promptOptionPairs asks one question per option group and stores the
// chosen words space separated ("noallwrite clobber ...").
func (r *Renderer) promptOptionPairs(ctx context.Context, rec *record.Record, view render.FieldView) error {
	current := strings.Fields(view.Value)
	words := make([]string, 0, len(view.OptionPairs))
	for _, group := range view.OptionPairs {
		def := 0
		for i, option := range group {
			if indexOf(current, option) >= 0 {
				def = i
				break
			}
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      view.Label,
			Options:      group,
			DefaultIndex: def,
			Help:         help(view),
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(group) {
			return ErrInvalidChoice
		}
		words = append(words, group[idx])
	}
	record.SetScalar(rec, view.Tag, strings.Join(words, " "))
	return nil
}

func (r *Renderer) promptList(ctx context.Context, rec *record.Record, view render.FieldView) error {
	answer, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: view.Label,
		Default: strings.Join(view.Items, "\n"),
		Help:    help(view),
	})
	if err != nil {
		return err
	}

	var items []string
	for _, line := range strings.Split(answer, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			items = append(items, line)
		}
	}
	if len(items) == 0 {
		rec.Delete(rec.Canonical(view.Tag))
		return nil
	}
	record.SetList(rec, view.Tag, items)
	return nil
}

func (r *Renderer) promptText(ctx context.Context, rec *record.Record, view render.FieldView) error {
	answer, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: view.Label,
		Default: strings.TrimSuffix(view.Value, "\n"),
		Help:    help(view),
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) == "" {
		rec.Delete(rec.Canonical(view.Tag))
		return nil
	}
	if !strings.HasSuffix(answer, "\n") {
		answer += "\n"
	}
	record.SetScalar(rec, view.Tag, answer)
	return nil
}

func (r *Renderer) promptInput(ctx context.Context, rec *record.Record, view render.FieldView) error {
	answer, err := r.driver.Input(ctx, InputConfig{
		Message:   view.Label,
		Default:   view.Value,
		Help:      help(view),
		Validator: validator(view),
	})
	if err != nil {
		return err
	}
	answer = strings.TrimSpace(answer)
	if err := validator(view)(answer); err != nil {
		return err
	}
	if answer == "" {
		rec.Delete(rec.Canonical(view.Tag))
		return nil
	}
	record.SetScalar(rec, view.Tag, answer)
	return nil
}

// validator enforces what the form grammar cannot express once the value is
// on a single line: presence, length and the single-word shape of word
// fields.
func validator(view render.FieldView) func(string) error {
	field := spec.Field{
		Tag:      view.Tag,
		Type:     view.Type,
		Required: view.Required,
		Len:      view.MaxLength,
	}
	return func(value string) error {
		if err := validation.Value(field, value); err != nil {
			return fmt.Errorf("%s %w", view.Label, err)
		}
		return nil
	}
}

func help(view render.FieldView) string {
	parts := []string{string(view.Type)}
	if view.Required {
		parts = append(parts, "required")
	}
	if view.MaxLength > 0 {
		parts = append(parts, fmt.Sprintf("max %d", view.MaxLength))
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) info(ctx context.Context, prefix, msg string) error {
	return r.driver.Info(ctx, prefix+msg)
}
