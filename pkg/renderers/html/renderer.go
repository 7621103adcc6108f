// Package html renders forms as HTML documents through go-template.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-specform/pkg/render"
	rendertemplate "github.com/goliatone/go-specform/pkg/render/template"
	"github.com/goliatone/go-specform/pkg/render/template/gotemplate"
)

const formTemplate = "templates/form.tpl"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	action           string
	method           string
	submit           string
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/form.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAction sets the form action and method. The method defaults to POST.
func WithAction(action, method string) Option {
	return func(cfg *config) {
		cfg.action = strings.TrimSpace(action)
		if method = strings.TrimSpace(method); method != "" {
			cfg.method = strings.ToUpper(method)
		}
	}
}

// WithSubmitLabel overrides the submit button text.
func WithSubmitLabel(label string) Option {
	return func(cfg *config) {
		if label = strings.TrimSpace(label); label != "" {
			cfg.submit = label
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	action    string
	method    string
	submit    string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), method: "POST", submit: "Save"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithFilter(sanitizeFilter, sanitizeText),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		action:    cfg.action,
		method:    cfg.method,
		submit:    cfg.submit,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form render.Form, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(formTemplate, r.templateData(form, options))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) templateData(form render.Form, options render.RenderOptions) map[string]any {
	views := render.Views(form, options)
	fields := make([]map[string]any, 0, len(views))
	for _, view := range views {
		fields = append(fields, fieldData(view))
	}

	hidden := render.MergeHiddenFields(options.Hidden, render.Hidden(render.HiddenTypeField, form.Type))
	inputs := make([]map[string]any, 0, len(hidden))
	for _, field := range render.SortedHiddenFields(hidden) {
		inputs = append(inputs, map[string]any{"name": field.Name, "value": field.Value})
	}

	return map[string]any{
		"type":        form.Type,
		"title":       render.Title(form, options),
		"action":      r.action,
		"method":      r.method,
		"submit":      render.Translate(options, render.SubmitKey(form.Type), r.submit),
		"fields":      fields,
		"hidden":      inputs,
		"form_errors": render.MergeFormErrors(options.FormErrors, render.MapErrors(form, options.Errors).Form...),
	}
}

func fieldData(view render.FieldView) map[string]any {
	data := map[string]any{
		"tag":       view.Tag,
		"label":     view.Label,
		"kind":      kind(view),
		"required":  view.Required,
		"readonly":  view.ReadOnly,
		"options":   view.Options,
		"errors":    view.Errors,
		"maxlength": "",
		"value":     view.Value,
	}

	if view.MaxLength > 0 {
		data["maxlength"] = strconv.Itoa(view.MaxLength)
	}

	switch {
	case view.IsList():
		data["value"] = strings.Join(view.Items, "\n")
		data["rows"] = rows(len(view.Items))
	case view.IsText():
		data["value"] = strings.TrimSuffix(view.Value, "\n")
		data["rows"] = rows(strings.Count(view.Value, "\n"))
	}

	if len(view.OptionPairs) > 0 {
		choices := make([]string, 0, len(view.OptionPairs))
		for _, pair := range view.OptionPairs {
			choices = append(choices, strings.Join(pair, "/"))
		}
		data["choices"] = choices
	}
	return data
}

func kind(view render.FieldView) string {
	switch {
	case view.IsSelect():
		return "select"
	case view.IsList():
		return "list"
	case view.IsText():
		return "text"
	default:
		return "line"
	}
}

// rows is a string so numbers survive the engine's JSON data conversion
// unformatted.
func rows(lines int) string {
	if lines < 3 {
		return "3"
	}
	return strconv.Itoa(lines + 1)
}
