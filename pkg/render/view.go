package render

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
)

// FieldView is the renderer-neutral presentation of one schema field with
// the record's value resolved.
type FieldView struct {
	Tag      string
	Label    string
	Type     spec.FieldType
	Required bool
	ReadOnly bool
	// Options lists select choices.
	Options []string
	// OptionPairs lists the word groups of a multi-option line field.
	OptionPairs [][]string
	Value       string
	Items       []string
	Errors      []string
	MaxLength   int
}

// IsList reports whether the field holds one value per line.
func (v FieldView) IsList() bool {
	return v.Type == spec.TypeWList || v.Type == spec.TypeLList
}

// IsText reports whether the field holds multi-line text.
func (v FieldView) IsText() bool {
	return v.Type == spec.TypeText || v.Type == spec.TypeBulk
}

// IsSelect reports whether the field offers a fixed set of choices.
func (v FieldView) IsSelect() bool {
	return v.Type == spec.TypeSelect && len(v.Options) > 0
}

// Views resolves every field of form, after options.Subset, against the
// record. Error keys in options are mapped with MapErrors first.
func Views(form Form, options RenderOptions) []FieldView {
	ApplySubset(&form, options.Subset)
	errs := MapErrors(form, options.Errors).Fields

	labels := make(map[string]string, len(options.Labels))
	for tag, label := range options.Labels {
		labels[strings.ToLower(tag)] = label
	}

	views := make([]FieldView, 0, len(form.Definition))
	for _, field := range form.Definition {
		view := FieldView{
			Tag:         field.Tag,
			Label:       Translate(options, fieldKey(form.Type, field.Tag), Label(field.Tag)),
			Type:        field.Type,
			Required:    field.Required,
			ReadOnly:    field.ReadOnly,
			Options:     field.Options(),
			OptionPairs: field.OptionPairs(),
			Errors:      errs[field.Tag],
			MaxLength:   field.Len,
		}
		if label, ok := labels[strings.ToLower(field.Tag)]; ok && label != "" {
			view.Label = label
		}
		if form.Record != nil {
			if field.IsList() {
				view.Items, _ = record.GetList(form.Record, field.Tag)
			} else {
				view.Value, _ = record.GetScalar(form.Record, field.Tag)
			}
		}
		views = append(views, view)
	}
	return views
}

// Title returns options.Title or a heading derived from the form type,
// translated when options carry a translator.
func Title(form Form, options RenderOptions) string {
	if options.Title != "" {
		return options.Title
	}
	if form.Type == "" {
		return "Form"
	}
	return Translate(options, titleKey(form.Type), Label(form.Type))
}

// Label turns a field tag into a display label: "SubmitOptions" becomes
// "Submit Options" and "client" becomes "Client".
func Label(tag string) string {
	runes := []rune(tag)
	var b strings.Builder
	for i, r := range runes {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
