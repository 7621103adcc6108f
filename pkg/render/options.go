package render

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the record.
type RenderOptions struct {
	// Title replaces the heading renderers derive from the form type.
	Title string
	// Labels overrides field labels keyed by tag (any case).
	Labels map[string]string
	// Errors surfaces validation feedback keyed by tag. Use MapErrors to
	// normalise keys coming from elsewhere.
	Errors map[string][]string
	// FormErrors are messages not tied to a field.
	FormErrors []string
	// Hidden carries extra name/value pairs submitted with HTML forms.
	Hidden map[string]string
	// Subset limits which fields are rendered.
	Subset FieldSubset

	// Locale and Translator localise the title, field labels and submit
	// text. Explicit Title and Labels win over translations.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}
