package tui

// OutputFormat controls how the edited record is serialized by Render.
type OutputFormat string

const (
	// OutputFormatText emits form text ready to submit.
	OutputFormatText OutputFormat = "text"
	// OutputFormatJSON emits the record as a JSON object.
	OutputFormatJSON OutputFormat = "json"
)

// Theme captures optional prefixes the renderer adds to informational
// messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithReview asks for confirmation once every field was prompted. Declining
// discards the edits with ErrAborted.
func WithReview(enabled bool) Option {
	return func(r *Renderer) {
		r.review = enabled
	}
}
