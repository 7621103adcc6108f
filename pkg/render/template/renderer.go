package template

import (
	"io"
)

// TemplateRenderer is the seam template-backed renderers rely on. It matches
// the github.com/goliatone/go-template engine contract. Rendered output is
// returned and also copied to every supplied writer.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
