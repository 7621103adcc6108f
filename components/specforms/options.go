package specforms

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/render"
)

// GuardFunc rejects a request before it reaches the handler. Errors
// implementing HTTPError choose the status code.
type GuardFunc func(r *http.Request) error

type Options struct {
	RoutePath string
	// RendererParam names the query parameter selecting the renderer.
	RendererParam string
	// FormRenderer renders GET requests and rejected HTML posts.
	FormRenderer string
	// ResultRenderer renders accepted submissions.
	ResultRenderer string
	Guard          GuardFunc
	// CSRFField and CSRFToken add a token input to rendered HTML forms.
	// Checking the token on submission is left to Guard.
	CSRFField string
	CSRFToken func(r *http.Request) string

	Manager   *forms.Manager
	Renderers *render.Registry
	Logger    *zap.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:      "/specs",
		RendererParam:  "renderer",
		FormRenderer:   "html",
		ResultRenderer: "text",
	}
}

// NewOptions applies fns over the defaults. A missing manager gets a fresh
// one seeded with the built-in definitions; missing renderers stay nil and
// are filled in by the handler.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = "/specs"
	}
	if opts.RendererParam == "" {
		opts.RendererParam = "renderer"
	}
	if opts.FormRenderer == "" {
		opts.FormRenderer = "html"
	}
	if opts.ResultRenderer == "" {
		opts.ResultRenderer = "text"
	}
	if opts.Manager == nil {
		opts.Manager = forms.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithRendererParam(name string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RendererParam = name
	}
}

// WithDefaultRenderers picks the renderers used when the request names none.
func WithDefaultRenderers(form, result string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.FormRenderer = form
		o.ResultRenderer = result
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

// WithManager shares a forms manager, and with it the schema registry, with
// the handler.
func WithManager(manager *forms.Manager) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Manager = manager
	}
}

func WithRenderers(renderers *render.Registry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Renderers = renderers
	}
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithCSRF renders a hidden field named field holding token(r) in every
// form.
func WithCSRF(field string, token func(r *http.Request) string) OptionFn {
	return func(o *Options) {
		o.CSRFField = field
		o.CSRFToken = token
	}
}
