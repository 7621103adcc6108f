package specforms

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	specform "github.com/goliatone/go-specform"
	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/openapi"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/renderers/html"
	"github.com/goliatone/go-specform/pkg/spec"
	"github.com/goliatone/go-specform/pkg/validation"
)

// maxBodyBytes caps submitted form text.
const maxBodyBytes = 1 << 20

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type typesResponse struct {
	Data []string `json:"data"`
}

// Handler builds the form handler with default options plus any overrides.
// Routes are relative to the handler: mount it with RegisterRoutes or strip
// the prefix yourself.
func Handler(fns ...OptionFn) (http.Handler, error) {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions builds the form handler from a pre-constructed Options
// value.
func HandlerWithOptions(opts Options) (http.Handler, error) {
	opts = NewOptions(func(o *Options) { *o = opts })
	if opts.Renderers == nil {
		renderers, err := specform.NewRenderers()
		if err != nil {
			return nil, fmt.Errorf("specforms: renderers: %w", err)
		}
		opts.Renderers = renderers
	}

	s := &server{opts: opts}

	r := chi.NewRouter()
	if opts.Guard != nil {
		r.Use(s.guard)
	}
	r.Get("/", s.listTypes)
	r.Get("/openapi.json", s.document)
	r.Get("/{type}", s.form)
	r.Post("/{type}", s.submit)
	return r, nil
}

// server serialises access to the manager, which is not safe for concurrent
// use.
type server struct {
	mu   sync.Mutex
	opts Options
}

func (s *server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.opts.Guard(r); err != nil {
			writeGuardError(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) listTypes(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	types := s.opts.Manager.Registry().Types()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, typesResponse{Data: types})
}

func (s *server) document(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	doc, err := openapi.Document(r.Context(), s.opts.Manager.Registry(), nil)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *server) form(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")
	name := s.rendererName(r, s.opts.FormRenderer)

	s.mu.Lock()
	form, err := render.NewForm(s.opts.Manager.Registry(), typ, nil)
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.render(w, r, http.StatusOK, name, form, render.RenderOptions{Hidden: s.hidden(r)})
}

func (s *server) submit(w http.ResponseWriter, r *http.Request) {
	typ := chi.URLParam(r, "type")

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	posted := mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data"

	rec, err := s.decode(w, r, typ, posted)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	def, err := s.opts.Manager.Registry().Definition(typ)
	var form render.Form
	if err == nil {
		form, err = render.NewForm(s.opts.Manager.Registry(), typ, rec)
	}
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := validation.Validate(writable(def), rec)
	if !result.Valid {
		s.opts.Logger.Debug("specforms: submission rejected",
			zap.String("type", typ),
			zap.Int("issues", len(result.Issues)),
		)
		if posted {
			s.render(w, r, http.StatusUnprocessableEntity, s.rendererName(r, s.opts.FormRenderer), form, render.RenderOptions{
				Errors: result.Errors(),
				Hidden: s.hidden(r),
			})
			return
		}
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	s.render(w, r, http.StatusOK, s.rendererName(r, s.opts.ResultRenderer), form, render.RenderOptions{})
}

// decode reads an HTML form post through html.Decode and anything else as
// form text.
func (s *server) decode(w http.ResponseWriter, r *http.Request, typ string, posted bool) (*record.Record, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if !posted {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, StatusError{Code: http.StatusRequestEntityTooLarge, Err: err}
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.opts.Manager.ParseForm(typ, string(body))
	}

	if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, StatusError{Code: http.StatusBadRequest, Err: err}
	}
	values := r.PostForm
	if values.Get(render.HiddenTypeField) == "" {
		values.Set(render.HiddenTypeField, typ)
	}

	s.mu.Lock()
	decoded, rec, err := html.Decode(s.opts.Manager.Registry(), values)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(decoded, typ) {
		return nil, StatusError{
			Code: http.StatusBadRequest,
			Err:  fmt.Errorf("specforms: submitted %s form to %s", decoded, typ),
		}
	}
	return rec, nil
}

func (s *server) render(w http.ResponseWriter, r *http.Request, status int, name string, form render.Form, options render.RenderOptions) {
	renderer, err := s.opts.Renderers.Get(name)
	if err != nil {
		s.writeError(w, StatusError{Code: http.StatusBadRequest, Err: err})
		return
	}
	out, err := renderer.Render(r.Context(), form, options)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (s *server) hidden(r *http.Request) map[string]string {
	if s.opts.CSRFField == "" || s.opts.CSRFToken == nil {
		return nil
	}
	return render.MergeHiddenFields(nil, render.CSRFToken(s.opts.CSRFField, s.opts.CSRFToken(r)))
}

func (s *server) rendererName(r *http.Request, fallback string) string {
	if name := strings.TrimSpace(r.URL.Query().Get(s.opts.RendererParam)); name != "" {
		return name
	}
	return fallback
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	var (
		httpErr    HTTPError
		grammarErr *forms.GrammarError
	)
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.StatusCode()
	case errors.Is(err, spec.ErrUnknownSchema):
		code = http.StatusNotFound
	case errors.As(err, &grammarErr), errors.Is(err, forms.ErrLineBreak):
		code = http.StatusBadRequest
	}

	if code >= http.StatusInternalServerError {
		s.opts.Logger.Error("specforms: request failed", zap.Error(err))
		http.Error(w, http.StatusText(code), code)
		return
	}
	http.Error(w, err.Error(), code)
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}

// writable drops read-only fields, which submissions never carry.
func writable(def spec.Definition) spec.Definition {
	out := make(spec.Definition, 0, len(def))
	for _, field := range def {
		if !field.ReadOnly {
			out = append(out, field)
		}
	}
	return out
}
