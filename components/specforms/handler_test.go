package specforms

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-specform/pkg/forms"
	"github.com/goliatone/go-specform/pkg/validation"
)

const jobText = "Job:\tjob1\n\nStatus:\topen\n\nUser:\tada\n\nDescription:\n\thello\n\n"

func newHandler(t *testing.T, fns ...OptionFn) http.Handler {
	t.Helper()
	h, err := Handler(fns...)
	require.NoError(t, err)
	return h
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListTypes(t *testing.T) {
	rec := serve(newHandler(t), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))

	var payload typesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	assert.Contains(t, payload.Data, "client")
	assert.Contains(t, payload.Data, "job")
}

func TestHandler_OpenAPIDocument(t *testing.T) {
	rec := serve(newHandler(t), httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}

func TestHandler_Form(t *testing.T) {
	h := newHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/job", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<input type="hidden" name="_type" value="job">`)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/job?renderer=json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/job?renderer=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func postForm(values url.Values, target string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandler_SubmitHTMLForm(t *testing.T) {
	h := newHandler(t)

	values := url.Values{
		"Job":         {"job1"},
		"Status":      {"open"},
		"User":        {"ada"},
		"Date":        {"2024/01/01"},
		"Description": {"hello"},
	}
	rec := serve(h, postForm(values, "/job"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, jobText, rec.Body.String())
}

func TestHandler_SubmitHTMLForm_Invalid(t *testing.T) {
	h := newHandler(t)

	values := url.Values{
		"Job":    {"job1"},
		"Status": {"pending"},
		"User":   {"ada"},
	}
	rec := serve(h, postForm(values, "/job"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<p class="specform-error">must be one of open, suspended, closed</p>`)
	assert.Contains(t, body, `<p class="specform-error">is required</p>`)
	assert.Contains(t, body, `name="Job" value="job1"`)
}

func TestHandler_SubmitHTMLForm_MultiLineValue(t *testing.T) {
	values := url.Values{
		"Client": {"ws1"},
		"Root":   {"/x\r\nHost:\tevil"},
		"View":   {"//depot/... //ws1/..."},
	}
	h := newHandler(t)

	rec := serve(h, postForm(values, "/client"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `<p class="specform-error">must fit on one line</p>`)
}

func TestHandler_SubmitHTMLForm_TypeMismatch(t *testing.T) {
	values := url.Values{"_type": {"client"}, "Root": {"/ws"}}
	rec := serve(newHandler(t), postForm(values, "/job"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SubmitFormText(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/job?renderer=yaml", strings.NewReader(jobText))
	req.Header.Set("Content-Type", "text/plain")
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Job: job1\n")

	req = httptest.NewRequest(http.MethodPost, "/job", strings.NewReader("Job:\tjob1\n"))
	rec = serve(h, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var result validation.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.False(t, result.Valid)
	assert.Len(t, result.Issues, 3)

	req = httptest.NewRequest(http.MethodPost, "/job", strings.NewReader("Bogus:\tx\n"))
	rec = serve(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown field")
}

func TestHandler_SharedManager(t *testing.T) {
	manager := forms.New()
	manager.Registry().Define("widget", "Name;code:1;rq;;")

	rec := serve(newHandler(t, WithManager(manager)), httptest.NewRequest(http.MethodGet, "/widget?renderer=text", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandler_Guard(t *testing.T) {
	h := newHandler(t, WithGuard(func(r *http.Request) error {
		if r.Header.Get("X-Token") == "" {
			return StatusError{Code: http.StatusUnauthorized, Err: errors.New("missing token")}
		}
		return nil
	}))

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Token", "t")
	rec = serve(h, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_CSRFField(t *testing.T) {
	h := newHandler(t, WithCSRF(" _csrf ", func(r *http.Request) string {
		return "tok-" + r.Header.Get("X-Session")
	}))

	req := httptest.NewRequest(http.MethodGet, "/job", nil)
	req.Header.Set("X-Session", "42")
	rec := serve(h, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<input type="hidden" name="_csrf" value="tok-42">`)

	rec = serve(h, postForm(url.Values{"Job": {"job1"}, "_csrf": {"tok-"}}, "/job"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="_csrf" value="tok-"`)
}

func TestMountPath_JoinsBasePath(t *testing.T) {
	assert.Equal(t, "/admin/specs", MountPath("/admin"))
	assert.Equal(t, "/admin/specs", MountPath("admin"))
	assert.Equal(t, "/admin/forms", MountPath("/admin/", WithRoutePath("forms/")))
	assert.Equal(t, "/specs", MountPath(""))
}

func TestRegisterRoutes_RegistersHandler(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/admin")
	require.NoError(t, err)
	assert.Equal(t, "/admin/specs", pattern)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern+"/job?renderer=text", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, pattern, nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, err = RegisterRoutes(nil, "/admin")
	assert.Error(t, err)
}
