package html_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/renderers/html"
	"github.com/goliatone/go-specform/pkg/spec"
)

func newRenderer(t *testing.T, opts ...html.Option) *html.Renderer {
	t.Helper()
	renderer, err := html.New(opts...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func clientForm(t *testing.T) render.Form {
	t.Helper()
	rec := record.New()
	rec.Store("Client", record.Scalar("ws1"))
	rec.Store("Owner", record.Scalar("ada"))
	rec.Store("Description", record.Scalar("Created by <b>ada</b>.\n"))
	rec.Store("LineEnd", record.Scalar("unix"))
	rec.Store("View", record.Strings("//depot/a/... //ws1/a/...", "//depot/b/... //ws1/b/..."))

	form, err := render.NewForm(spec.NewRegistry(), "client", rec)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func assertContains(t *testing.T, out string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, out)
		}
	}
}

func TestRenderer_Render(t *testing.T) {
	renderer := newRenderer(t, html.WithAction("/specs/client", "post"))

	out, err := renderer.Render(context.Background(), clientForm(t), render.RenderOptions{
		Hidden: map[string]string{"_csrf": "token"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)

	assertContains(t, text,
		`<form method="POST" action="/specs/client" class="specform specform-client">`,
		`<h2 class="specform-title">Client</h2>`,
		`<input type="hidden" name="_csrf" value="token">`,
		`<input type="hidden" name="_type" value="client">`,
		`name="Client" value="ws1" maxlength="32" readonly required>`,
		`<option value="unix" selected>unix</option>`,
		"//depot/a/... //ws1/a/...\n//depot/b/... //ws1/b/...</textarea>",
		`<label for="sf-SubmitOptions">Submit Options</label>`,
		`noallwrite/allwrite, noclobber/clobber`,
		`<button type="submit">Save</button>`,
	)
	if strings.Index(text, `name="_csrf"`) > strings.Index(text, `name="_type"`) {
		t.Fatalf("hidden fields not sorted")
	}
}

type translations map[string]string

func (t translations) Translate(_ string, key string, _ ...any) (string, error) {
	return t[key], nil
}

func TestRenderer_Translations(t *testing.T) {
	renderer := newRenderer(t, html.WithSubmitLabel("Update"))

	out, err := renderer.Render(context.Background(), clientForm(t), render.RenderOptions{
		Locale: "de",
		Translator: translations{
			"client.title":        "Arbeitsbereich",
			"client.fields.Owner": "Besitzer",
			"client.submit":       "Speichern",
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out),
		`<h2 class="specform-title">Arbeitsbereich</h2>`,
		`<label for="sf-Owner">Besitzer</label>`,
		`<label for="sf-Host">Host</label>`,
		`<button type="submit">Speichern</button>`,
	)
}

func TestRenderer_SanitizesText(t *testing.T) {
	out, err := newRenderer(t).Render(context.Background(), clientForm(t), render.RenderOptions{
		Subset: render.FieldSubset{Tags: []string{"Description"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(out)
	assertContains(t, text, ">Created by ada.</textarea>")
	if strings.Contains(text, "<b>") || strings.Contains(text, "&lt;b&gt;") {
		t.Fatalf("markup leaked into output:\n%s", text)
	}
}

func TestRenderer_EscapesValues(t *testing.T) {
	form := clientForm(t)
	form.Record.Store("Owner", record.Scalar(`"><script>alert(1)</script>`))

	out, err := newRenderer(t).Render(context.Background(), form, render.RenderOptions{
		Subset: render.FieldSubset{Tags: []string{"Owner"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("value was not escaped:\n%s", out)
	}
}

func TestRenderer_Errors(t *testing.T) {
	out, err := newRenderer(t, html.WithSubmitLabel("Update")).Render(context.Background(), clientForm(t), render.RenderOptions{
		Title:      "Edit ws1",
		Labels:     map[string]string{"owner": "Owned by"},
		Errors:     map[string][]string{"owner": {"unknown user"}, "quota": {"over quota"}},
		FormErrors: []string{"try again"},
		Subset:     render.FieldSubset{Tags: []string{"Owner"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertContains(t, string(out),
		`<h2 class="specform-title">Edit ws1</h2>`,
		"<li>try again</li>",
		"<li>over quota</li>",
		`specform-line has-error`,
		`<label for="sf-Owner">Owned by</label>`,
		`<p class="specform-error">unknown user</p>`,
		`<button type="submit">Update</button>`,
	)
	if strings.Contains(string(out), `name="Client"`) {
		t.Fatalf("subset ignored")
	}
}

func TestRenderer_CustomTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/form.tpl": {Data: []byte("{{ type }}:{% for field in fields %} {{ field.tag }}={{ field.kind }}{% endfor %}")},
	}
	out, err := newRenderer(t, html.WithTemplatesFS(files)).Render(context.Background(), clientForm(t), render.RenderOptions{
		Subset: render.FieldSubset{Tags: []string{"Client", "View", "LineEnd", "Description"}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "client: Client=line Description=text LineEnd=select View=list"
	if string(out) != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, out)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Render(ctx, clientForm(t), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestDecode(t *testing.T) {
	values := url.Values{
		"_type":       {"client"},
		"Client":      {"ignored"},
		"Owner":       {" ada "},
		"Description": {"line one\r\nline two"},
		"View":        {"//depot/a/... //ws1/a/...\r\n\r\n//depot/b/... //ws1/b/...\r\n"},
		"Host":        {""},
	}

	typ, rec, err := html.Decode(spec.NewRegistry(), values)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if typ != "client" {
		t.Fatalf("type = %q", typ)
	}
	if diff := cmp.Diff([]string{"Owner", "Description", "View"}, rec.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if got, _ := record.GetScalar(rec, "description"); got != "line one\nline two\n" {
		t.Fatalf("Description = %q", got)
	}
	if got, _ := record.GetList(rec, "View"); len(got) != 2 {
		t.Fatalf("View = %v", got)
	}

	if _, _, err := html.Decode(spec.NewRegistry(), url.Values{}); err == nil {
		t.Fatalf("expected error without type")
	}
	if _, _, err := html.Decode(spec.NewRegistry(), url.Values{"_type": {"nope"}}); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}
