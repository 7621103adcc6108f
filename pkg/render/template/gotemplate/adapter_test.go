package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-specform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-specform/pkg/testsupport"
)

func templatesFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.tpl":      {Data: []byte("Hello {{ name }}.")},
		"use-global.tpl": {Data: []byte("env={{ settings.env }}")},
		"use-filter.tpl": {Data: []byte("{{ name|adapter_shout }}")},
		"fields.tpl": {Data: []byte(
			"{% for field in fields %}{{ field.tag }}={{ field.value }};{% endfor %}",
		)},
		"custom.html": {Data: []byte("<p>{{ name }}</p>")},
	}
}

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS())}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
	if result != "Hello Ada." {
		t.Fatalf("unexpected result %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}

	again, err := engine.RenderTemplate("hello.tpl", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render with extension: %v", err)
	}
	if again != "Hello Grace." {
		t.Fatalf("unexpected result %q", again)
	}
}

func TestEngine_RenderTemplate_NestedData(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"fields": []any{
			map[string]any{"tag": "Client", "value": "ws1"},
			map[string]any{"tag": "Owner", "value": "ada"},
		},
	}
	got, err := engine.RenderTemplate("fields", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Client=ws1;Owner=ada;" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestEngine_WithExtension(t *testing.T) {
	engine := newEngine(t, gotemplate.WithExtension("html"))

	got, err := engine.RenderTemplate("custom", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<p>Ada</p>" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("absent", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"settings": map[string]any{"env": "dev"}}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=dev" {
		t.Fatalf("unexpected result %q", got)
	}

	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
	if result != "env=staging" || written != result {
		t.Fatalf("unexpected output result=%q written=%q", result, written)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("adapter_shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected result %q", got)
	}

	if err := engine.RegisterFilter("adapter_shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
}

func TestEngine_WithFilter(t *testing.T) {
	engine := newEngine(t, gotemplate.WithFilter("adapter_reverse", func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
		runes := []rune(in.String())
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return pongo2.AsValue(string(runes)), nil
	}))

	got, err := engine.RenderString("{{ word|adapter_reverse }}", map[string]any{"word": "depot"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "toped" {
		t.Fatalf("unexpected result %q", got)
	}
}

func TestEngine_RenderDispatch(t *testing.T) {
	engine := newEngine(t)

	inline, err := engine.Render("<b>{{ name }}</b>", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render inline: %v", err)
	}
	if inline != "<b>Ada</b>" {
		t.Fatalf("unexpected inline result %q", inline)
	}

	named, err := engine.Render("hello", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render named: %v", err)
	}
	if named != "Hello Ada." {
		t.Fatalf("unexpected named result %q", named)
	}
}

func TestEngine_RenderString_ParseError(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderString("{% for %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
