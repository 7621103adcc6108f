package openapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-specform/pkg/openapi"
	"github.com/goliatone/go-specform/pkg/spec"
)

func TestSchemaFor_Job(t *testing.T) {
	schema, err := openapi.SchemaFor(spec.NewRegistry(), "job")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	if !schema.Type.Is(openapi3.TypeObject) || schema.Title != "job" {
		t.Fatalf("unexpected schema header: %v %q", schema.Type, schema.Title)
	}
	if diff := cmp.Diff([]string{"Job", "Status", "User", "Description"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Job", "Status", "User", "Date", "Description"}, schema.Extensions[openapi.OrderExtension]); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	status := schema.Properties["Status"].Value
	if diff := cmp.Diff([]any{"open", "suspended", "closed"}, status.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
	if status.Default != "open" {
		t.Fatalf("Status default = %v", status.Default)
	}
	if status.MaxLength == nil || *status.MaxLength != 10 {
		t.Fatalf("Status maxLength = %v", status.MaxLength)
	}

	date := schema.Properties["Date"].Value
	if !date.ReadOnly || date.Default != nil {
		t.Fatalf("Date should be read-only without default: %+v", date)
	}
	if user := schema.Properties["User"].Value; user.Default != nil {
		t.Fatalf("variable preset leaked as default: %v", user.Default)
	}
}

func TestSchemaFor_Lists(t *testing.T) {
	schema, err := openapi.SchemaFor(spec.NewRegistry(), "client")
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	view := schema.Properties["View"].Value
	if !view.Type.Is(openapi3.TypeArray) || view.Items == nil {
		t.Fatalf("View should be an array: %+v", view)
	}
	if item := view.Items.Value; !item.Type.Is(openapi3.TypeString) || *item.MaxLength != 64 {
		t.Fatalf("unexpected View items: %+v", item)
	}
	if options := schema.Properties["Options"].Value; options.Description == "" || len(options.Enum) != 0 {
		t.Fatalf("option pairs should be described, not enumerated: %+v", options)
	}
}

func TestSchemaFor_UnknownType(t *testing.T) {
	_, err := openapi.SchemaFor(spec.NewRegistry(), "nope")
	if !errors.Is(err, spec.ErrUnknownSchema) {
		t.Fatalf("expected ErrUnknownSchema, got %v", err)
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	ctx := context.Background()
	registry := spec.NewRegistry()
	registry.Define("widget", "Name;code:1;rq;len:16;;Items;code:2;type:wlist;;Kind;code:3;type:select;val:a/b;;")

	doc, err := openapi.Document(ctx, registry, []string{"job", "client", "widget"}, openapi.WithInfo("Specs", "2"))
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if doc.Info.Title != "Specs" || doc.Info.Version != "2" {
		t.Fatalf("unexpected info: %+v", doc.Info)
	}
	if len(doc.Components.Schemas) != 3 {
		t.Fatalf("expected 3 schemas, got %d", len(doc.Components.Schemas))
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	loaded, err := openapi.Load(ctx, raw)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	target := spec.NewRegistry()
	target.Reset()
	types, err := openapi.Register(target, loaded)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if diff := cmp.Diff([]string{"client", "job", "widget"}, types); diff != "" {
		t.Fatalf("types mismatch (-want +got):\n%s", diff)
	}

	for _, typ := range types {
		want, err := registry.Definition(typ)
		if err != nil {
			t.Fatalf("definition %s: %v", typ, err)
		}
		got, err := target.Definition(typ)
		if err != nil {
			t.Fatalf("registered definition %s: %v", typ, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", typ, diff)
		}
	}
}

func TestDocument_AllTypes(t *testing.T) {
	registry := spec.NewRegistry()
	doc, err := openapi.Document(context.Background(), registry, nil)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if len(doc.Components.Schemas) != len(registry.Types()) {
		t.Fatalf("expected %d schemas, got %d", len(registry.Types()), len(doc.Components.Schemas))
	}
}

func TestFromSchema_ForeignSchema(t *testing.T) {
	schema := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema().WithMaxLength(40)).
		WithProperty("tags", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("state", openapi3.NewStringSchema().WithEnum("draft", "live"))
	schema.Required = []string{"title"}

	def, err := openapi.FromSchema(schema)
	if err != nil {
		t.Fatalf("from schema: %v", err)
	}

	want := spec.Definition{
		{Tag: "state", Code: 1, Type: spec.TypeSelect, Values: "draft/live"},
		{Tag: "tags", Code: 2, Type: spec.TypeWList},
		{Tag: "title", Code: 3, Type: spec.TypeWord, Required: true, Len: 40},
	}
	if diff := cmp.Diff(want, def); diff != "" {
		t.Fatalf("definition mismatch (-want +got):\n%s", diff)
	}
}
