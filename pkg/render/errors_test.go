package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-specform/pkg/render"
	"github.com/goliatone/go-specform/pkg/spec"
)

func clientForm(t *testing.T) render.Form {
	t.Helper()
	form, err := render.NewForm(spec.NewRegistry(), "client", nil)
	if err != nil {
		t.Fatalf("new form: %v", err)
	}
	return form
}

func TestMapErrors_ResolvesTags(t *testing.T) {
	payload := map[string][]string{
		"client":  {"Client name is taken"},
		"VIEW3":   {"Mapping is malformed"},
		"View":    {"Mapping is malformed", " Too many lines "},
		"Bogus":   {"Should fall back to form errors"},
		"":        {"Unscoped form error"},
		"Owner":   {"  "},
		"1234":    {"Digits only"},
		"Options": nil,
	}

	mapped := render.MapErrors(clientForm(t), payload)

	wantFields := map[string][]string{
		"Client": {"Client name is taken"},
		"View":   {"Mapping is malformed", "Too many lines"},
	}
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(wantFields, mapped.Fields, sortStrings); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}

	wantForm := []string{"Digits only", "Should fall back to form errors", "Unscoped form error"}
	if diff := cmp.Diff(wantForm, mapped.Form, sortStrings); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrors_EmptyPayload(t *testing.T) {
	mapped := render.MapErrors(clientForm(t), nil)
	if mapped.Fields != nil || mapped.Form != nil {
		t.Fatalf("expected empty mapping, got %#v", mapped)
	}
}

func TestMergeFormErrors(t *testing.T) {
	merged := render.MergeFormErrors([]string{" First ", "Second"}, "Second", "third", "  ")
	want := []string{"First", "Second", "third"}

	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merged form errors mismatch (-want +got):\n%s", diff)
	}
}
