package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-specform/pkg/render"
)

func TestHiddenFields(t *testing.T) {
	merged := render.MergeHiddenFields(
		map[string]string{" _type ": "client", "": "dropped"},
		render.CSRFToken("_csrf", "token"),
		render.Hidden("version", 3),
		render.Hidden("  ", "ignored"),
	)

	want := []render.HiddenField{
		{Name: "_csrf", Value: "token"},
		{Name: "_type", Value: "client"},
		{Name: "version", Value: "3"},
	}
	if diff := cmp.Diff(want, render.SortedHiddenFields(merged)); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}

	if render.MergeHiddenFields(nil) != nil {
		t.Fatalf("expected nil for empty input")
	}
}

func TestHiddenFields_TrimmedNamesCollapse(t *testing.T) {
	merged := render.MergeHiddenFields(nil,
		render.HiddenField{Name: " _type", Value: "job"},
		render.HiddenField{Name: "_type ", Value: "client"},
	)
	if diff := cmp.Diff(map[string]string{"_type": "client"}, merged); diff != "" {
		t.Fatalf("merged mismatch (-want +got):\n%s", diff)
	}

	sorted := render.SortedHiddenFields(map[string]string{
		" _type":  "padded",
		"_type":   "exact",
		"  ":      "dropped",
		"version": "3",
	})
	want := []render.HiddenField{
		{Name: "_type", Value: "exact"},
		{Name: "version", Value: "3"},
	}
	if diff := cmp.Diff(want, sorted); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}

	if render.SortedHiddenFields(map[string]string{" ": "x"}) != nil {
		t.Fatalf("expected nil for empty input")
	}
}
