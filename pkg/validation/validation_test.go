package validation_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
	"github.com/goliatone/go-specform/pkg/validation"
)

func definition(t *testing.T, typ string) spec.Definition {
	t.Helper()
	def, err := spec.NewRegistry().Definition(typ)
	if err != nil {
		t.Fatalf("definition %s: %v", typ, err)
	}
	return def
}

func TestValidate_ValidJob(t *testing.T) {
	rec := record.New()
	rec.Store("Job", record.Scalar("job000001"))
	rec.Store("Status", record.Scalar("open"))
	rec.Store("User", record.Scalar("ada"))
	rec.Store("Description", record.Scalar("line one\nline two\n"))

	result := validation.Validate(definition(t, "job"), rec)
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid record, got %+v", result.Issues)
	}
	if result.Err() != nil || result.Errors() != nil {
		t.Fatalf("valid result should carry no errors")
	}
}

func TestValidate_JobIssues(t *testing.T) {
	rec := record.New()
	rec.Store("job", record.Scalar("two words"))
	rec.Store("Status", record.Scalar("pending"))
	rec.Store("User", record.Strings("ada", "bob"))

	result := validation.Validate(definition(t, "job"), rec)
	if result.Valid {
		t.Fatalf("expected invalid record")
	}

	want := []validation.Issue{
		{Path: "Job", Field: "Job", Message: "must be a single word"},
		{Path: "Status", Field: "Status", Message: "must be one of open, suspended, closed"},
		{Path: "User", Field: "User", Message: "must be a single value"},
		{Path: "Description", Field: "Description", Message: "is required"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	errs := result.Errors()
	if diff := cmp.Diff([]string{"is required"}, errs["Description"]); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if err := result.Err(); err == nil || !strings.Contains(err.Error(), "Status: must be one of") {
		t.Fatalf("joined error missing issue: %v", err)
	}
}

func TestValidate_ClientListsAndOptions(t *testing.T) {
	rec := record.New()
	rec.Store("Client", record.Scalar("ws1"))
	rec.Store("Root", record.Scalar("/home/ada/ws1"))
	rec.Store("Options", record.Scalar("allwrite noallwrite turbo"))
	rec.Store("View", record.Strings(
		"//depot/a/... //ws1/a/...",
		`"//depot/with space/..." "//ws1/with space/..."`,
		"//depot/b/...",
		`"//depot/open/... //ws1/open/...`,
	))

	result := validation.Validate(definition(t, "client"), rec)

	want := []validation.Issue{
		{Path: "Options", Field: "Options", Message: `options "allwrite" and "noallwrite" conflict`},
		{Path: "View2", Field: "View", Message: "must have 2 words"},
		{Path: "View3", Field: "View", Message: "has an unterminated quote"},
	}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_MultiLineRoot(t *testing.T) {
	rec := record.New()
	rec.Store("Client", record.Scalar("ws1"))
	rec.Store("Root", record.Scalar("/x\nHost:\tevil"))
	rec.Store("View", record.Strings("//depot/... //ws1/..."))

	result := validation.Validate(definition(t, "client"), rec)

	want := []validation.Issue{{Path: "Root", Field: "Root", Message: "must fit on one line"}}
	if diff := cmp.Diff(want, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_ScalarWhereListExpected(t *testing.T) {
	def, err := spec.Parse("Paths;code:1;type:wlist;rq;words:2;maxwords:3;;")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	rec := record.New()
	rec.Store("Paths", record.Scalar("share ..."))
	result := validation.Validate(def, rec)
	if diff := cmp.Diff([]validation.Issue{{Path: "Paths", Field: "Paths", Message: "must be a list"}}, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}

	result = validation.Validate(def, record.New())
	if diff := cmp.Diff([]validation.Issue{{Path: "Paths", Field: "Paths", Message: "is required"}}, result.Issues); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
}

func TestValue(t *testing.T) {
	paths := spec.Field{Tag: "Paths", Type: spec.TypeWList, Words: 2, MaxWords: 3}
	port := spec.Field{Tag: "Port", Type: spec.TypeWord, Required: true, Len: 5}
	desc := spec.Field{Tag: "Description", Type: spec.TypeText, Len: 4}
	root := spec.Field{Tag: "Root", Type: spec.TypeLine, Len: 64}
	status := spec.Field{Tag: "Status", Type: spec.TypeSelect, Values: "open/closed"}

	cases := []struct {
		name  string
		field spec.Field
		value string
		want  string
	}{
		{name: "list within bounds", field: paths, value: "share ... remapped"},
		{name: "list too long", field: paths, value: "a b c d", want: "must have 2 to 3 words"},
		{name: "required blank", field: port, value: "   ", want: "is required"},
		{name: "too long", field: port, value: "123456", want: "must be at most 5 characters"},
		{name: "fits", field: port, value: " 1666 "},
		{name: "text ignores length", field: desc, value: "a long description\n"},
		{name: "text spans lines", field: desc, value: "one\nHost:\tevil\n"},
		{name: "word line break", field: port, value: "16\n66", want: "must fit on one line"},
		{name: "line line break", field: root, value: "/x\nHost:\tevil", want: "must fit on one line"},
		{name: "line carriage return", field: root, value: "/x\rHost:\tevil", want: "must fit on one line"},
		{name: "select line break", field: status, value: "open\nclosed", want: "must fit on one line"},
		{name: "list line break", field: paths, value: "a b\nHost:\tevil", want: "must fit on one line"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validation.Value(tc.field, tc.value)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	words, err := validation.SplitWords(`  -"//depot/a b/..."   //ws/x/...  `)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if diff := cmp.Diff([]string{"-//depot/a b/...", "//ws/x/..."}, words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
}
