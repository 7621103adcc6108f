package record

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func sampleRecord() *Record {
	rec := New()
	rec.Store("Job", Scalar("job000001"))
	rec.Store("Status", Scalar("open"))
	rec.Store("Files", List(Scalar("//depot/a"), Value{}, Scalar("//depot/c")))
	rec.Store("Description", Scalar("line one\nline two\n"))
	return rec
}

func TestRecord_JSONKeepsInsertionOrder(t *testing.T) {
	data, err := json.Marshal(sampleRecord())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"Job":"job000001","Status":"open","Files":["//depot/a",null,"//depot/c"],"Description":"line one\nline two\n"}`
	if string(data) != want {
		t.Fatalf("json mismatch:\n got %s\nwant %s", data, want)
	}

	decoded := New()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(sampleRecord().Keys(), decoded.Keys()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if !decoded.Equal(sampleRecord()) {
		t.Fatalf("decoded record differs: %v", decoded.Map())
	}
}

func TestRecord_JSONNumbersBecomeStrings(t *testing.T) {
	decoded := New()
	if err := json.Unmarshal([]byte(`{"Change": 42, "Ready": true}`), decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, _ := GetScalar(decoded, "Change"); got != "42" {
		t.Fatalf("Change = %q", got)
	}
	if got, _ := GetScalar(decoded, "Ready"); got != "true" {
		t.Fatalf("Ready = %q", got)
	}

	if err := json.Unmarshal([]byte(`["not", "an", "object"]`), decoded); err == nil {
		t.Fatalf("expected error for non-object input")
	}
}

func TestRecord_YAMLKeepsInsertionOrder(t *testing.T) {
	data, err := yaml.Marshal(sampleRecord())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	decoded := New()
	if err := yaml.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, data)
	}
	if diff := cmp.Diff(sampleRecord().Keys(), decoded.Keys()); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	if !decoded.Equal(sampleRecord()) {
		t.Fatalf("decoded record differs:\n%s", data)
	}
}

func TestRecord_Canonical(t *testing.T) {
	rec := New()
	rec.Store("Client", Scalar("ws1"))
	rec.Store("client", Scalar("shadow"))
	rec.SetNames(map[string]string{"Root": "Root", "altroots": "AltRoots"})

	cases := map[string]string{
		"client":   "client",
		"Client":   "Client",
		"CLIENT":   "Client",
		"root":     "Root",
		"ALTROOTS": "AltRoots",
		"Unknown":  "Unknown",
	}
	for name, want := range cases {
		if got := rec.Canonical(name); got != want {
			t.Errorf("Canonical(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestRecord_EqualIgnoresOrder(t *testing.T) {
	a := New()
	a.Store("A", Scalar("1"))
	a.Store("B", Strings("x", "y"))

	b := New()
	b.Store("B", Strings("x", "y"))
	b.Store("A", Scalar("1"))
	b.SetNames(map[string]string{"a": "A"})

	if !a.Equal(b) {
		t.Fatalf("records should be equal")
	}

	b.Store("B", Strings("x", "y", ""))
	if a.Equal(b) {
		t.Fatalf("trailing slot must be significant")
	}
}

func TestRecord_DeleteAndClone(t *testing.T) {
	rec := sampleRecord()
	clone := rec.Clone()

	rec.Delete("Status")
	rec.Delete("Missing")
	if diff := cmp.Diff([]string{"Job", "Files", "Description"}, rec.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if !clone.Has("Status") {
		t.Fatalf("clone lost a field")
	}
}
