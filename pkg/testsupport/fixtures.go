package testsupport

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-specform/pkg/dict"
	"github.com/goliatone/go-specform/pkg/record"
)

// LoadDict reads a dictionary fixture. Testing helpers fail the test on error
// to keep table tests concise.
func LoadDict(t *testing.T, path string) dict.Dict {
	t.Helper()

	d, err := LoadDictFromPath(path)
	if err != nil {
		t.Fatalf("load dict: %v", err)
	}
	return d
}

// LoadDictFromPath reads a dictionary fixture without requiring testing.T.
// Files ending in .json hold a [[key, value], ...] array; anything else is
// read as key=value lines.
func LoadDictFromPath(path string) (dict.Dict, error) {
	if path == "" {
		return nil, errors.New("testsupport: dict path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read dict: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		var d dict.Dict
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("testsupport: unmarshal dict: %w", err)
		}
		return d, nil
	}
	d, err := dict.ReadLines(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("testsupport: parse dict: %w", err)
	}
	return d, nil
}

// MustLoadRecord loads a JSON golden file into a Record.
func MustLoadRecord(t *testing.T, path string) *record.Record {
	t.Helper()

	rec, err := LoadRecord(path)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	return rec
}

// LoadRecord reads a JSON fixture into a Record, returning an error for
// callers managing setup outside of *testing.T.
func LoadRecord(path string) (*record.Record, error) {
	if path == "" {
		return nil, errors.New("testsupport: record path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read record: %w", err)
	}
	rec := record.New()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal record: %w", err)
	}
	return rec, nil
}

// WriteRecord writes a record golden when UPDATE_GOLDENS is enabled.
func WriteRecord(t *testing.T, path string, rec *record.Record) {
	t.Helper()
	WriteGolden(t, path, rec)
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// RecordDiff compares two records field by field and then by key order.
func RecordDiff(want, got *record.Record) string {
	if diff := cmp.Diff(want.Map(), got.Map()); diff != "" {
		return diff
	}
	return cmp.Diff(want.Keys(), got.Keys())
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// CaptureRenderOutput executes a render function that writes to an io.Writer,
// returning both the returned payload and the writer contents so renderer
// tests can assert they agree.
func CaptureRenderOutput(t *testing.T, render func(io.Writer) ([]byte, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	return string(out), buf.String()
}

// CaptureTemplateOutput is CaptureRenderOutput for template engines that
// return strings.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
