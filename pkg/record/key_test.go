package record

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitKey(t *testing.T) {
	cases := []struct {
		key   string
		base  string
		index string
	}{
		{key: "Client", base: "Client", index: ""},
		{key: "View0", base: "View", index: "0"},
		{key: "View12", base: "View", index: "12"},
		{key: "how1,0", base: "how", index: "1,0"},
		{key: "depotFile10,2,7", base: "depotFile", index: "10,2,7"},
		{key: "License-Expires", base: "License-Expires", index: ""},
		{key: "ExtP4USER", base: "ExtP4USER", index: ""},
		{key: "P4v2rev3", base: "P4v2rev", index: "3"},
		{key: "trailing,", base: "trailing", index: ","},
		{key: "1234", base: "", index: "1234"},
		{key: "", base: "", index: ""},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			base, index := SplitKey(tc.key)
			if base != tc.base || index != tc.index {
				t.Fatalf("SplitKey(%q) = (%q, %q), want (%q, %q)", tc.key, base, index, tc.base, tc.index)
			}
		})
	}
}

func TestParseIndex(t *testing.T) {
	cases := []struct {
		index     string
		levels    []int
		malformed bool
	}{
		{index: "", levels: nil},
		{index: "0", levels: []int{0}},
		{index: "3,1", levels: []int{3, 1}},
		{index: "0,", levels: []int{0, 0}, malformed: true},
		{index: ",2", levels: []int{0, 2}, malformed: true},
		{index: "1,,2", levels: []int{1, 0, 2}, malformed: true},
		{index: "99999999999999999999999", levels: []int{0}, malformed: true},
	}

	for _, tc := range cases {
		t.Run(tc.index, func(t *testing.T) {
			levels, malformed := ParseIndex(tc.index)
			if diff := cmp.Diff(tc.levels, levels); diff != "" {
				t.Fatalf("levels mismatch (-want +got):\n%s", diff)
			}
			if malformed != tc.malformed {
				t.Fatalf("malformed = %v, want %v", malformed, tc.malformed)
			}
		})
	}
}
