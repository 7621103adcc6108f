package record

import (
	"strconv"
	"strings"
)

// SplitKey separates a flat dictionary key into its base name and index
// suffix by scanning backwards over trailing digits and commas: "View0"
// yields ("View", "0"), "how1,0" yields ("how", "1,0") and "Client" yields
// ("Client", ""). A key made only of digits and commas has an empty base,
// which callers must treat as unusable.
func SplitKey(key string) (base, index string) {
	i := len(key)
	for i > 0 {
		c := key[i-1]
		if (c < '0' || c > '9') && c != ',' {
			break
		}
		i--
	}
	return key[:i], key[i:]
}

// ParseIndex converts an index suffix into its levels, most significant
// first. Empty segments (a leading, trailing or doubled comma) and segments
// that overflow an int are read as 0 and reported through malformed, so the
// value is still inserted rather than lost.
func ParseIndex(index string) (levels []int, malformed bool) {
	if index == "" {
		return nil, false
	}
	parts := strings.Split(index, ",")
	levels = make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			malformed = true
			continue
		}
		levels[i] = n
	}
	return levels, malformed
}
