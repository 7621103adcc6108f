// Package dict models the flat, ordered key/value dictionaries produced by
// server responses and by form parsing. Keys may repeat; list and nested-list
// structure is encoded in key suffixes ("View0", "depotFile1,0") and only
// reconstructed by the record builder.
package dict

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Well-known protocol keys carried alongside record content.
const (
	KeySpecDef       = "specdef"
	KeyData          = "data"
	KeySpecFormatted = "specFormatted"
	KeyFunc          = "func"
)

// Entry is one key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Dict is an ordered sequence of entries.
type Dict []Entry

// FromPairs builds a Dict from alternating key, value arguments. A trailing
// key without a value is paired with "".
func FromPairs(pairs ...string) Dict {
	d := make(Dict, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		entry := Entry{Key: pairs[i]}
		if i+1 < len(pairs) {
			entry.Value = pairs[i+1]
		}
		d = append(d, entry)
	}
	return d
}

// Get returns the value of the first entry with the given key.
func (d Dict) Get(key string) (string, bool) {
	for _, entry := range d {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Has reports whether any entry carries key.
func (d Dict) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Add appends an entry, keeping any existing entries for the same key.
func (d *Dict) Add(key, value string) {
	*d = append(*d, Entry{Key: key, Value: value})
}

// Set replaces the value of the first entry for key, appending when absent.
func (d *Dict) Set(key, value string) {
	for i := range *d {
		if (*d)[i].Key == key {
			(*d)[i].Value = value
			return
		}
	}
	d.Add(key, value)
}

// Keys returns the keys in order, duplicates included.
func (d Dict) Keys() []string {
	keys := make([]string, len(d))
	for i, entry := range d {
		keys[i] = entry.Key
	}
	return keys
}

// Clone returns an independent copy.
func (d Dict) Clone() Dict {
	if d == nil {
		return nil
	}
	out := make(Dict, len(d))
	copy(out, d)
	return out
}

// MarshalJSON encodes the dictionary as an array of [key, value] pairs so
// order and duplicates survive.
func (d Dict) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, len(d))
	for i, entry := range d {
		pairs[i] = [2]string{entry.Key, entry.Value}
	}
	return json.Marshal(pairs)
}

// UnmarshalJSON accepts the array-of-pairs encoding produced by MarshalJSON.
func (d *Dict) UnmarshalJSON(data []byte) error {
	var pairs [][2]string
	if err := json.Unmarshal(data, &pairs); err != nil {
		return fmt.Errorf("dict: decode pairs: %w", err)
	}
	out := make(Dict, len(pairs))
	for i, pair := range pairs {
		out[i] = Entry{Key: pair[0], Value: pair[1]}
	}
	*d = out
	return nil
}

// ReadLines parses "key=value" lines. Blank lines and lines starting with '#'
// are skipped; a line without '=' is an error.
func ReadLines(r io.Reader) (Dict, error) {
	var d Dict
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("dict: line %d: expected key=value", lineNo)
		}
		d.Add(key, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dict: read: %w", err)
	}
	return d, nil
}
