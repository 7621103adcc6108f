package spec

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type overrideFile struct {
	Specs map[string]string `json:"specs" yaml:"specs"`
}

// LoadFS walks fsys for JSON/YAML documents of the form
//
//	specs:
//	  client: "Client;code:301;rq;ro;;..."
//
// and defines each entry on the registry. Every definition is parsed up
// front; on any error the registry is left unchanged. A nil fsys is a no-op.
func LoadFS(fsys fs.FS, registry *Registry) error {
	if fsys == nil {
		return nil
	}
	if registry == nil {
		return fmt.Errorf("spec: registry is required")
	}

	loaded := make(map[string]string)
	sources := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverrideFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("spec: read %s: %w", path, err)
		}

		doc, err := parseOverrideFile(data, path)
		if err != nil {
			return err
		}

		for rawType, text := range doc.Specs {
			typ := strings.TrimSpace(rawType)
			if typ == "" {
				return fmt.Errorf("spec: file %s defines an empty record type", path)
			}
			if prev, exists := sources[typ]; exists {
				return fmt.Errorf("spec: duplicate definition for %q (files %s and %s)", typ, prev, path)
			}
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("spec: file %s defines an empty definition for %q", path, typ)
			}
			if _, err := Parse(text); err != nil {
				return fmt.Errorf("spec: file %s type %q: %w", path, typ, err)
			}
			loaded[typ] = text
			sources[typ] = path
		}
		return nil
	})
	if err != nil {
		return err
	}

	types := make([]string, 0, len(loaded))
	for typ := range loaded {
		types = append(types, typ)
	}
	sort.Strings(types)
	for _, typ := range types {
		registry.Define(typ, loaded[typ])
	}
	return nil
}

func parseOverrideFile(data []byte, source string) (overrideFile, error) {
	var doc overrideFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return overrideFile{}, fmt.Errorf("spec: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = overrideFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return overrideFile{}, fmt.Errorf("spec: parse %s: invalid JSON or YAML", source)
}

func isOverrideFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
