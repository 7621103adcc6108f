package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-specform/pkg/dict"
	"github.com/goliatone/go-specform/pkg/record"
)

// readInput reads the file named by args[index], or stdin when absent or
// "-".
func readInput(cmd *cobra.Command, args []string, index int) ([]byte, error) {
	if len(args) > index && args[index] != "-" {
		data, err := os.ReadFile(args[index])
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

// decodeDict accepts a JSON array of [key, value] pairs or key=value lines.
func decodeDict(data []byte) (dict.Dict, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var d dict.Dict
		if err := json.Unmarshal(trimmed, &d); err != nil {
			return nil, fmt.Errorf("decode dictionary: %w", err)
		}
		return d, nil
	}
	d, err := dict.ReadLines(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode dictionary: %w", err)
	}
	return d, nil
}

// decodeRecord accepts a JSON object or a YAML mapping.
func decodeRecord(data []byte) (*record.Record, error) {
	rec := record.New()
	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("{")) {
		if err := json.Unmarshal(trimmed, rec); err != nil {
			return nil, err
		}
		return rec, nil
	}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (a *app) writeRecord(w io.Writer, rec *record.Record) error {
	if a.cfg.Output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(rec)
}
