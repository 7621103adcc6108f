package data_test

import (
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-specform/pkg/record"
)

func yamlDecode(raw []byte, rec *record.Record) error {
	return yaml.Unmarshal(raw, rec)
}
