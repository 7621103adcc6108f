package openapi

import (
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-specform/pkg/spec"
)

const (
	// DefinitionExtension holds the definition string of a record type.
	DefinitionExtension = "x-specform-definition"
	// OrderExtension lists the field tags in definition order.
	OrderExtension = "x-specform-order"
	// FieldExtension holds the field type and code of a property.
	FieldExtension = "x-specform-field"
)

// Schema converts def into an object schema with one string or array
// property per field.
func Schema(def spec.Definition) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Extensions = map[string]any{
		DefinitionExtension: def.String(),
		OrderExtension:      def.Tags(),
	}

	for _, field := range def {
		schema.Properties[field.Tag] = openapi3.NewSchemaRef("", property(field))
		if field.Required {
			schema.Required = append(schema.Required, field.Tag)
		}
	}
	return schema
}

// SchemaFor resolves typ in registry and converts its definition.
func SchemaFor(registry *spec.Registry, typ string) (*openapi3.Schema, error) {
	def, err := registry.Definition(typ)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}
	schema := Schema(def)
	schema.Title = typ
	return schema, nil
}

func property(field spec.Field) *openapi3.Schema {
	value := openapi3.NewStringSchema()
	if field.Len > 0 {
		value.WithMaxLength(int64(field.Len))
	}

	switch {
	case field.Type == spec.TypeSelect && len(field.Options()) > 0:
		for _, option := range field.Options() {
			value.Enum = append(value.Enum, option)
		}
	case len(field.OptionPairs()) > 0:
		groups := make([]string, 0, len(field.OptionPairs()))
		for _, group := range field.OptionPairs() {
			groups = append(groups, strings.Join(group, "|"))
		}
		value.Description = "Words, in order: " + strings.Join(groups, " ")
	}
	if presetDefault(field) {
		value.Default = field.Preset
	}

	out := value
	if field.IsList() {
		out = openapi3.NewArraySchema().WithItems(value)
	}
	out.ReadOnly = field.ReadOnly
	out.Extensions = map[string]any{
		FieldExtension: map[string]any{
			"type": string(field.Type),
			"code": field.Code,
		},
	}
	return out
}

// presetDefault reports whether the field's preset is a literal value that
// fits the property. Presets naming a variable ("$user") stay server side.
func presetDefault(field spec.Field) bool {
	if field.Preset == "" || strings.HasPrefix(field.Preset, "$") {
		return false
	}
	options := field.Options()
	if field.Type != spec.TypeSelect || len(options) == 0 {
		return true
	}
	for _, option := range options {
		if option == field.Preset {
			return true
		}
	}
	return false
}

// FromSchema rebuilds a definition from schema. Schemas written by Schema
// are parsed from their definition extension. Other object schemas are
// mapped field by field in property name order: arrays become word lists,
// enums selects and everything else words.
func FromSchema(schema *openapi3.Schema) (spec.Definition, error) {
	if schema == nil {
		return nil, fmt.Errorf("openapi: schema is nil")
	}
	if raw, ok := schema.Extensions[DefinitionExtension].(string); ok && raw != "" {
		def, err := spec.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("openapi: %s: %w", DefinitionExtension, err)
		}
		return def, nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	def := make(spec.Definition, 0, len(names))
	for i, name := range names {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		def = append(def, fieldFromProperty(name, i, ref.Value, required[name]))
	}
	return def, nil
}

func fieldFromProperty(name string, index int, value *openapi3.Schema, required bool) spec.Field {
	field := spec.Field{
		Tag:      name,
		Code:     index + 1,
		Type:     spec.TypeWord,
		Required: required,
		ReadOnly: value.ReadOnly,
	}

	item := value
	if value.Type.Is(openapi3.TypeArray) && value.Items != nil && value.Items.Value != nil {
		field.Type = spec.TypeWList
		item = value.Items.Value
	}
	if item.MaxLength != nil {
		field.Len = int(*item.MaxLength)
	}
	if len(item.Enum) > 0 && field.Type == spec.TypeWord {
		options := make([]string, 0, len(item.Enum))
		for _, option := range item.Enum {
			options = append(options, fmt.Sprint(option))
		}
		field.Type = spec.TypeSelect
		field.Values = strings.Join(options, "/")
	}
	if def, ok := item.Default.(string); ok {
		field.Preset = def
	}
	return field
}
