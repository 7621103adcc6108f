package forms

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-specform/internal/formtext"
	"github.com/goliatone/go-specform/pkg/dict"
	"github.com/goliatone/go-specform/pkg/record"
	"github.com/goliatone/go-specform/pkg/spec"
)

// extraTagKey prefixes the keys naming response fields the schema does not
// declare (extraTag0, extraTag1, ...). Each names another key whose value is
// carried over into the record.
const extraTagKey = "extraTag"

// Option customises a Manager.
type Option func(*Manager)

// WithRegistry injects the schema registry. Without it the manager owns a
// fresh registry seeded with the built-in definitions.
func WithRegistry(registry *spec.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

// WithLogger routes builder diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithCollisionSuffix overrides the suffix the builder appends to renamed
// scalar keys.
func WithCollisionSuffix(suffix string) Option {
	return func(m *Manager) {
		m.suffix = suffix
	}
}

// Manager converts between server dictionaries, form text and structured
// records for the types known to its registry. A Manager shares its
// registry's concurrency rules: callers serialise access.
type Manager struct {
	registry *spec.Registry
	builder  *record.Builder
	logger   *zap.Logger
	suffix   string
}

// New constructs a Manager applying any provided options.
func New(options ...Option) *Manager {
	m := &Manager{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(m)
	}
	if m.registry == nil {
		m.registry = spec.NewRegistry()
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	m.builder = record.NewBuilder(
		record.WithCollisionSuffix(m.suffix),
		record.WithLogger(m.logger),
	)
	return m
}

// Registry exposes the schema registry backing the manager.
func (m *Manager) Registry() *spec.Registry {
	return m.registry
}

// Builder exposes the record builder so callers can apply further keys with
// the manager's collision policy.
func (m *Manager) Builder() *record.Builder {
	return m.builder
}

// Fields returns the lowercase to canonical tag table for typ.
func (m *Manager) Fields(typ string) (map[string]string, error) {
	return m.registry.Fields(typ)
}

// ParseForm parses form text for typ into a record carrying the type's tag
// table. Unknown types fail with *spec.UnknownSchemaError, malformed schemas
// with *spec.SchemaError and bad form text with *GrammarError. The registry
// is never modified.
func (m *Manager) ParseForm(typ, text string) (*record.Record, error) {
	def, err := m.registry.Definition(typ)
	if err != nil {
		return nil, fmt.Errorf("forms: parse %s: %w", typ, err)
	}
	return m.parse(typ, def, text)
}

// FormatForm renders rec as form text for typ, in schema order. Scalar and
// list values holding a line break fail with an error matching ErrLineBreak.
func (m *Manager) FormatForm(typ string, rec record.Store) (string, error) {
	def, err := m.registry.Definition(typ)
	if err != nil {
		return "", fmt.Errorf("forms: format %s: %w", typ, err)
	}
	text, err := formtext.Format(def, formtext.FromRecord(rec))
	if err != nil {
		return "", fmt.Errorf("forms: format %s: %w", typ, err)
	}
	return text, nil
}

// Convert turns a tagged response dictionary into a record following the
// rules of era. Use DetectEra to pick the era from the dictionary itself.
//
// Legacy responses have their data text parsed with the embedded specdef.
// Formatted responses are normalised through the specdef and keep any
// fields listed under extraTagN. Plain responses go straight through the
// builder.
func (m *Manager) Convert(d dict.Dict, era Era) (*record.Record, error) {
	switch era {
	case EraLegacyText:
		def, err := m.embeddedDefinition(d)
		if err != nil {
			return nil, err
		}
		data, _ := d.Get(dict.KeyData)
		return m.parse("", def, data)
	case EraFormatted:
		def, err := m.embeddedDefinition(d)
		if err != nil {
			return nil, err
		}
		return m.normalise(def, d)
	default:
		rec, _ := m.builder.Build(d)
		return rec, nil
	}
}

// Output converts the response to command, caching a carried specdef in the
// registry under the command name first so later FormatForm and Input calls
// for that command use the server's schema.
func (m *Manager) Output(command string, d dict.Dict) (*record.Record, error) {
	if specdef, ok := d.Get(dict.KeySpecDef); ok && command != "" {
		m.registry.Define(command, specdef)
	}
	era := DetectEra(d)
	m.logger.Debug("forms: converting response", zap.String("command", command), zap.Stringer("era", era))
	return m.Convert(d, era)
}

// Input formats rec for submission as the input of command.
func (m *Manager) Input(command string, rec record.Store) (string, error) {
	return m.FormatForm(command, rec)
}

func (m *Manager) embeddedDefinition(d dict.Dict) (spec.Definition, error) {
	specdef, ok := d.Get(dict.KeySpecDef)
	if !ok {
		return nil, ErrMissingSpecDef
	}
	def, err := spec.Parse(specdef)
	if err != nil {
		return nil, fmt.Errorf("forms: embedded specdef: %w", err)
	}
	return def, nil
}

func (m *Manager) parse(typ string, def spec.Definition, text string) (*record.Record, error) {
	flat, err := formtext.Parse(def, text)
	if err != nil {
		return nil, grammarError(typ, err)
	}
	rec, _ := m.builder.Build(flat)
	rec.SetNames(def.Names())
	return rec, nil
}

// normalise runs a pre-parsed response through the form grammar so only the
// fields def declares survive, then carries over the extra tags.
func (m *Manager) normalise(def spec.Definition, d dict.Dict) (*record.Record, error) {
	text, err := formtext.Format(def, formtext.DictSource(d))
	if err != nil {
		return nil, fmt.Errorf("forms: normalise response: %w", err)
	}
	rec, err := m.parse("", def, text)
	if err != nil {
		return nil, err
	}
	for i := 0; ; i++ {
		name, ok := d.Get(extraTagKey + strconv.Itoa(i))
		if !ok {
			break
		}
		value, ok := d.Get(name)
		if !ok {
			continue
		}
		m.builder.Insert(rec, name, value)
	}
	return rec, nil
}
