package record

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-specform/pkg/dict"
)

const (
	defaultCollisionSuffix = "s"
	defaultMaxIndex        = 1 << 20
)

// DefaultSkipKeys are protocol bookkeeping keys that never become record
// fields.
var DefaultSkipKeys = []string{dict.KeySpecDef, dict.KeyFunc, dict.KeySpecFormatted}

// Option customises a Builder.
type Option func(*Builder)

// WithSkipKeys replaces the set of keys ignored during Build.
func WithSkipKeys(keys ...string) Option {
	return func(b *Builder) {
		b.skip = make(map[string]struct{}, len(keys))
		for _, key := range keys {
			b.skip[key] = struct{}{}
		}
	}
}

// WithCollisionSuffix sets the suffix appended to a scalar key whose base name
// is already taken. The default is "s" (otherOpen -> otherOpens).
func WithCollisionSuffix(suffix string) Option {
	return func(b *Builder) {
		if suffix != "" {
			b.suffix = suffix
		}
	}
}

// WithMaxIndex caps the list position a key may address. Keys beyond the cap
// are kept under their raw name instead of growing a list to that size.
func WithMaxIndex(n int) Option {
	return func(b *Builder) {
		if n > 0 {
			b.maxIndex = n
		}
	}
}

// WithLogger routes collision diagnostics to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// Builder reconstructs structured records from flat dictionaries. A Builder
// is immutable after construction and safe for concurrent use.
type Builder struct {
	skip     map[string]struct{}
	suffix   string
	maxIndex int
	logger   *zap.Logger
}

// NewBuilder constructs a Builder with the default skip keys, the "s"
// collision suffix and a no-op logger.
func NewBuilder(options ...Option) *Builder {
	b := &Builder{
		suffix:   defaultCollisionSuffix,
		maxIndex: defaultMaxIndex,
		logger:   zap.NewNop(),
	}
	WithSkipKeys(DefaultSkipKeys...)(b)
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	return b
}

// Build converts d into a Record. Entries are applied in order: unindexed
// keys become scalars, indexed keys become (nested) lists with unaddressed
// positions left empty. Collisions never fail the build; each one is
// resolved by renaming or by keeping the raw key and is listed in the Report.
func (b *Builder) Build(d dict.Dict) (*Record, Report) {
	rec := New()
	var report Report
	for _, entry := range d {
		if _, skip := b.skip[entry.Key]; skip {
			continue
		}
		b.insert(rec, entry.Key, entry.Value, &report)
	}
	return rec, report
}

// Insert applies a single key/value pair to rec using the same rules as
// Build. A list already in rec is copied before it changes, so Values read
// from rec earlier keep their contents.
func (b *Builder) Insert(rec *Record, key, value string) Report {
	if base, index := SplitKey(key); base != "" && index != "" {
		if v, ok := rec.Lookup(base); ok && v.IsList() {
			rec.Store(base, cloneValue(v))
		}
	}
	var report Report
	b.insert(rec, key, value, &report)
	return report
}

func (b *Builder) insert(rec *Record, key, value string, report *Report) {
	base, index := SplitKey(key)
	if base == "" {
		b.note(report, Collision{Key: key, Kind: CollisionEmptyBase})
		return
	}

	if index == "" {
		name := base
		for rec.Has(name) {
			name += b.suffix
		}
		if name != base {
			b.note(report, Collision{Key: key, StoredAs: name, Kind: CollisionRenamed})
		}
		rec.Store(name, Scalar(value))
		return
	}

	levels, malformed := ParseIndex(index)
	if malformed {
		b.note(report, Collision{Key: key, StoredAs: base, Kind: CollisionMalformedIndex})
	}
	for _, level := range levels {
		if level > b.maxIndex {
			b.note(report, Collision{Key: key, StoredAs: key, Kind: CollisionIndexLimit})
			rec.Store(key, Scalar(value))
			return
		}
	}

	root, exists := rec.Lookup(base)
	switch {
	case !exists:
		root = Value{kind: KindList}
	case !root.IsList():
		b.note(report, Collision{Key: key, StoredAs: key, Kind: CollisionRawKey})
		rec.Store(key, Scalar(value))
		return
	}

	cur := &root
	for _, level := range levels[:len(levels)-1] {
		next := cur.slot(level)
		switch next.kind {
		case KindEmpty:
			*next = Value{kind: KindList}
		case KindScalar:
			b.note(report, Collision{Key: key, Kind: CollisionNotList})
			return
		}
		cur = next
	}
	*cur.slot(levels[len(levels)-1]) = Scalar(value)

	rec.Store(base, root)
}

func (b *Builder) note(report *Report, c Collision) {
	report.Collisions = append(report.Collisions, c)
	switch c.Kind {
	case CollisionNotList, CollisionEmptyBase:
		b.logger.Warn("record: dropped entry", zap.String("key", c.Key), zap.Stringer("kind", c.Kind))
	default:
		b.logger.Debug("record: key collision",
			zap.String("key", c.Key),
			zap.String("stored_as", c.StoredAs),
			zap.Stringer("kind", c.Kind),
		)
	}
}
