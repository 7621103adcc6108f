package record

// CollisionKind names how the builder resolved a key it could not insert
// as-is.
type CollisionKind int

const (
	// CollisionRenamed: an unindexed key whose base was already present was
	// stored under base plus the collision suffix.
	CollisionRenamed CollisionKind = iota + 1
	// CollisionRawKey: an indexed key whose base holds a scalar was stored
	// flat under the undecomposed key.
	CollisionRawKey
	// CollisionNotList: an intermediate index level held a scalar; the entry
	// was dropped.
	CollisionNotList
	// CollisionEmptyBase: the key had no base name; the entry was dropped.
	CollisionEmptyBase
	// CollisionMalformedIndex: an empty or overflowing index segment was read
	// as 0 and the entry inserted.
	CollisionMalformedIndex
	// CollisionIndexLimit: an index exceeded the builder's cap and the entry
	// was stored flat under the undecomposed key.
	CollisionIndexLimit
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionRenamed:
		return "renamed"
	case CollisionRawKey:
		return "raw-key"
	case CollisionNotList:
		return "not-list"
	case CollisionEmptyBase:
		return "empty-base"
	case CollisionMalformedIndex:
		return "malformed-index"
	case CollisionIndexLimit:
		return "index-limit"
	default:
		return "unknown"
	}
}

// Dropped reports whether the entry's value is absent from the record.
func (k CollisionKind) Dropped() bool {
	return k == CollisionNotList || k == CollisionEmptyBase
}

// Collision records one resolution decision. StoredAs is empty when the entry
// was dropped.
type Collision struct {
	Key      string
	StoredAs string
	Kind     CollisionKind
}

// Report lists the collisions resolved during a build.
type Report struct {
	Collisions []Collision
}

// Empty reports whether the build applied every entry as-is.
func (r Report) Empty() bool {
	return len(r.Collisions) == 0
}

// Dropped returns the collisions whose value did not make it into the record.
func (r Report) Dropped() []Collision {
	var out []Collision
	for _, c := range r.Collisions {
		if c.Kind.Dropped() {
			out = append(out, c)
		}
	}
	return out
}
