package domain

import "time"

// ResolutionKind tags how an entity's month was determined.
type ResolutionKind int

const (
	ResolutionUnknown ResolutionKind = iota
	ResolutionExplicit
	ResolutionDerived
)

func (k ResolutionKind) String() string {
	switch k {
	case ResolutionExplicit:
		return "explicit"
	case ResolutionDerived:
		return "derived_from_timestamp"
	default:
		return "unknown"
	}
}

// MonthResolution is the tagged result of resolving an entity to a month:
// Explicit(key) | DerivedFromTimestamp(key) | Unknown.
type MonthResolution struct {
	Kind ResolutionKind
	Key  MonthKey
}

// Explicit wraps a key that came from an explicit attribution field.
func Explicit(key MonthKey) MonthResolution {
	return MonthResolution{Kind: ResolutionExplicit, Key: key}
}

// DerivedFromTimestamp wraps a key computed from an entity's timestamp.
func DerivedFromTimestamp(key MonthKey) MonthResolution {
	return MonthResolution{Kind: ResolutionDerived, Key: key}
}

// Unknown is the resolution of an entity with no usable month information.
func Unknown() MonthResolution { return MonthResolution{} }

// Known reports whether the resolution carries a key.
func (r MonthResolution) Known() bool { return r.Kind != ResolutionUnknown }

// Attribution is the month information an entity exposes for bucketing:
// an optional explicit key (either encoding) and its creation timestamp.
type Attribution struct {
	MonthKey  string
	CreatedAt time.Time
}

// Explicit resolves the explicit key only. Unparseable keys are Unknown.
func (a Attribution) Explicit() MonthResolution {
	if a.MonthKey == "" {
		return Unknown()
	}
	key, err := ParseMonthKey(a.MonthKey)
	if err != nil {
		return Unknown()
	}
	return Explicit(key)
}

// Derived resolves from CreatedAt in loc. A zero timestamp is Unknown.
func (a Attribution) Derived(loc *time.Location) MonthResolution {
	if a.CreatedAt.IsZero() {
		return Unknown()
	}
	return DerivedFromTimestamp(MonthKeyOf(a.CreatedAt.In(loc)))
}

// Resolve prefers the explicit key and falls back to the timestamp.
func (a Attribution) Resolve(loc *time.Location) MonthResolution {
	if r := a.Explicit(); r.Known() {
		return r
	}
	return a.Derived(loc)
}
