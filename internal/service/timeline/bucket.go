package timeline

import (
	"time"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const (
	// CurrentWindow is the number of buckets for the current and future months.
	CurrentWindow = 6
	// ArchiveWindow is the number of buckets for the preceding months.
	ArchiveWindow = 6
)

// Placement describes where one entity was bucketed and why.
type Placement struct {
	Key        domain.MonthKey
	Resolution domain.ResolutionKind
	// Clamped is true when neither the explicit key nor the timestamp
	// matched a live bucket and the entity went to the oldest archive bucket.
	Clamped bool
}

// MonthKeys returns the twelve canonical keys around ref: current/future
// ascending, then archive most recent first.
func MonthKeys(ref time.Time) (current, archive []domain.MonthKey) {
	anchor := domain.MonthKeyOf(ref)
	current = make([]domain.MonthKey, CurrentWindow)
	for i := range current {
		current[i] = anchor.AddMonths(i)
	}
	archive = make([]domain.MonthKey, ArchiveWindow)
	for i := range archive {
		archive[i] = anchor.AddMonths(-(i + 1))
	}
	return current, archive
}

// Locate resolves a single attribution against the twelve buckets around
// ref. It never fails: unmatched entities clamp to the oldest archive month.
//
// Order of precedence: explicit key if it names a live bucket; otherwise the
// month of CreatedAt (in ref's location) if live; otherwise the oldest
// archive bucket.
func Locate(attr domain.Attribution, ref time.Time) Placement {
	anchor := domain.MonthKeyOf(ref)
	oldest := anchor.AddMonths(-ArchiveWindow)

	if r := attr.Explicit(); r.Known() && isLive(r.Key, anchor) {
		return Placement{Key: r.Key, Resolution: r.Kind}
	}

	if r := attr.Derived(ref.Location()); r.Known() {
		// Unattributed items created this month stay in the current bucket.
		if r.Key == anchor {
			return Placement{Key: anchor, Resolution: r.Kind}
		}
		if isLive(r.Key, anchor) {
			return Placement{Key: r.Key, Resolution: r.Kind}
		}
	}

	return Placement{Key: oldest, Resolution: attr.Resolve(ref.Location()).Kind, Clamped: true}
}

func isLive(key, anchor domain.MonthKey) bool {
	d := key.Index() - anchor.Index()
	return d >= -ArchiveWindow && d < CurrentWindow
}

// Bucket partitions items into twelve month cohorts relative to ref.
// It is a pure function: ref is the only notion of "now", and every item
// lands in exactly one bucket.
func Bucket[T any](items []T, attributionOf func(T) domain.Attribution, ref time.Time) domain.BucketSet[T] {
	currentKeys, archiveKeys := MonthKeys(ref)

	set := domain.BucketSet[T]{
		CurrentAndFuture: make([]*domain.MonthBucket[T], 0, CurrentWindow),
		Archive:          make([]*domain.MonthBucket[T], 0, ArchiveWindow),
	}
	index := make(map[domain.MonthKey]*domain.MonthBucket[T], CurrentWindow+ArchiveWindow)

	for i, key := range currentKeys {
		b := &domain.MonthBucket[T]{
			Key:       key,
			Label:     key.Label(),
			Order:     i,
			IsCurrent: i == 0,
			IsFuture:  i > 0,
			Members:   []T{},
		}
		set.CurrentAndFuture = append(set.CurrentAndFuture, b)
		index[key] = b
	}
	for i, key := range archiveKeys {
		b := &domain.MonthBucket[T]{
			Key:     key,
			Label:   key.Label(),
			Order:   -(i + 1),
			IsPast:  true,
			Members: []T{},
		}
		set.Archive = append(set.Archive, b)
		index[key] = b
	}

	for _, item := range items {
		p := Locate(attributionOf(item), ref)
		b := index[p.Key]
		b.Members = append(b.Members, item)
	}

	return set
}
