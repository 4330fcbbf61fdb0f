package domain

// MonthBucket is a month cohort with display metadata. Order is 0..5 for the
// current and future months and -1..-6 for the archive.
type MonthBucket[T any] struct {
	Key       MonthKey
	Label     string
	Order     int
	IsCurrent bool
	IsFuture  bool
	IsPast    bool
	Members   []T
}

// BucketSet is the result of bucketing: CurrentAndFuture is ascending by
// order, Archive is most recent first.
type BucketSet[T any] struct {
	CurrentAndFuture []*MonthBucket[T]
	Archive          []*MonthBucket[T]
}

// Lookup returns the bucket for key, if it is one of the twelve live buckets.
func (s BucketSet[T]) Lookup(key MonthKey) (*MonthBucket[T], bool) {
	for _, b := range s.CurrentAndFuture {
		if b.Key == key {
			return b, true
		}
	}
	for _, b := range s.Archive {
		if b.Key == key {
			return b, true
		}
	}
	return nil, false
}

// All returns the twelve buckets, current/future first then archive.
func (s BucketSet[T]) All() []*MonthBucket[T] {
	out := make([]*MonthBucket[T], 0, len(s.CurrentAndFuture)+len(s.Archive))
	out = append(out, s.CurrentAndFuture...)
	return append(out, s.Archive...)
}

// Len returns the total number of members across all buckets.
func (s BucketSet[T]) Len() int {
	n := 0
	for _, b := range s.All() {
		n += len(b.Members)
	}
	return n
}
