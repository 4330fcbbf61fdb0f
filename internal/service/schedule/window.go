package schedule

import (
	"fmt"
	"time"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// DefaultMinLead is how far ahead of now a candidate must be.
const DefaultMinLead = 10 * time.Minute

// Window is the inclusive range a post may be (re)scheduled into.
type Window struct {
	Month    domain.MonthKey
	Fallback bool // post month was unusable; Month is the current month
	Min      time.Time
	Max      time.Time
}

// Empty reports whether no instant satisfies the window. This happens for
// posts whose month ended more than a month ago.
func (w Window) Empty() bool { return w.Min.After(w.Max) }

// Contains reports whether t lies within [Min, Max].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Min) && !t.After(w.Max)
}

// ResolveMonth reads the post's attributed month. Unparseable or missing
// values resolve to the month containing now, reported as Unknown.
func ResolveMonth(post domain.Post, now time.Time, loc *time.Location) (domain.MonthKey, domain.MonthResolution) {
	res := domain.Attribution{MonthKey: post.AttributedMonth}.Explicit()
	if res.Known() {
		return res.Key, res
	}
	return domain.MonthKeyOf(now.In(loc)), res
}

// Compute returns the scheduling window for post. The lower bound is the
// later of today's midnight and the first day of the post's month. The
// upper bound is the last second of the month after the post's month.
func Compute(post domain.Post, now time.Time, loc *time.Location) Window {
	month, res := ResolveMonth(post, now, loc)

	lower := DayStart(now, loc)
	if first := month.FirstDay(loc); first.After(lower) {
		lower = first
	}

	return Window{
		Month:    month,
		Fallback: !res.Known(),
		Min:      lower,
		Max:      month.AddMonths(1).LastInstant(loc),
	}
}

// ValidateCandidate checks a proposed schedule time for post. The candidate
// must be at least minLead after now and inside the post's window.
func ValidateCandidate(post domain.Post, candidate, now time.Time, loc *time.Location, minLead time.Duration) error {
	if candidate.IsZero() {
		return domain.NewValidationError("scheduled_date", "required")
	}
	if candidate.Before(now.Add(minLead)) {
		return domain.NewValidationError("scheduled_date",
			fmt.Sprintf("must be at least %s from now", minLead))
	}

	w := Compute(post, now, loc)
	if !w.Contains(candidate) {
		return domain.NewValidationError("scheduled_date",
			fmt.Sprintf("must be between %s and %s",
				w.Min.Format(time.RFC3339), w.Max.Format(time.RFC3339)))
	}
	return nil
}
