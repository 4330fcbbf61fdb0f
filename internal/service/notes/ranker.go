package notes

import (
	"cmp"
	"slices"
	"strings"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// Ranking tiers, lowest sorts first.
const (
	tierMonthly = iota
	tierUpcoming
	tierElapsed
	tierUndated
)

// Compare orders two notes relative to the reference month. It returns a
// negative number when a sorts before b. The order is total: notes that tie
// on every rule are ordered by id.
//
// Monthly notes come first, then notes dated in or after ref (soonest
// first), then notes dated before ref, then notes without a date. Newer
// notes win every remaining tie. Priority does not take part.
func Compare(a, b domain.Note, ref domain.MonthKey) int {
	ta, da := rankOf(a, ref)
	tb, db := rankOf(b, ref)

	if c := cmp.Compare(ta, tb); c != 0 {
		return c
	}
	if ta == tierUpcoming {
		if c := cmp.Compare(da, db); c != 0 {
			return c
		}
	}
	// Newer first.
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

// rankOf returns the tier of n and, for dated notes, its signed month
// distance from ref. Notes with an out-of-range month are treated as undated.
func rankOf(n domain.Note, ref domain.MonthKey) (tier, distance int) {
	if n.IsMonthlyNote {
		return tierMonthly, 0
	}
	key, ok := n.TargetMonth()
	if !ok {
		return tierUndated, 0
	}
	distance = key.Index() - ref.Index()
	if distance >= 0 {
		return tierUpcoming, distance
	}
	return tierElapsed, distance
}

// Rank returns a sorted copy of notes. The input slice is not modified.
func Rank(notes []domain.Note, ref domain.MonthKey) []domain.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b domain.Note) int {
		return Compare(a, b, ref)
	})
	return out
}
