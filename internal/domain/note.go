package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-form planning note. A monthly note applies to every month
// and never carries a target month; otherwise NoteMonth and NoteYear are
// either both set or both nil.
type Note struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Title         string
	Content       string
	Priority      NotePriority
	IsMonthlyNote bool
	NoteMonth     *int
	NoteYear      *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TargetMonth returns the month a dated note refers to.
func (n Note) TargetMonth() (MonthKey, bool) {
	if n.IsMonthlyNote || n.NoteMonth == nil || n.NoteYear == nil {
		return MonthKey{}, false
	}
	if *n.NoteMonth < 1 || *n.NoteMonth > 12 {
		return MonthKey{}, false
	}
	return MonthKey{Year: *n.NoteYear, Month: time.Month(*n.NoteMonth)}, true
}

// Attribution returns the month information used for bucketing.
func (n Note) Attribution() Attribution {
	a := Attribution{CreatedAt: n.CreatedAt}
	if key, ok := n.TargetMonth(); ok {
		a.MonthKey = key.String()
	}
	return a
}
