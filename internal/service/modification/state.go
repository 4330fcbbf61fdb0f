package modification

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// State is a step of a modification session.
type State int

const (
	StateIdle State = iota
	StateRequested
	StatePreviewing
	StateApplied
	StateSecondaryRequested
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequested:
		return "requested"
	case StatePreviewing:
		return "previewing"
	case StateApplied:
		return "applied"
	case StateSecondaryRequested:
		return "secondary_requested"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Pending reports whether a modify call is in flight.
func (s State) Pending() bool {
	return s == StateRequested || s == StateSecondaryRequested
}

// Mode selects the session variant. Calendar sessions may finish with
// ApplyFinal on an already-scheduled post.
type Mode string

const (
	ModeStandard Mode = "standard"
	ModeCalendar Mode = "calendar"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeStandard, ModeCalendar:
		return true
	}
	return false
}

// Errors returned by workflow transitions. All of them match
// domain.ErrConflict.
var (
	ErrRequestPending    = fmt.Errorf("modification request pending: %w", domain.ErrConflict)
	ErrInvalidTransition = fmt.Errorf("invalid modification transition: %w", domain.ErrConflict)
	ErrSessionCancelled  = fmt.Errorf("modification session cancelled: %w", domain.ErrConflict)
)

// Transition describes a state change of one session.
type Transition struct {
	PostID uuid.UUID
	From   State
	To     State
	At     time.Time
}

// Observer is notified of every transition. It runs while the session is
// locked and must not call back into it.
type Observer func(t Transition)

// Snapshot is a read-only copy of a session.
type Snapshot struct {
	PostID      uuid.UUID
	Mode        Mode
	State       State
	Instruction string
	Original    domain.Post
	Proposal    *domain.Proposal
	UpdatedAt   time.Time
}
