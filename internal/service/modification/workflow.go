package modification

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
)

// MaxInstructionLen bounds the free-text instruction.
const MaxInstructionLen = 2000

// ModifyRequest is sent to the external modify call. Previous is set when
// iterating on an existing proposal.
type ModifyRequest struct {
	Post        domain.Post
	Instruction string
	Previous    *domain.Proposal
}

type modifier interface {
	Modify(ctx context.Context, req ModifyRequest) (domain.Proposal, error)
}

type postWriter interface {
	UpdateContent(ctx context.Context, post domain.Post) (*domain.Post, error)
	UpdateSchedule(ctx context.Context, userID, postID uuid.UUID, at *time.Time, status domain.PostStatus) (*domain.Post, error)
}

// Deps are the collaborators and settings shared by every session.
type Deps struct {
	Modifier modifier
	Writer   postWriter
	Clock    clockwork.Clock
	Location *time.Location
	MinLead  time.Duration
	Observe  Observer
}

// Workflow is the edit session of a single post. It owns the instruction
// buffer and at most one proposal. All methods are safe for concurrent use;
// at most one modify call is in flight per session.
type Workflow struct {
	deps Deps

	mu          sync.Mutex
	mode        Mode
	state       State
	original    domain.Post
	instruction string
	proposal    *domain.Proposal
	generation  uint64
	updatedAt   time.Time
}

// NewWorkflow starts an Idle session for post.
func NewWorkflow(post domain.Post, mode Mode, deps Deps) *Workflow {
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.MinLead <= 0 {
		deps.MinLead = schedule.DefaultMinLead
	}
	return &Workflow{
		deps:      deps,
		mode:      mode,
		state:     StateIdle,
		original:  post.Clone(),
		updatedAt: deps.Clock.Now(),
	}
}

// Snapshot returns a copy of the session.
func (w *Workflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// SetInstruction replaces the instruction buffer. The next Request or
// RequestAgain reads it; a call already in flight is not affected.
func (w *Workflow) SetInstruction(text string) error {
	if len(text) > MaxInstructionLen {
		return domain.NewValidationError("instruction", "max 2000 characters")
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateApplied {
		return ErrInvalidTransition
	}
	w.instruction = text
	w.touchLocked()
	return nil
}

// Request submits the buffered instruction for the original post.
// Idle -> Requested -> Previewing on success, back to Idle on failure.
func (w *Workflow) Request(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	if w.state.Pending() {
		w.mu.Unlock()
		return Snapshot{}, ErrRequestPending
	}
	if w.state != StateIdle {
		w.mu.Unlock()
		return Snapshot{}, fmt.Errorf("request from %s: %w", w.state, ErrInvalidTransition)
	}
	instruction, err := w.readInstructionLocked()
	if err != nil {
		w.mu.Unlock()
		return Snapshot{}, err
	}
	req := ModifyRequest{Post: w.original.Clone(), Instruction: instruction}
	gen := w.beginLocked(StateRequested)
	w.mu.Unlock()

	prop, callErr := w.deps.Modifier.Modify(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen {
		return Snapshot{}, ErrSessionCancelled
	}
	if callErr != nil {
		w.transitionLocked(StateIdle)
		return Snapshot{}, domain.NewExternalCallError("modify", callErr)
	}
	prop = prop.Normalized()
	w.proposal = &prop
	w.transitionLocked(StatePreviewing)
	return w.snapshotLocked(), nil
}

// RequestAgain submits a new instruction with the current proposal as
// context. Previewing -> SecondaryRequested -> Previewing. The new proposal
// replaces the old one; on failure the old one is kept.
func (w *Workflow) RequestAgain(ctx context.Context) (Snapshot, error) {
	w.mu.Lock()
	if w.state.Pending() {
		w.mu.Unlock()
		return Snapshot{}, ErrRequestPending
	}
	if w.state != StatePreviewing {
		w.mu.Unlock()
		return Snapshot{}, fmt.Errorf("request again from %s: %w", w.state, ErrInvalidTransition)
	}
	instruction, err := w.readInstructionLocked()
	if err != nil {
		w.mu.Unlock()
		return Snapshot{}, err
	}
	previous := cloneProposal(*w.proposal)
	req := ModifyRequest{Post: w.original.Clone(), Instruction: instruction, Previous: &previous}
	gen := w.beginLocked(StateSecondaryRequested)
	w.mu.Unlock()

	prop, callErr := w.deps.Modifier.Modify(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.generation != gen {
		return Snapshot{}, ErrSessionCancelled
	}
	if callErr != nil {
		w.transitionLocked(StatePreviewing)
		return Snapshot{}, domain.NewExternalCallError("modify", callErr)
	}
	prop = prop.Normalized()
	w.proposal = &prop
	w.transitionLocked(StatePreviewing)
	return w.snapshotLocked(), nil
}

// Accept merges the proposal into the post and persists it.
// Previewing -> Applied -> Idle. A failed write returns to Previewing.
func (w *Workflow) Accept(ctx context.Context) (*domain.Post, error) {
	w.mu.Lock()
	if err := w.requireLocked(StatePreviewing, "accept"); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if w.original.Published {
		w.mu.Unlock()
		return nil, fmt.Errorf("accept on published post: %w", domain.ErrConflict)
	}
	merged := domain.ApplyProposal(w.original, *w.proposal, w.deps.Clock.Now().UTC())
	w.beginLocked(StateApplied)
	w.mu.Unlock()

	saved, err := w.deps.Writer.UpdateContent(ctx, merged)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.transitionLocked(StatePreviewing)
		return nil, domain.NewExternalCallError("update", err)
	}
	return w.finishLocked(saved), nil
}

// ApplyFinal persists the proposal of a calendar session directly onto an
// already-scheduled post, optionally moving it to reschedule. The new time
// must satisfy the post's scheduling window.
func (w *Workflow) ApplyFinal(ctx context.Context, reschedule *time.Time) (*domain.Post, error) {
	w.mu.Lock()
	if w.mode != ModeCalendar {
		w.mu.Unlock()
		return nil, fmt.Errorf("apply final in %s mode: %w", w.mode, ErrInvalidTransition)
	}
	if err := w.requireLocked(StatePreviewing, "apply final"); err != nil {
		w.mu.Unlock()
		return nil, err
	}
	if w.original.Published {
		w.mu.Unlock()
		return nil, fmt.Errorf("apply final on published post: %w", domain.ErrConflict)
	}
	if !w.original.IsScheduled() {
		w.mu.Unlock()
		return nil, domain.NewValidationError("scheduled_date", "post is not scheduled")
	}
	now := w.deps.Clock.Now()
	if reschedule != nil {
		if err := schedule.ValidateCandidate(w.original, *reschedule, now, w.deps.Location, w.deps.MinLead); err != nil {
			w.mu.Unlock()
			return nil, err
		}
	}
	merged := domain.ApplyProposal(w.original, *w.proposal, now.UTC())
	w.beginLocked(StateApplied)
	w.mu.Unlock()

	if reschedule != nil {
		at := reschedule.UTC()
		moved, err := w.deps.Writer.UpdateSchedule(ctx, merged.UserID, merged.ID, &at, domain.PostStatusScheduled)
		if err != nil {
			w.mu.Lock()
			defer w.mu.Unlock()
			w.transitionLocked(StatePreviewing)
			return nil, domain.NewExternalCallError("schedule", err)
		}
		merged.ScheduledDate = moved.ScheduledDate
		merged.Status = moved.Status
	}

	saved, err := w.deps.Writer.UpdateContent(ctx, merged)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		if reschedule != nil {
			w.original.ScheduledDate = merged.ScheduledDate
			w.original.Status = merged.Status
		}
		w.transitionLocked(StatePreviewing)
		return nil, domain.NewExternalCallError("update", err)
	}
	return w.finishLocked(saved), nil
}

// Reject discards the proposal. Previewing -> Idle. The original post is
// left untouched.
func (w *Workflow) Reject() (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.requireLocked(StatePreviewing, "reject"); err != nil {
		return Snapshot{}, err
	}
	w.clearLocked()
	w.transitionLocked(StateIdle)
	return w.snapshotLocked(), nil
}

// Cancel abandons the session from any state except Applied. The
// instruction and proposal are cleared and a response still in flight is
// ignored when it arrives. Cancelling an Idle session only clears the
// buffer.
func (w *Workflow) Cancel() (Snapshot, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateApplied:
		return Snapshot{}, fmt.Errorf("cancel while applying: %w", ErrInvalidTransition)
	case StateIdle:
		w.clearLocked()
		w.touchLocked()
		return w.snapshotLocked(), nil
	}
	w.generation++
	w.clearLocked()
	w.transitionLocked(StateCancelled)
	w.transitionLocked(StateIdle)
	return w.snapshotLocked(), nil
}

// Reload replaces the original post of an Idle session.
func (w *Workflow) Reload(post domain.Post, mode Mode) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != StateIdle {
		return fmt.Errorf("reload from %s: %w", w.state, ErrInvalidTransition)
	}
	w.original = post.Clone()
	w.mode = mode
	w.touchLocked()
	return nil
}

// Refresh replaces the original post while keeping the instruction and
// any proposal. It is refused while a call is in flight.
func (w *Workflow) Refresh(post domain.Post) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Pending() {
		return ErrRequestPending
	}
	if w.state == StateApplied {
		return fmt.Errorf("refresh while applying: %w", ErrInvalidTransition)
	}
	if w.original.ID != post.ID {
		return fmt.Errorf("refresh with post %s: %w", post.ID, ErrInvalidTransition)
	}
	w.original = post.Clone()
	return nil
}

// idleSince reports whether the session is Idle and untouched since t.
func (w *Workflow) idleSince(t time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == StateIdle && w.updatedAt.Before(t)
}

func (w *Workflow) readInstructionLocked() (string, error) {
	text := strings.TrimSpace(w.instruction)
	if text == "" {
		return "", domain.NewValidationError("instruction", "required")
	}
	return text, nil
}

func (w *Workflow) requireLocked(want State, op string) error {
	if w.state.Pending() {
		return ErrRequestPending
	}
	if w.state != want || w.proposal == nil {
		return fmt.Errorf("%s from %s: %w", op, w.state, ErrInvalidTransition)
	}
	return nil
}

// beginLocked moves to a state that waits on an external call and returns
// the generation the caller must still hold when the call returns.
func (w *Workflow) beginLocked(to State) uint64 {
	w.generation++
	w.transitionLocked(to)
	return w.generation
}

func (w *Workflow) finishLocked(saved *domain.Post) *domain.Post {
	w.original = saved.Clone()
	w.clearLocked()
	w.transitionLocked(StateIdle)
	out := saved.Clone()
	return &out
}

func (w *Workflow) clearLocked() {
	w.instruction = ""
	w.proposal = nil
}

func (w *Workflow) touchLocked() {
	w.updatedAt = w.deps.Clock.Now()
}

func (w *Workflow) transitionLocked(to State) {
	from := w.state
	w.state = to
	w.touchLocked()
	if w.deps.Observe != nil {
		w.deps.Observe(Transition{PostID: w.original.ID, From: from, To: to, At: w.updatedAt})
	}
}

func (w *Workflow) snapshotLocked() Snapshot {
	s := Snapshot{
		PostID:      w.original.ID,
		Mode:        w.mode,
		State:       w.state,
		Instruction: w.instruction,
		Original:    w.original.Clone(),
		UpdatedAt:   w.updatedAt,
	}
	if w.proposal != nil {
		p := cloneProposal(*w.proposal)
		s.Proposal = &p
	}
	return s
}

func cloneProposal(p domain.Proposal) domain.Proposal {
	p.Hashtags = slices.Clone(p.Hashtags)
	return p
}
