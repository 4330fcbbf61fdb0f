package modification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

type postReader interface {
	GetByID(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)
}

type sessionKey struct {
	userID uuid.UUID
	postID uuid.UUID
}

// Service keeps one modification session per (user, post).
type Service struct {
	posts postReader
	deps  Deps
	log   *slog.Logger

	mu       sync.Mutex
	sessions map[sessionKey]*Workflow
}

// NewService creates a new modification Service. observe may be nil.
func NewService(
	log *slog.Logger,
	posts postReader,
	mod modifier,
	writer postWriter,
	clock clockwork.Clock,
	loc *time.Location,
	minLead time.Duration,
	observe Observer,
) *Service {
	s := &Service{
		posts:    posts,
		log:      log.With("service", "modification"),
		sessions: make(map[sessionKey]*Workflow),
	}
	s.deps = Deps{
		Modifier: mod,
		Writer:   writer,
		Clock:    clock,
		Location: loc,
		MinLead:  minLead,
		Observe:  s.observer(observe),
	}
	return s
}

func (s *Service) observer(next Observer) Observer {
	return func(t Transition) {
		s.log.Info("modification transition",
			slog.String("post_id", t.PostID.String()),
			slog.String("from", t.From.String()),
			slog.String("to", t.To.String()),
		)
		if next != nil {
			next(t)
		}
	}
}

// Open returns the session for a post, creating it if needed. An empty mode
// means standard for a new session and the current mode otherwise. An Idle
// session is refreshed from the store and takes the requested mode. An
// active session is returned as is; asking for another mode while it is
// active fails with ErrInvalidTransition.
func (s *Service) Open(ctx context.Context, postID uuid.UUID, mode Mode) (Snapshot, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Snapshot{}, domain.ErrUnauthorized
	}
	if mode != "" && !mode.IsValid() {
		return Snapshot{}, domain.NewValidationError("mode", "must be standard or calendar")
	}

	post, err := s.posts.GetByID(ctx, userID, postID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get post: %w", err)
	}
	if post.Published {
		return Snapshot{}, fmt.Errorf("post already published: %w", domain.ErrConflict)
	}

	key := sessionKey{userID: userID, postID: postID}

	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.sessions[key]; ok {
		snap := w.Snapshot()
		if mode == "" {
			mode = snap.Mode
		}
		if snap.State == StateIdle {
			if err := w.Reload(*post, mode); err != nil {
				return Snapshot{}, err
			}
			return w.Snapshot(), nil
		}
		if snap.Mode != mode {
			return Snapshot{}, fmt.Errorf("open in %s mode, session is %s in %s mode: %w",
				mode, snap.State, snap.Mode, ErrInvalidTransition)
		}
		return snap, nil
	}

	if mode == "" {
		mode = ModeStandard
	}
	w := NewWorkflow(*post, mode, s.deps)
	s.sessions[key] = w

	s.log.InfoContext(ctx, "modification session opened",
		slog.String("user_id", userID.String()),
		slog.String("post_id", postID.String()),
		slog.String("mode", mode.String()),
	)
	return w.Snapshot(), nil
}

// Snapshot returns the current state of an open session.
func (s *Service) Snapshot(ctx context.Context, postID uuid.UUID) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

// SetInstruction replaces the session's instruction text.
func (s *Service) SetInstruction(ctx context.Context, postID uuid.UUID, text string) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	if err := w.SetInstruction(text); err != nil {
		return Snapshot{}, err
	}
	return w.Snapshot(), nil
}

// Request submits the buffered instruction.
func (s *Service) Request(ctx context.Context, postID uuid.UUID) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := w.Request(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("request modification: %w", err)
	}
	return snap, nil
}

// RequestAgain iterates on the current proposal.
func (s *Service) RequestAgain(ctx context.Context, postID uuid.UUID) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := w.RequestAgain(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("request modification again: %w", err)
	}
	return snap, nil
}

// Accept persists the proposal onto the post as currently stored.
func (s *Service) Accept(ctx context.Context, postID uuid.UUID) (*domain.Post, error) {
	w, err := s.refreshed(ctx, postID)
	if err != nil {
		return nil, err
	}
	post, err := w.Accept(ctx)
	if err != nil {
		return nil, fmt.Errorf("accept modification: %w", err)
	}
	s.log.InfoContext(ctx, "modification accepted", slog.String("post_id", postID.String()))
	return post, nil
}

// ApplyFinal persists the proposal of a calendar session, optionally
// rescheduling the post. The scheduling checks run against the post as
// currently stored.
func (s *Service) ApplyFinal(ctx context.Context, postID uuid.UUID, reschedule *time.Time) (*domain.Post, error) {
	w, err := s.refreshed(ctx, postID)
	if err != nil {
		return nil, err
	}
	post, err := w.ApplyFinal(ctx, reschedule)
	if err != nil {
		return nil, fmt.Errorf("apply final modification: %w", err)
	}
	s.log.InfoContext(ctx, "modification applied as final", slog.String("post_id", postID.String()))
	return post, nil
}

// Reject discards the proposal.
func (s *Service) Reject(ctx context.Context, postID uuid.UUID) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	return w.Reject()
}

// Cancel abandons the session.
func (s *Service) Cancel(ctx context.Context, postID uuid.UUID) (Snapshot, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return Snapshot{}, err
	}
	return w.Cancel()
}

// EvictIdle drops Idle sessions untouched for longer than ttl and returns
// how many were removed.
func (s *Service) EvictIdle(ttl time.Duration) int {
	cutoff := s.deps.Clock.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for key, w := range s.sessions {
		if w.idleSince(cutoff) {
			delete(s.sessions, key)
			n++
		}
	}
	return n
}

// Len returns the number of sessions held in memory.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Service) session(ctx context.Context, postID uuid.UUID) (*Workflow, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.sessions[sessionKey{userID: userID, postID: postID}]
	if !ok {
		return nil, fmt.Errorf("modification session for post %s: %w", postID, domain.ErrNotFound)
	}
	return w, nil
}

// refreshed returns the session with its original post re-read from the
// store. A post published since the session opened is a conflict.
func (s *Service) refreshed(ctx context.Context, postID uuid.UUID) (*Workflow, error) {
	w, err := s.session(ctx, postID)
	if err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)
	post, err := s.posts.GetByID(ctx, userID, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	if post.Published {
		return nil, fmt.Errorf("post already published: %w", domain.ErrConflict)
	}
	if err := w.Refresh(*post); err != nil {
		return nil, err
	}
	return w, nil
}
