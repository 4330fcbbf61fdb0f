package notes

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/timeline"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

// ListRanked returns the user's notes ordered relative to the current month.
func (s *Service) ListRanked(ctx context.Context) ([]domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return Rank(notes, domain.MonthKeyOf(s.now())), nil
}

// ListBuckets returns the user's notes bucketed by target month, or by
// creation date for notes without one. Each bucket is ranked.
func (s *Service) ListBuckets(ctx context.Context) (domain.BucketSet[domain.Note], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.BucketSet[domain.Note]{}, domain.ErrUnauthorized
	}

	notes, err := s.notes.ListByUser(ctx, userID)
	if err != nil {
		return domain.BucketSet[domain.Note]{}, fmt.Errorf("list notes: %w", err)
	}

	now := s.now()
	set := timeline.Bucket(notes, domain.Note.Attribution, now)
	ref := domain.MonthKeyOf(now)
	for _, b := range set.All() {
		b.Members = Rank(b.Members, ref)
	}
	return set, nil
}

// GetNote returns a single note.
func (s *Service) GetNote(ctx context.Context, noteID uuid.UUID) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	n, err := s.notes.GetByID(ctx, userID, noteID)
	if err != nil {
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

// CreateNote creates a note for the authenticated user.
func (s *Service) CreateNote(ctx context.Context, input CreateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.NotePriorityNormal
	}

	now := s.clock.Now().UTC()
	created, err := s.notes.Create(ctx, &domain.Note{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		Priority:      priority,
		IsMonthlyNote: input.IsMonthlyNote,
		NoteMonth:     input.NoteMonth,
		NoteYear:      input.NoteYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.InfoContext(ctx, "note created",
		slog.String("user_id", userID.String()),
		slog.String("note_id", created.ID.String()),
	)
	return created, nil
}

// UpdateNote applies a partial update to a note.
func (s *Service) UpdateNote(ctx context.Context, input UpdateNoteInput) (*domain.Note, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Note
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, getErr := s.notes.GetByID(txCtx, userID, input.NoteID)
		if getErr != nil {
			return fmt.Errorf("get note: %w", getErr)
		}

		merged, applyErr := input.apply(*old)
		if applyErr != nil {
			return applyErr
		}
		merged.UpdatedAt = s.clock.Now().UTC()

		var updateErr error
		updated, updateErr = s.notes.Update(txCtx, &merged)
		if updateErr != nil {
			return fmt.Errorf("update note: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "note updated",
		slog.String("user_id", userID.String()),
		slog.String("note_id", input.NoteID.String()),
	)
	return updated, nil
}

// DeleteNote removes a note.
func (s *Service) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if noteID == uuid.Nil {
		return domain.NewValidationError("note_id", "required")
	}

	if err := s.notes.Delete(ctx, userID, noteID); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	s.log.InfoContext(ctx, "note deleted",
		slog.String("user_id", userID.String()),
		slog.String("note_id", noteID.String()),
	)
	return nil
}

// PurgeElapsed deletes month-specific notes of every user whose target
// month is before the current month. Monthly and undated notes are kept.
func (s *Service) PurgeElapsed(ctx context.Context) (int, error) {
	current := domain.MonthKeyOf(s.now())

	deleted, err := s.notes.DeleteElapsed(ctx, current)
	if err != nil {
		return 0, fmt.Errorf("purge elapsed notes: %w", err)
	}

	s.log.InfoContext(ctx, "elapsed notes purged",
		slog.String("before", current.String()),
		slog.Int("deleted", deleted),
	)
	return deleted, nil
}
