package notes

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

type noteRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Note, error)
	GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, userID, noteID uuid.UUID) error
	DeleteElapsed(ctx context.Context, before domain.MonthKey) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages planning notes.
type Service struct {
	notes noteRepo
	tx    txManager
	clock clockwork.Clock
	loc   *time.Location
	log   *slog.Logger
}

// NewService creates a new notes Service.
func NewService(
	log *slog.Logger,
	notes noteRepo,
	tx txManager,
	clock clockwork.Clock,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		notes: notes,
		tx:    tx,
		clock: clock,
		loc:   loc,
		log:   log.With("service", "notes"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}
