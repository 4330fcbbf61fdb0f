package schedule

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// MaxGenerateCount bounds a single generate-for-month request.
const MaxGenerateCount = 31

type postRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
	GetByID(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)
	CreateBatch(ctx context.Context, posts []domain.Post) ([]domain.Post, error)
	UpdateSchedule(ctx context.Context, userID, postID uuid.UUID, at *time.Time, status domain.PostStatus) (*domain.Post, error)
	SetValidated(ctx context.Context, userID, postID uuid.UUID, validated bool) (*domain.Post, error)
	MarkPublished(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
}

type generator interface {
	Generate(ctx context.Context, month domain.MonthKey, count int) ([]domain.Proposal, error)
}

// Service schedules and publishes the user's posts.
type Service struct {
	posts     postRepo
	generator generator
	clock     clockwork.Clock
	loc       *time.Location
	minLead   time.Duration
	log       *slog.Logger
}

// NewService creates a new schedule Service.
func NewService(
	log *slog.Logger,
	posts postRepo,
	gen generator,
	clock clockwork.Clock,
	loc *time.Location,
	minLead time.Duration,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if minLead <= 0 {
		minLead = DefaultMinLead
	}
	return &Service{
		posts:     posts,
		generator: gen,
		clock:     clock,
		loc:       loc,
		minLead:   minLead,
		log:       log.With("service", "schedule"),
	}
}

// Location returns the planner timezone.
func (s *Service) Location() *time.Location { return s.loc }

// MinLead returns the minimum distance between now and a schedule time.
func (s *Service) MinLead() time.Duration { return s.minLead }

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}
