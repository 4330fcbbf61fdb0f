package timeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// DefaultMaxBatchDelete bounds a single batch delete when no limit is configured.
const DefaultMaxBatchDelete = 200

type contentRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentItem, error)
	Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	Delete(ctx context.Context, userID, itemID uuid.UUID) error
	DeleteBatch(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (int, error)
	UpdateMonth(ctx context.Context, userID, itemID uuid.UUID, month string) (*domain.ContentItem, error)
	UpdateCarouselMonth(ctx context.Context, userID, carouselID uuid.UUID, month string) (int, error)
}

// Service organizes the user's content library into month buckets.
type Service struct {
	content  contentRepo
	clock    clockwork.Clock
	loc      *time.Location
	maxBatch int
	log      *slog.Logger
}

// NewService creates a new library Service. loc is the planner timezone
// used for "now" and for deriving months from timestamps.
func NewService(
	log *slog.Logger,
	content contentRepo,
	clock clockwork.Clock,
	loc *time.Location,
	maxBatch int,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if maxBatch <= 0 {
		maxBatch = DefaultMaxBatchDelete
	}
	return &Service{
		content:  content,
		clock:    clock,
		loc:      loc,
		maxBatch: maxBatch,
		log:      log.With("service", "library"),
	}
}

func (s *Service) now() time.Time {
	return s.clock.Now().In(s.loc)
}
