package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

type postLister interface {
	ListScheduledBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Post, error)
}

// Grid is a laid-out calendar month.
type Grid struct {
	Month domain.MonthKey
	Label string
	Days  []Day
}

// Service builds calendar views of scheduled posts.
type Service struct {
	posts postLister
	clock clockwork.Clock
	loc   *time.Location
	log   *slog.Logger
}

// NewService creates a new calendar Service.
func NewService(log *slog.Logger, posts postLister, clock clockwork.Clock, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		posts: posts,
		clock: clock,
		loc:   loc,
		log:   log.With("service", "calendar"),
	}
}

// Month returns the grid for month (either encoding). An empty month means
// the current one.
func (s *Service) Month(ctx context.Context, month string) (*Grid, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock.Now().In(s.loc)
	anchor := domain.MonthKeyOf(now)
	if month != "" {
		parsed, err := domain.ParseMonthKey(month)
		if err != nil {
			return nil, domain.NewValidationError("month", "invalid month key")
		}
		anchor = parsed
	}

	from, to := Range(anchor, s.loc)
	posts, err := s.posts.ListScheduledBetween(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list scheduled posts: %w", err)
	}

	return &Grid{
		Month: anchor,
		Label: anchor.Label(),
		Days:  Layout(posts, anchor, s.loc, now),
	}, nil
}
