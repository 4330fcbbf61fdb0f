package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user row and returns its id.
func SeedUser(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	suffix := uniqueSuffix()
	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, name) VALUES ($1, $2, $3)`,
		id, "planner-"+suffix+"@example.com", "Planner "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return id
}

// SeedPost inserts a draft post attributed to month and returns it.
// A non-nil at schedules the post.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, month string, at *time.Time) domain.Post {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Post{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           "Post " + uniqueSuffix(),
		Text:            "Body",
		Hashtags:        []string{"#planner"},
		AttributedMonth: month,
		Status:          domain.PostStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if at != nil {
		when := at.UTC().Truncate(time.Microsecond)
		p.ScheduledDate = &when
		p.Status = domain.PostStatusScheduled
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO posts (id, user_id, title, text, hashtags, attributed_month, scheduled_date, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.Title, p.Text, p.Hashtags, p.AttributedMonth, p.ScheduledDate, string(p.Status), p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}
