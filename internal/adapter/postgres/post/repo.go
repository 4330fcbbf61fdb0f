// Package post implements the generated post repository using PostgreSQL.
package post

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	postgres "github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const table = "posts"

var columns = []string{
	"id", "user_id", "title", "text", "hashtags", "attributed_month",
	"scheduled_date", "validated", "published", "status",
	"created_at", "updated_at", "modified_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

// New creates a new post repository. updated_at is stamped from clock.
func New(pool *pgxpool.Pool, clock clockwork.Clock) *Repo {
	return &Repo{pool: pool, clock: clock}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns every post of the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id"))
}

// ListScheduledBetween returns the user's posts scheduled in [from, to),
// ordered by scheduled date.
func (r *Repo) ListScheduledBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Post, error) {
	return r.list(ctx, postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"scheduled_date": from}).
		Where(sq.Lt{"scheduled_date": to}).
		OrderBy("scheduled_date", "id"))
}

// GetByID returns a post owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post: %w", err)
	}
	return r.one(ctx, postID, query, args)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateBatch inserts posts in a single statement and returns them in
// insertion order.
func (r *Repo) CreateBatch(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	if len(posts) == 0 {
		return []domain.Post{}, nil
	}

	b := postgres.Builder().Insert(table).Columns(columns...)
	for _, p := range posts {
		hashtags := p.Hashtags
		if hashtags == nil {
			hashtags = []string{}
		}
		b = b.Values(
			p.ID, p.UserID, p.Title, p.Text, hashtags, p.AttributedMonth,
			p.ScheduledDate, p.Validated, p.Published, string(p.Status),
			p.CreatedAt, p.UpdatedAt, p.ModifiedAt,
		)
	}
	query, args, err := b.Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert posts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "post", posts[0].ID)
	}
	created, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, postgres.MapError(err, "post", posts[0].ID)
	}
	return created, nil
}

// UpdateSchedule sets or clears the scheduled date together with the status.
// A published post is left untouched and domain.ErrConflict is returned.
func (r *Repo) UpdateSchedule(ctx context.Context, userID, postID uuid.UUID, at *time.Time, status domain.PostStatus) (*domain.Post, error) {
	return r.updateUnpublished(ctx, userID, postID, map[string]any{
		"scheduled_date": at,
		"status":         string(status),
	})
}

// SetValidated flips the validated flag.
func (r *Repo) SetValidated(ctx context.Context, userID, postID uuid.UUID, validated bool) (*domain.Post, error) {
	return r.update(ctx, userID, postID, map[string]any{"validated": validated})
}

// MarkPublished records the post as published.
func (r *Repo) MarkPublished(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	return r.update(ctx, userID, postID, map[string]any{
		"published": true,
		"status":    string(domain.PostStatusPublished),
	})
}

// UpdateContent persists the editable fields of a post. Schedule, status
// and flags are left as stored. A published post is left untouched and
// domain.ErrConflict is returned.
func (r *Repo) UpdateContent(ctx context.Context, p domain.Post) (*domain.Post, error) {
	hashtags := p.Hashtags
	if hashtags == nil {
		hashtags = []string{}
	}
	return r.updateUnpublished(ctx, p.UserID, p.ID, map[string]any{
		"title":       p.Title,
		"text":        p.Text,
		"hashtags":    hashtags,
		"modified_at": p.ModifiedAt,
	})
}

// Delete removes a post. Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": postID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete post: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "post", postID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, userID, postID uuid.UUID, set map[string]any) (*domain.Post, error) {
	return r.updateWhere(ctx, postID, set, sq.Eq{"id": postID, "user_id": userID})
}

// updateUnpublished applies set only while the post is unpublished. When
// nothing matched, an existing post means it was published meanwhile.
func (r *Repo) updateUnpublished(ctx context.Context, userID, postID uuid.UUID, set map[string]any) (*domain.Post, error) {
	p, err := r.updateWhere(ctx, postID, set, sq.Eq{"id": postID, "user_id": userID, "published": false})
	if !errors.Is(err, domain.ErrNotFound) {
		return p, err
	}
	if _, getErr := r.GetByID(ctx, userID, postID); getErr != nil {
		return nil, err
	}
	return nil, fmt.Errorf("post %s already published: %w", postID, domain.ErrConflict)
}

func (r *Repo) updateWhere(ctx context.Context, postID uuid.UUID, set map[string]any, where sq.Eq) (*domain.Post, error) {
	set["updated_at"] = r.clock.Now().UTC()

	query, args, err := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(where).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update post: %w", err)
	}
	return r.one(ctx, postID, query, args)
}

func (r *Repo) list(ctx context.Context, b sq.SelectBuilder) ([]domain.Post, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list posts: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, scanPost)
	if err != nil {
		return nil, fmt.Errorf("scan posts: %w", err)
	}
	return posts, nil
}

func (r *Repo) one(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Post, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPost)
	if err != nil {
		return nil, postgres.MapError(err, "post", id)
	}
	return &p, nil
}

func scanPost(row pgx.CollectableRow) (domain.Post, error) {
	var (
		p      domain.Post
		status string
	)
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Text, &p.Hashtags, &p.AttributedMonth,
		&p.ScheduledDate, &p.Validated, &p.Published, &status,
		&p.CreatedAt, &p.UpdatedAt, &p.ModifiedAt,
	)
	if err != nil {
		return domain.Post{}, err
	}
	p.Status = domain.PostStatus(status)
	return p, nil
}
