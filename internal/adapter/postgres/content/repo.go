// Package content implements the content library repository using PostgreSQL.
package content

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"

	postgres "github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const table = "content_items"

var columns = []string{
	"id", "user_id", "file_type", "upload_type", "title", "url",
	"thumbnail_url", "attributed_month", "carousel_id", "created_at", "updated_at",
}

// Repo provides content item persistence backed by PostgreSQL.
type Repo struct {
	pool  *pgxpool.Pool
	clock clockwork.Clock
}

// New creates a new content repository. updated_at is stamped from clock.
func New(pool *pgxpool.Pool, clock clockwork.Clock) *Repo {
	return &Repo{pool: pool, clock: clock}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns every item of the user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ContentItem, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list content_items: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content_items: %w", err)
	}
	items, err := pgx.CollectRows(rows, scanItem)
	if err != nil {
		return nil, fmt.Errorf("scan content_items: %w", err)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			item.ID, item.UserID, string(item.FileType), string(item.UploadType), item.Title, item.URL,
			item.ThumbnailURL, item.AttributedMonth, item.CarouselID, item.CreatedAt, item.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert content_item: %w", err)
	}

	return r.one(ctx, item.ID, query, args)
}

// Delete removes an item. Returns domain.ErrNotFound if the item does not
// exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, itemID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete content_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "content_item", itemID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("content_item %s: %w", itemID, domain.ErrNotFound)
	}
	return nil
}

// DeleteBatch removes the given items of the user and returns how many rows
// were deleted. Unknown ids are ignored.
func (r *Repo) DeleteBatch(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (int, error) {
	if len(itemIDs) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"user_id": userID, "id": itemIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build batch delete content_items: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("batch delete content_items: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// UpdateMonth re-attributes one item.
func (r *Repo) UpdateMonth(ctx context.Context, userID, itemID uuid.UUID, month string) (*domain.ContentItem, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("attributed_month", month).
		Set("updated_at", r.clock.Now().UTC()).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update content_item month: %w", err)
	}

	return r.one(ctx, itemID, query, args)
}

// UpdateCarouselMonth re-attributes every member of a carousel and returns
// the number of items moved.
func (r *Repo) UpdateCarouselMonth(ctx context.Context, userID, carouselID uuid.UUID, month string) (int, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("attributed_month", month).
		Set("updated_at", r.clock.Now().UTC()).
		Where(sq.Eq{"carousel_id": carouselID, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build update carousel month: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "carousel", carouselID)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) one(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.ContentItem, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "content_item", id)
	}
	item, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		return nil, postgres.MapError(err, "content_item", id)
	}
	return &item, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanItem(row pgx.CollectableRow) (domain.ContentItem, error) {
	var (
		item       domain.ContentItem
		fileType   string
		uploadType string
	)
	err := row.Scan(
		&item.ID, &item.UserID, &fileType, &uploadType, &item.Title, &item.URL,
		&item.ThumbnailURL, &item.AttributedMonth, &item.CarouselID, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return domain.ContentItem{}, err
	}
	item.FileType = domain.FileType(fileType)
	item.UploadType = domain.UploadType(uploadType)
	return item, nil
}
