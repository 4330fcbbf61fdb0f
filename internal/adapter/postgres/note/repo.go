// Package note implements the planning note repository using PostgreSQL.
package note

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/contentplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const table = "notes"

var columns = []string{
	"id", "user_id", "title", "content", "priority", "is_monthly_note",
	"note_month", "note_year", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides note persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new note repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListByUser returns all notes of the user in insertion order. Ranking is
// the caller's concern.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notes: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	notes, err := pgx.CollectRows(rows, scanNote)
	if err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	return notes, nil
}

// GetByID returns a note owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, noteID uuid.UUID) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get note: %w", err)
	}
	return r.one(ctx, noteID, query, args)
}

// Create inserts a note.
func (r *Repo) Create(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			n.ID, n.UserID, n.Title, n.Content, string(n.Priority), n.IsMonthlyNote,
			n.NoteMonth, n.NoteYear, n.CreatedAt, n.UpdatedAt,
		).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert note: %w", err)
	}
	return r.one(ctx, n.ID, query, args)
}

// Update overwrites the mutable fields of a note.
func (r *Repo) Update(ctx context.Context, n *domain.Note) (*domain.Note, error) {
	query, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"title":           n.Title,
			"content":         n.Content,
			"priority":        string(n.Priority),
			"is_monthly_note": n.IsMonthlyNote,
			"note_month":      n.NoteMonth,
			"note_year":       n.NoteYear,
			"updated_at":      n.UpdatedAt,
		}).
		Where(sq.Eq{"id": n.ID, "user_id": n.UserID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update note: %w", err)
	}
	return r.one(ctx, n.ID, query, args)
}

// Delete removes a note. Returns domain.ErrNotFound when nothing matched.
func (r *Repo) Delete(ctx context.Context, userID, noteID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete note: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "note", noteID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("note %s: %w", noteID, domain.ErrNotFound)
	}
	return nil
}

// DeleteElapsed removes dated notes of every user whose target month is
// strictly before the given month. Monthly and undated notes are kept.
func (r *Repo) DeleteElapsed(ctx context.Context, before domain.MonthKey) (int, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"is_monthly_note": false}).
		Where(sq.NotEq{"note_month": nil}).
		Where(sq.Expr("note_year * 12 + note_month - 1 < ?", before.Index())).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete elapsed notes: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete elapsed notes: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repo) one(ctx context.Context, id uuid.UUID, query string, args []any) (*domain.Note, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	n, err := pgx.CollectExactlyOneRow(rows, scanNote)
	if err != nil {
		return nil, postgres.MapError(err, "note", id)
	}
	return &n, nil
}

func scanNote(row pgx.CollectableRow) (domain.Note, error) {
	var (
		n        domain.Note
		priority string
	)
	err := row.Scan(
		&n.ID, &n.UserID, &n.Title, &n.Content, &priority, &n.IsMonthlyNote,
		&n.NoteMonth, &n.NoteYear, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return domain.Note{}, err
	}
	n.Priority = domain.NotePriority(priority)
	return n, nil
}
