package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNotNullViolation    = "23502"
)

// checkFields maps the planner's CHECK constraints (see migrations/) to the
// API field they guard.
var checkFields = map[string]domain.FieldError{
	"content_items_file_type_check":   {Field: "file_type", Message: "must be image, video or document"},
	"content_items_upload_type_check": {Field: "upload_type", Message: "must be single, carousel or bulk"},
	"notes_priority_check":            {Field: "priority", Message: "must be low, normal or high"},
	"notes_note_month_check":          {Field: "note_month", Message: "must be between 1 and 12"},
	"notes_month_year_together":       {Field: "note_year", Message: "month and year must be set together"},
	"notes_monthly_has_no_month":      {Field: "note_month", Message: "a monthly note has no month"},
	"posts_status_check":              {Field: "status", Message: "must be draft, scheduled, published or failed"},
}

// MapError converts a failed planner statement into a domain error:
//   - no rows and foreign key violations become ErrNotFound
//   - unique violations become ErrAlreadyExists
//   - known CHECK constraints become a *domain.ValidationError naming the
//     field, other CHECK and NOT NULL violations wrap ErrValidation
//
// Context cancellation and deadline errors pass through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case codeCheckViolation:
			if fe, ok := checkFields[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError(fe.Field, fe.Message))
			}
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		case codeNotNullViolation:
			return fmt.Errorf("%s %s: %w", entity, id, domain.NewValidationError(pgErr.ColumnName, "required"))
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
