package schedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// ScheduleInput holds the parameters for scheduling a post.
type ScheduleInput struct {
	PostID uuid.UUID
	At     time.Time
}

// Validate checks all fields and collects all errors.
func (i ScheduleInput) Validate() error {
	var errs []domain.FieldError
	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if i.At.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scheduled_date", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GenerateInput holds the parameters for generating drafts for a month.
type GenerateInput struct {
	Month string
	Count int
}

// Validate checks all fields and returns the parsed month.
func (i GenerateInput) Validate() (domain.MonthKey, error) {
	var errs []domain.FieldError
	key, err := domain.ParseMonthKey(i.Month)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "month", Message: "invalid month key"})
	}
	if i.Count < 1 || i.Count > MaxGenerateCount {
		errs = append(errs, domain.FieldError{Field: "count", Message: "must be between 1 and 31"})
	}
	if len(errs) > 0 {
		return domain.MonthKey{}, &domain.ValidationError{Errors: errs}
	}
	return key, nil
}
