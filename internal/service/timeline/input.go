package timeline

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

// CreateItemInput holds the metadata of an uploaded file.
type CreateItemInput struct {
	FileType        domain.FileType
	UploadType      domain.UploadType
	Title           string
	URL             string
	ThumbnailURL    *string
	AttributedMonth *string
	CarouselID      *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	if !i.FileType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "file_type", Message: "must be image, video or document"})
	}
	if !i.UploadType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "upload_type", Message: "must be single, carousel or bulk"})
	}
	if strings.TrimSpace(i.URL) == "" {
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	}
	if len(i.Title) > 300 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if i.AttributedMonth != nil {
		if _, err := domain.ParseMonthKey(*i.AttributedMonth); err != nil {
			errs = append(errs, domain.FieldError{Field: "attributed_month", Message: "invalid month key"})
		}
	}
	if i.UploadType == domain.UploadTypeCarousel && i.CarouselID == nil {
		errs = append(errs, domain.FieldError{Field: "carousel_id", Message: "required for carousel uploads"})
	}
	if i.CarouselID != nil && *i.CarouselID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "carousel_id", Message: "must not be nil uuid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteItemsInput holds the ids for a batch delete.
type DeleteItemsInput struct {
	ItemIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteItemsInput) Validate(maxBatch int) error {
	if len(i.ItemIDs) == 0 {
		return domain.NewValidationError("item_ids", "at least one required")
	}
	if len(i.ItemIDs) > maxBatch {
		return domain.NewValidationError("item_ids", "too many items in one batch")
	}
	for _, id := range i.ItemIDs {
		if id == uuid.Nil {
			return domain.NewValidationError("item_ids", "must not contain nil uuid")
		}
	}
	return nil
}

// MoveInput re-attributes an item or a whole carousel to another month.
type MoveInput struct {
	ID    uuid.UUID
	Month string
}

// Validate checks all fields and returns the parsed month.
func (i MoveInput) Validate() (domain.MonthKey, error) {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	key, err := domain.ParseMonthKey(i.Month)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "month", Message: "invalid month key"})
	}
	if len(errs) > 0 {
		return domain.MonthKey{}, &domain.ValidationError{Errors: errs}
	}
	return key, nil
}
