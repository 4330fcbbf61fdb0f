package notes

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxContentLen = 5000
)

// CreateNoteInput holds the parameters for creating a note.
type CreateNoteInput struct {
	Title         string
	Content       string
	Priority      domain.NotePriority // empty = normal
	IsMonthlyNote bool
	NoteMonth     *int
	NoteYear      *int
}

// Validate checks all fields and collects all errors.
func (i CreateNoteInput) Validate() error {
	errs := validateText(i.Title, i.Content)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, normal or high"})
	}
	errs = append(errs, validateTarget(i.IsMonthlyNote, i.NoteMonth, i.NoteYear)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNoteInput holds the parameters for updating a note. Nil fields are
// left unchanged. ClearTarget removes the target month of a dated note.
type UpdateNoteInput struct {
	NoteID        uuid.UUID
	Title         *string
	Content       *string
	Priority      *domain.NotePriority
	IsMonthlyNote *bool
	NoteMonth     *int
	NoteYear      *int
	ClearTarget   bool
}

// Validate checks the fields that can be checked without the stored note.
func (i UpdateNoteInput) Validate() error {
	var errs []domain.FieldError

	if i.NoteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "note_id", Message: "required"})
	}
	if i.Title == nil && i.Content == nil && i.Priority == nil &&
		i.IsMonthlyNote == nil && i.NoteMonth == nil && i.NoteYear == nil && !i.ClearTarget {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Priority != nil && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "must be low, normal or high"})
	}
	if (i.NoteMonth == nil) != (i.NoteYear == nil) {
		errs = append(errs, domain.FieldError{Field: "note_month", Message: "month and year must be set together"})
	}
	if i.ClearTarget && i.NoteMonth != nil {
		errs = append(errs, domain.FieldError{Field: "note_month", Message: "cannot set and clear the target month"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply merges the input into a copy of n and validates the result.
func (i UpdateNoteInput) apply(n domain.Note) (domain.Note, error) {
	if i.Title != nil {
		n.Title = strings.TrimSpace(*i.Title)
	}
	if i.Content != nil {
		n.Content = *i.Content
	}
	if i.Priority != nil {
		n.Priority = *i.Priority
	}
	if i.IsMonthlyNote != nil {
		n.IsMonthlyNote = *i.IsMonthlyNote
		if n.IsMonthlyNote && i.NoteMonth == nil {
			n.NoteMonth, n.NoteYear = nil, nil
		}
	}
	if i.ClearTarget {
		n.NoteMonth, n.NoteYear = nil, nil
	}
	if i.NoteMonth != nil {
		n.NoteMonth, n.NoteYear = i.NoteMonth, i.NoteYear
	}

	errs := validateText(n.Title, n.Content)
	errs = append(errs, validateTarget(n.IsMonthlyNote, n.NoteMonth, n.NoteYear)...)
	if len(errs) > 0 {
		return domain.Note{}, &domain.ValidationError{Errors: errs}
	}
	return n, nil
}

func validateText(title, content string) []domain.FieldError {
	var errs []domain.FieldError
	t := strings.TrimSpace(title)
	if t == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(t) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 5000 characters"})
	}
	return errs
}

// validateTarget enforces that monthly notes carry no month and that dated
// notes carry a full, valid month and year.
func validateTarget(monthly bool, month, year *int) []domain.FieldError {
	var errs []domain.FieldError
	if monthly && (month != nil || year != nil) {
		errs = append(errs, domain.FieldError{Field: "is_monthly_note", Message: "monthly notes cannot have a target month"})
		return errs
	}
	if (month == nil) != (year == nil) {
		errs = append(errs, domain.FieldError{Field: "note_month", Message: "month and year must be set together"})
		return errs
	}
	if month != nil && (*month < 1 || *month > 12) {
		errs = append(errs, domain.FieldError{Field: "note_month", Message: "must be between 1 and 12"})
	}
	if year != nil && (*year < 1000 || *year > 9999) {
		errs = append(errs, domain.FieldError{Field: "note_year", Message: "must be a 4-digit year"})
	}
	return errs
}
