package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/notes"
)

// notesService defines the minimal interface needed by NotesHandler.
type notesService interface {
	ListRanked(ctx context.Context) ([]domain.Note, error)
	ListBuckets(ctx context.Context) (domain.BucketSet[domain.Note], error)
	CreateNote(ctx context.Context, input notes.CreateNoteInput) (*domain.Note, error)
	UpdateNote(ctx context.Context, input notes.UpdateNoteInput) (*domain.Note, error)
	DeleteNote(ctx context.Context, noteID uuid.UUID) error
}

// NotesHandler serves the planning notes endpoints.
type NotesHandler struct {
	svc notesService
	log *slog.Logger
}

// NewNotesHandler creates a NotesHandler.
func NewNotesHandler(svc notesService, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{svc: svc, log: logger.With("handler", "notes")}
}

type createNoteRequest struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	Priority      string `json:"priority"`
	IsMonthlyNote bool   `json:"isMonthlyNote"`
	NoteMonth     *int   `json:"noteMonth"`
	NoteYear      *int   `json:"noteYear"`
}

type updateNoteRequest struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Priority      *string `json:"priority"`
	IsMonthlyNote *bool   `json:"isMonthlyNote"`
	NoteMonth     *int    `json:"noteMonth"`
	NoteYear      *int    `json:"noteYear"`
	ClearTarget   bool    `json:"clearTarget"`
}

// List handles GET /api/v1/notes. Notes come back in ranked order.
func (h *NotesHandler) List(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.svc.ListRanked(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]noteResponse, len(ranked))
	for i, n := range ranked {
		out[i] = toNote(n)
	}
	writeJSON(w, http.StatusOK, out)
}

// Buckets handles GET /api/v1/notes/buckets.
func (h *NotesHandler) Buckets(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.ListBuckets(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBucketSet(set, toNote))
}

// Create handles POST /api/v1/notes.
func (h *NotesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	note, err := h.svc.CreateNote(r.Context(), notes.CreateNoteInput{
		Title:         req.Title,
		Content:       req.Content,
		Priority:      domain.NotePriority(req.Priority),
		IsMonthlyNote: req.IsMonthlyNote,
		NoteMonth:     req.NoteMonth,
		NoteYear:      req.NoteYear,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toNote(*note))
}

// Update handles PATCH /api/v1/notes/{id}.
func (h *NotesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateNoteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := notes.UpdateNoteInput{
		NoteID:        id,
		Title:         req.Title,
		Content:       req.Content,
		IsMonthlyNote: req.IsMonthlyNote,
		NoteMonth:     req.NoteMonth,
		NoteYear:      req.NoteYear,
		ClearTarget:   req.ClearTarget,
	}
	if req.Priority != nil {
		p := domain.NotePriority(*req.Priority)
		input.Priority = &p
	}

	note, err := h.svc.UpdateNote(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNote(*note))
}

// Delete handles DELETE /api/v1/notes/{id}.
func (h *NotesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
