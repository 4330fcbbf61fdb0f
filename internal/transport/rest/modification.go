package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/modification"
)

// modificationService defines the minimal interface needed by ModificationHandler.
type modificationService interface {
	Open(ctx context.Context, postID uuid.UUID, mode modification.Mode) (modification.Snapshot, error)
	Snapshot(ctx context.Context, postID uuid.UUID) (modification.Snapshot, error)
	SetInstruction(ctx context.Context, postID uuid.UUID, text string) (modification.Snapshot, error)
	Request(ctx context.Context, postID uuid.UUID) (modification.Snapshot, error)
	RequestAgain(ctx context.Context, postID uuid.UUID) (modification.Snapshot, error)
	Accept(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	ApplyFinal(ctx context.Context, postID uuid.UUID, reschedule *time.Time) (*domain.Post, error)
	Reject(ctx context.Context, postID uuid.UUID) (modification.Snapshot, error)
	Cancel(ctx context.Context, postID uuid.UUID) (modification.Snapshot, error)
}

// ModificationHandler drives per-post modification sessions.
type ModificationHandler struct {
	svc modificationService
	log *slog.Logger
}

// NewModificationHandler creates a ModificationHandler.
func NewModificationHandler(svc modificationService, logger *slog.Logger) *ModificationHandler {
	return &ModificationHandler{svc: svc, log: logger.With("handler", "modification")}
}

type openSessionRequest struct {
	Mode string `json:"mode"`
}

type instructionRequest struct {
	Instruction string `json:"instruction"`
}

type applyFinalRequest struct {
	Reschedule *time.Time `json:"reschedule"`
}

// Open handles POST /api/v1/posts/{id}/modification.
func (h *ModificationHandler) Open(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	var req openSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeSnapshot(w, r)(h.svc.Open(r.Context(), id, modification.Mode(req.Mode)))
}

// Get handles GET /api/v1/posts/{id}/modification.
func (h *ModificationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	h.writeSnapshot(w, r)(h.svc.Snapshot(r.Context(), id))
}

// SetInstruction handles PUT /api/v1/posts/{id}/modification/instruction.
func (h *ModificationHandler) SetInstruction(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	var req instructionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writeSnapshot(w, r)(h.svc.SetInstruction(r.Context(), id, req.Instruction))
}

// Request handles POST /api/v1/posts/{id}/modification/request.
func (h *ModificationHandler) Request(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.postID(w, r); ok {
		h.writeSnapshot(w, r)(h.svc.Request(r.Context(), id))
	}
}

// RequestAgain handles POST /api/v1/posts/{id}/modification/request-again.
func (h *ModificationHandler) RequestAgain(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.postID(w, r); ok {
		h.writeSnapshot(w, r)(h.svc.RequestAgain(r.Context(), id))
	}
}

// Reject handles POST /api/v1/posts/{id}/modification/reject.
func (h *ModificationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.postID(w, r); ok {
		h.writeSnapshot(w, r)(h.svc.Reject(r.Context(), id))
	}
}

// Cancel handles POST /api/v1/posts/{id}/modification/cancel.
func (h *ModificationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.postID(w, r); ok {
		h.writeSnapshot(w, r)(h.svc.Cancel(r.Context(), id))
	}
}

// Accept handles POST /api/v1/posts/{id}/modification/accept and returns
// the saved post.
func (h *ModificationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	post, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPost(*post))
}

// ApplyFinal handles POST /api/v1/posts/{id}/modification/apply-final.
func (h *ModificationHandler) ApplyFinal(w http.ResponseWriter, r *http.Request) {
	id, ok := h.postID(w, r)
	if !ok {
		return
	}
	var req applyFinalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	post, err := h.svc.ApplyFinal(r.Context(), id, req.Reschedule)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPost(*post))
}

func (h *ModificationHandler) postID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *ModificationHandler) writeSnapshot(w http.ResponseWriter, r *http.Request) func(modification.Snapshot, error) {
	return func(s modification.Snapshot, err error) {
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toSession(s))
	}
}
