package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/schedule"
)

// postsService defines the minimal interface needed by PostsHandler.
type postsService interface {
	ListBuckets(ctx context.Context) (domain.BucketSet[domain.Post], error)
	Window(ctx context.Context, postID uuid.UUID) (schedule.Window, error)
	Schedule(ctx context.Context, input schedule.ScheduleInput) (*domain.Post, error)
	Unschedule(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	SetValidated(ctx context.Context, postID uuid.UUID, validated bool) (*domain.Post, error)
	Publish(ctx context.Context, postID uuid.UUID) (*domain.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	GenerateForMonth(ctx context.Context, input schedule.GenerateInput) ([]domain.Post, error)
}

// PostsHandler serves post planning and scheduling endpoints.
type PostsHandler struct {
	svc postsService
	log *slog.Logger
}

// NewPostsHandler creates a PostsHandler.
func NewPostsHandler(svc postsService, logger *slog.Logger) *PostsHandler {
	return &PostsHandler{svc: svc, log: logger.With("handler", "posts")}
}

type scheduleRequest struct {
	ScheduledDate time.Time `json:"scheduledDate"`
}

type validatedRequest struct {
	Validated bool `json:"validated"`
}

type generateRequest struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Buckets handles GET /api/v1/posts/buckets.
func (h *PostsHandler) Buckets(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.ListBuckets(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBucketSet(set, toPost))
}

// Window handles GET /api/v1/posts/{id}/window.
func (h *PostsHandler) Window(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	win, err := h.svc.Window(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toWindow(win))
}

// Schedule handles POST /api/v1/posts/{id}/schedule.
func (h *PostsHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req scheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writePost(w, r)(h.svc.Schedule(r.Context(), schedule.ScheduleInput{PostID: id, At: req.ScheduledDate}))
}

// Unschedule handles DELETE /api/v1/posts/{id}/schedule.
func (h *PostsHandler) Unschedule(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writePost(w, r)(h.svc.Unschedule(r.Context(), id))
}

// SetValidated handles PUT /api/v1/posts/{id}/validated.
func (h *PostsHandler) SetValidated(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req validatedRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writePost(w, r)(h.svc.SetValidated(r.Context(), id, req.Validated))
}

// Publish handles POST /api/v1/posts/{id}/publish.
func (h *PostsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	h.writePost(w, r)(h.svc.Publish(r.Context(), id))
}

// Delete handles DELETE /api/v1/posts/{id}.
func (h *PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Generate handles POST /api/v1/posts:generate.
func (h *PostsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	posts, err := h.svc.GenerateForMonth(r.Context(), schedule.GenerateInput{Month: req.Month, Count: req.Count})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPosts(posts))
}

func (h *PostsHandler) writePost(w http.ResponseWriter, r *http.Request) func(*domain.Post, error) {
	return func(p *domain.Post, err error) {
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toPost(*p))
	}
}
