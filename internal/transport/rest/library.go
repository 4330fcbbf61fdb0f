package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/contentplanner-backend/internal/domain"
	"github.com/heartmarshall/contentplanner-backend/internal/service/timeline"
)

// libraryService defines the minimal interface needed by LibraryHandler.
type libraryService interface {
	ListBuckets(ctx context.Context) (domain.BucketSet[domain.LibraryEntry], error)
	CreateItem(ctx context.Context, input timeline.CreateItemInput) (*domain.ContentItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	DeleteItems(ctx context.Context, input timeline.DeleteItemsInput) (int, error)
	MoveItem(ctx context.Context, input timeline.MoveInput) (*domain.ContentItem, error)
	MoveCarousel(ctx context.Context, input timeline.MoveInput) (int, error)
}

// LibraryHandler serves the content library endpoints.
type LibraryHandler struct {
	svc libraryService
	log *slog.Logger
}

// NewLibraryHandler creates a LibraryHandler.
func NewLibraryHandler(svc libraryService, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{svc: svc, log: logger.With("handler", "library")}
}

type createItemRequest struct {
	FileType        string     `json:"fileType"`
	UploadType      string     `json:"uploadType"`
	Title           string     `json:"title"`
	URL             string     `json:"url"`
	ThumbnailURL    *string    `json:"thumbnailUrl"`
	AttributedMonth *string    `json:"attributedMonth"`
	CarouselID      *uuid.UUID `json:"carouselId"`
}

type batchDeleteRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type moveRequest struct {
	Month string `json:"month"`
}

type countResponse struct {
	Count int `json:"count"`
}

// Buckets handles GET /api/v1/library/buckets.
func (h *LibraryHandler) Buckets(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.ListBuckets(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBucketSet(set, toLibraryEntry))
}

// CreateItem handles POST /api/v1/library/items.
func (h *LibraryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.CreateItem(r.Context(), timeline.CreateItemInput{
		FileType:        domain.FileType(req.FileType),
		UploadType:      domain.UploadType(req.UploadType),
		Title:           req.Title,
		URL:             req.URL,
		ThumbnailURL:    req.ThumbnailURL,
		AttributedMonth: req.AttributedMonth,
		CarouselID:      req.CarouselID,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toContentItem(*item))
}

// DeleteItem handles DELETE /api/v1/library/items/{id}.
func (h *LibraryHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteItem(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BatchDelete handles POST /api/v1/library/items:batchDelete.
func (h *LibraryHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	var req batchDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	n, err := h.svc.DeleteItems(r.Context(), timeline.DeleteItemsInput{ItemIDs: req.IDs})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

// MoveItem handles PATCH /api/v1/library/items/{id}/month.
func (h *LibraryHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.moveArgs(w, r, "id")
	if !ok {
		return
	}
	item, err := h.svc.MoveItem(r.Context(), timeline.MoveInput{ID: id, Month: req.Month})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toContentItem(*item))
}

// MoveCarousel handles PATCH /api/v1/library/carousels/{carouselID}/month.
func (h *LibraryHandler) MoveCarousel(w http.ResponseWriter, r *http.Request) {
	id, req, ok := h.moveArgs(w, r, "carouselID")
	if !ok {
		return
	}
	n, err := h.svc.MoveCarousel(r.Context(), timeline.MoveInput{ID: id, Month: req.Month})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, countResponse{Count: n})
}

func (h *LibraryHandler) moveArgs(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, moveRequest, bool) {
	id, err := pathID(r, param)
	if err != nil {
		respondError(w, r, h.log, err)
		return uuid.Nil, moveRequest{}, false
	}
	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err)
		return uuid.Nil, moveRequest{}, false
	}
	return id, req, true
}
