package rest

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups every HTTP handler served by the API.
type Handlers struct {
	Health       *HealthHandler
	Library      *LibraryHandler
	Notes        *NotesHandler
	Posts        *PostsHandler
	Calendar     *CalendarHandler
	Modification *ModificationHandler
	Metrics      http.Handler
}

// NewRouter registers all routes. auth guards everything under /api/v1;
// probes and /metrics stay public.
func NewRouter(h Handlers, auth func(http.Handler) http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/live", h.Health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", h.Health.Ready).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
	if h.Metrics != nil {
		r.Handle("/metrics", h.Metrics).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	if auth != nil {
		api.Use(auth)
	}

	// Library
	api.HandleFunc("/library/buckets", h.Library.Buckets).Methods(http.MethodGet)
	api.HandleFunc("/library/items", h.Library.CreateItem).Methods(http.MethodPost)
	api.HandleFunc("/library/items:batchDelete", h.Library.BatchDelete).Methods(http.MethodPost)
	api.HandleFunc("/library/items/{id}", h.Library.DeleteItem).Methods(http.MethodDelete)
	api.HandleFunc("/library/items/{id}/month", h.Library.MoveItem).Methods(http.MethodPatch)
	api.HandleFunc("/library/carousels/{carouselID}/month", h.Library.MoveCarousel).Methods(http.MethodPatch)

	// Notes
	api.HandleFunc("/notes", h.Notes.List).Methods(http.MethodGet)
	api.HandleFunc("/notes", h.Notes.Create).Methods(http.MethodPost)
	api.HandleFunc("/notes/buckets", h.Notes.Buckets).Methods(http.MethodGet)
	api.HandleFunc("/notes/{id}", h.Notes.Update).Methods(http.MethodPatch)
	api.HandleFunc("/notes/{id}", h.Notes.Delete).Methods(http.MethodDelete)

	// Posts
	api.HandleFunc("/posts:generate", h.Posts.Generate).Methods(http.MethodPost)
	api.HandleFunc("/posts/buckets", h.Posts.Buckets).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.Posts.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/window", h.Posts.Window).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}/schedule", h.Posts.Schedule).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/schedule", h.Posts.Unschedule).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/validated", h.Posts.SetValidated).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}/publish", h.Posts.Publish).Methods(http.MethodPost)

	// Calendar
	api.HandleFunc("/calendar", h.Calendar.Month).Methods(http.MethodGet)

	// Modification sessions
	m := api.PathPrefix("/posts/{id}/modification").Subrouter()
	m.HandleFunc("", h.Modification.Open).Methods(http.MethodPost)
	m.HandleFunc("", h.Modification.Get).Methods(http.MethodGet)
	m.HandleFunc("/instruction", h.Modification.SetInstruction).Methods(http.MethodPut)
	m.HandleFunc("/request", h.Modification.Request).Methods(http.MethodPost)
	m.HandleFunc("/request-again", h.Modification.RequestAgain).Methods(http.MethodPost)
	m.HandleFunc("/accept", h.Modification.Accept).Methods(http.MethodPost)
	m.HandleFunc("/reject", h.Modification.Reject).Methods(http.MethodPost)
	m.HandleFunc("/cancel", h.Modification.Cancel).Methods(http.MethodPost)
	m.HandleFunc("/apply-final", h.Modification.ApplyFinal).Methods(http.MethodPost)

	return r
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
