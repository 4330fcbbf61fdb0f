package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/contentplanner-backend/internal/service/calendar"
)

type calendarService interface {
	Month(ctx context.Context, month string) (*calendar.Grid, error)
}

// CalendarHandler serves the month grid.
type CalendarHandler struct {
	svc calendarService
	log *slog.Logger
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc calendarService, logger *slog.Logger) *CalendarHandler {
	return &CalendarHandler{svc: svc, log: logger.With("handler", "calendar")}
}

// Month handles GET /api/v1/calendar?month=YYYY-MM. Without month the
// current one is returned.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	grid, err := h.svc.Month(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCalendar(grid))
}
