// Package ctxutil carries the planner's request identity through contexts:
// the authenticated user and the request id, and the log handler that
// stamps both onto every record logged with that context.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// Log attribute keys shared by the HTTP middleware and LogHandler.
const (
	UserIDAttr    = "user_id"
	RequestIDAttr = "request_id"
)

// WithUserID stores the authenticated user in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user. uuid.Nil counts as absent.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request ID, or "" if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LogHandler wraps next so that records logged with a context carry its
// request_id and user_id. Attributes already on the record win.
func LogHandler(next slog.Handler) slog.Handler {
	return logHandler{Handler: next}
}

type logHandler struct {
	slog.Handler
}

func (h logHandler) Handle(ctx context.Context, r slog.Record) error {
	reqID := RequestIDFromCtx(ctx)
	userID, hasUser := UserIDFromCtx(ctx)
	if reqID == "" && !hasUser {
		return h.Handler.Handle(ctx, r)
	}

	r.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case RequestIDAttr:
			reqID = ""
		case UserIDAttr:
			hasUser = false
		}
		return true
	})

	r = r.Clone()
	if reqID != "" {
		r.AddAttrs(slog.String(RequestIDAttr, reqID))
	}
	if hasUser {
		r.AddAttrs(slog.String(UserIDAttr, userID.String()))
	}
	return h.Handler.Handle(ctx, r)
}

func (h logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return logHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h logHandler) WithGroup(name string) slog.Handler {
	return logHandler{Handler: h.Handler.WithGroup(name)}
}
