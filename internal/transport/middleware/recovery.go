package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/contentplanner-backend/pkg/ctxutil"
)

const internalErrorBody = `{"error":"internal server error"}` + "\n"

// Recovery returns middleware that recovers from panics, logs the value
// with a stack trace and responds with a JSON 500 unless the handler had
// already started its response.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				// RequestID usually runs inside Recovery, so the id is only
				// visible on the response headers.
				reqID := ctxutil.RequestIDFromCtx(r.Context())
				if reqID == "" {
					reqID = sw.Header().Get(RequestIDHeader)
				}
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String(ctxutil.RequestIDAttr, reqID),
				)
				if sw.wroteHeader {
					return
				}
				sw.Header().Set("Content-Type", "application/json")
				sw.WriteHeader(http.StatusInternalServerError)
				_, _ = sw.Write([]byte(internalErrorBody))
			}()
			next.ServeHTTP(sw, r)
		})
	}
}
