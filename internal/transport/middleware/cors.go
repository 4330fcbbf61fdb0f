package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/contentplanner-backend/internal/config"
)

// CORS returns middleware for the planner UI. Allowed origins are echoed
// back with Vary: Origin and may send and read the request id header.
// Preflight requests (OPTIONS with Access-Control-Request-Method) are
// answered here; a plain OPTIONS reaches the router.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	_, anyOrigin := origins["*"]
	methods := cfg.AllowedMethods
	headers := withRequestIDHeader(cfg.AllowedHeaders)
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		if anyOrigin {
			return true
		}
		_, ok := origins[origin]
		return ok
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			ok := allowed(origin)
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if ok {
					h.Set("Access-Control-Allow-Methods", methods)
					h.Set("Access-Control-Allow-Headers", headers)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out[v] = struct{}{}
		}
	}
	return out
}

// withRequestIDHeader appends RequestIDHeader to a comma-separated header
// list unless it is already there.
func withRequestIDHeader(list string) string {
	for _, v := range strings.Split(list, ",") {
		if strings.EqualFold(strings.TrimSpace(v), RequestIDHeader) {
			return list
		}
	}
	if strings.TrimSpace(list) == "" {
		return RequestIDHeader
	}
	return list + "," + RequestIDHeader
}
