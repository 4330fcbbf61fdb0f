package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const unmatchedRoute = "unmatched"

type httpObserver interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// Metrics records request duration per route template. Routes are resolved
// against router so that path parameters do not explode label cardinality.
func Metrics(obs httpObserver, router *mux.Router) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := wrapWriter(w)

			next.ServeHTTP(sw, r)

			obs.ObserveHTTP(r.Method, routeOf(router, r), sw.status, time.Since(start))
		})
	}
}

func routeOf(router *mux.Router, r *http.Request) string {
	if router == nil {
		return unmatchedRoute
	}
	var match mux.RouteMatch
	if !router.Match(r, &match) || match.Route == nil {
		return unmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
