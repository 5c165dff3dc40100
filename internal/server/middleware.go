package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/kundali/pkg/observability"
)

// unmatchedRoute labels requests that no route accepted.
const unmatchedRoute = "unmatched"

// observe reports every response to the registered HTTP hooks. The route is
// the chi pattern ("/v1/charts/{id}") so that IDs do not fan out label sets.
func observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, routePattern(r), status, time.Since(start))
	})
}

// announce reports the request from inside the matched endpoint, where the
// full route pattern is known.
func announce(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		observability.HTTP().OnRequest(r.Context(), r.Method, routePattern(r))
		h(w, r)
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := strings.TrimSuffix(rctx.RoutePattern(), "/*"); p != "" {
			if len(p) > 1 {
				p = strings.TrimSuffix(p, "/")
			}
			return p
		}
	}
	return unmatchedRoute
}

// recoverer converts panics into 500 responses and logs the stack.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}
			err := fmt.Errorf("panic: %v", rec)
			s.logger.Error("panic recovered",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()),
				"panic", rec,
				"stack", strings.TrimSpace(string(debug.Stack())))
			observability.HTTP().OnError(r.Context(), r.Method, routePattern(r), err)
			writeJSON(w, http.StatusInternalServerError, errorBody{Code: "INTERNAL_ERROR", Message: "internal error"})
		}()
		next.ServeHTTP(w, r)
	})
}
