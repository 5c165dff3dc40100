// Package server exposes chart assembly, rendering and saved profiles over
// HTTP.
//
// Routes:
//
//	GET    /healthz
//	POST   /v1/layout?mode=
//	POST   /v1/render?format=&mode=&size=&theme=&degrees=&title=
//	POST   /v1/charts
//	GET    /v1/charts
//	GET    /v1/charts/{id}
//	DELETE /v1/charts/{id}
//	GET    /v1/charts/{id}/layout?mode=
//	GET    /v1/charts/{id}/modes
//	GET    /v1/charts/{id}/render?format=&mode=&size=&theme=&degrees=&title=
//
// Request bodies are chart requests in JSON (comments allowed), YAML or TOML,
// chosen by Content-Type. Errors are returned as {"code": ..., "message": ...}.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/kundali/pkg/pipeline"
	"github.com/matzehuels/kundali/pkg/store"
)

const (
	// maxBodyBytes bounds request bodies.
	maxBodyBytes = 1 << 20

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
}

// New creates a server. A nil store means an in-memory store; a nil logger
// means log.Default().
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, store: st, logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.recoverer)
	r.Use(observe)

	r.Get("/healthz", announce(s.handleHealth))

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", announce(s.handleLayout))
		r.Post("/render", announce(s.handleRender))

		r.Route("/charts", func(r chi.Router) {
			r.Post("/", announce(s.handleSaveChart))
			r.Get("/", announce(s.handleListCharts))
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", announce(s.handleGetChart))
				r.Delete("/", announce(s.handleDeleteChart))
				r.Get("/layout", announce(s.handleChartLayout))
				r.Get("/modes", announce(s.handleChartModes))
				r.Get("/render", announce(s.handleChartRender))
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed on " + r.URL.Path})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
