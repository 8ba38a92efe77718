// Package server exposes the one-stroke solver over HTTP.
//
//	GET  /v1/line?edges=0,1/1,2&start=0&max=10   text/plain trail list
//	POST /v1/solve                                JSON, all starting edges
//	GET  /healthz
//	GET  /metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/onestroke/internal/metrics"
	"github.com/katalvlaran/onestroke/solver"
	"github.com/katalvlaran/onestroke/trail"
)

// Server holds the HTTP handlers and their dependencies.
type Server struct {
	log      *zap.Logger
	metrics  *metrics.Collector
	base     []solver.Option
	search   []trail.Option
	defMax   int
	maxLimit int
	validate *validator.Validate
}

// New returns a server whose solves start from base options. Requests may
// not ask for more than maxLimit trails.
func New(log *zap.Logger, m *metrics.Collector, maxLimit int, base ...solver.Option) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewCollector("onestroke")
	}

	opts := append(slices.Clone(base), solver.WithRecorder(m), solver.WithLogger(log))
	// Resolve once so configuration errors surface at startup.
	probe, err := solver.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	o := probe.Options()

	return &Server{
		log:      log,
		metrics:  m,
		base:     opts,
		search:   []trail.Option{trail.WithOrientation(o.Orientation), trail.WithPrune(o.Prune)},
		defMax:   o.MaxSolutions,
		maxLimit: maxLimit,
		validate: validator.New(),
	}, nil
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.healthz)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	r.Route("/v1", func(r chi.Router) {
		r.Get("/line", s.line)
		r.Post("/solve", s.solve)
	})

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readTimeout,
		ReadTimeout:       readTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}

	return nil
}
