// Package server exposes graph analysis over HTTP.
//
// The API accepts graphs in the JSON node-link format of [graphio], runs
// the structural analyses, and archives the resulting reports:
//
//	POST /v1/analyze      analyze a graph and archive the report
//	POST /v1/paths        enumerate simple paths between two items
//	GET  /v1/reports      list archived reports
//	GET  /v1/reports/{id} fetch an archived report
//	GET  /healthz         liveness probe
//	GET  /metrics         Prometheus metrics
//
// Graphs are never persisted; only derived reports are archived.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clowdgraph/clowd/pkg/analyze"
	"github.com/clowdgraph/clowd/pkg/store"
)

// Server wires the HTTP API to an analysis runner and a report store.
type Server struct {
	cfg     Config
	runner  *analyze.Runner
	store   store.Store
	logger  *log.Logger
	metrics *metrics
	router  chi.Router
}

// New creates a server. If runner is nil a cacheless runner is used; if st
// is nil reports are kept in memory; if logger is nil the default logger
// is used.
func New(cfg Config, runner *analyze.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if runner == nil {
		runner = analyze.NewRunner(nil, nil, logger)
	}
	if st == nil {
		st = store.NewMemoryStore()
	}

	s := &Server{
		cfg:     cfg,
		runner:  runner,
		store:   st,
		logger:  logger,
		metrics: newMetrics(),
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logAndMeasure)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/paths", s.handlePaths)
		r.Get("/reports", s.handleListReports)
		r.Get("/reports/{id}", s.handleGetReport)
	})

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return r
}

// Handler returns the server's HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout),
		WriteTimeout: time.Duration(s.cfg.WriteTimeout),
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	err := <-errc
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
