package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clowdgraph/clowd/pkg/analyze"
	apperrors "github.com/clowdgraph/clowd/pkg/errors"
	"github.com/clowdgraph/clowd/pkg/graph"
	"github.com/clowdgraph/clowd/pkg/graphio"
	"github.com/clowdgraph/clowd/pkg/store"
)

// handleAnalyze runs the full analysis on a submitted graph and archives
// the report. The request body is a node-link JSON document.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	g, err := graphio.Read(r.Body)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid graph document"))
		return
	}
	if s.cfg.MaxGraphNodes > 0 && g.Len() > s.cfg.MaxGraphNodes {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidArgument,
			"graph has %d nodes, limit is %d", g.Len(), s.cfg.MaxGraphNodes))
		return
	}
	if s.cfg.MaxGraphEdges > 0 && g.EdgeCount() > s.cfg.MaxGraphEdges {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidArgument,
			"graph has %d edges, limit is %d", g.EdgeCount(), s.cfg.MaxGraphEdges))
		return
	}

	opts := analyze.Options{Refresh: r.URL.Query().Get("refresh") == "true"}
	report, cacheHit, err := s.runner.AnalyzeWithCacheInfo(r.Context(), g, opts)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "analysis failed"))
		return
	}
	s.metrics.observeAnalysis(report.NodeCount, cacheHit)

	if err := s.store.SaveReport(r.Context(), report); err != nil && !errors.Is(err, store.ErrDuplicate) {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "archive report"))
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// pathsRequest is the body of POST /v1/paths.
type pathsRequest struct {
	Graph json.RawMessage `json:"graph"`
	From  string          `json:"from"`
	To    string          `json:"to"`
}

// pathsResponse is the body of a successful paths call.
type pathsResponse struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Routes []analyze.Route `json:"routes"`
}

// handlePaths enumerates all simple paths between two items of a
// submitted graph.
func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	var req pathsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid request body"))
		return
	}
	if len(req.Graph) == 0 || req.From == "" || req.To == "" {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidArgument, "graph, from, and to are required"))
		return
	}

	g, err := graphio.Unmarshal(req.Graph)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "invalid graph document"))
		return
	}

	routes, err := s.runner.Paths(r.Context(), g, req.From, req.To, analyze.Options{})
	switch {
	case errors.Is(err, graph.ErrNotMember):
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidArgument, err, "unknown item"))
		return
	case errors.Is(err, graph.ErrCyclicGraph):
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodePrecondition, err, "graph must be acyclic"))
		return
	case err != nil:
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "path enumeration failed"))
		return
	}

	s.writeJSON(w, http.StatusOK, pathsResponse{From: req.From, To: req.To, Routes: routes})
}

// handleGetReport fetches an archived report by ID.
func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	report, err := s.store.GetReport(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, apperrors.New(apperrors.ErrCodeNotFound, "no report with id %s", id))
		return
	}
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "load report"))
		return
	}
	s.writeJSON(w, http.StatusOK, report)
}

// handleListReports lists archived reports, newest first. The limit query
// parameter defaults to 20.
func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 {
			s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidArgument, "invalid limit: %q", q))
			return
		}
		limit = parsed
	}

	reports, err := s.store.ListReports(r.Context(), limit)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "list reports"))
		return
	}
	if reports == nil {
		reports = []*analyze.Report{}
	}
	s.writeJSON(w, http.StatusOK, reports)
}

// handleHealthz is the liveness probe.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errorResponse is the JSON body of failed requests.
type errorResponse struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// writeError maps structured error codes to HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidArgument, apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodePrecondition, apperrors.ErrCodeIllegalState:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	s.writeJSON(w, status, errorResponse{
		Code:    apperrors.GetCode(err),
		Message: apperrors.UserMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
