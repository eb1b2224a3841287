package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// requestIDHeader carries the request ID back to the client.
const requestIDHeader = "X-Request-ID"

// requestID assigns a UUID to each request unless the client supplied one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// logAndMeasure logs each request and records Prometheus metrics. Routes
// are labeled by their chi pattern, not the raw path, to keep cardinality
// bounded.
func (s *Server) logAndMeasure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		elapsed := time.Since(start)

		s.metrics.requestsTotal.WithLabelValues(route, http.StatusText(ww.Status())).Inc()
		s.metrics.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())

		s.logger.Info("request",
			"method", r.Method,
			"route", route,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", w.Header().Get(requestIDHeader))
	})
}
