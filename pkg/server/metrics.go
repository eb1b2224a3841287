package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics bundles the server's Prometheus collectors. Each Server carries
// its own registry so tests can run servers side by side.
type metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	analysesTotal   *prometheus.CounterVec
	graphNodes      prometheus.Histogram
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clowd_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clowd_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		analysesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clowd_analyses_total",
			Help: "Graph analyses by cache outcome.",
		}, []string{"cache"}),
		graphNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clowd_analysis_graph_nodes",
			Help:    "Node counts of analyzed graphs.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

func (m *metrics) observeAnalysis(nodeCount int, cacheHit bool) {
	outcome := "miss"
	if cacheHit {
		outcome = "hit"
	}
	m.analysesTotal.WithLabelValues(outcome).Inc()
	m.graphNodes.Observe(float64(nodeCount))
}
