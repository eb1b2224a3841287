// Package analyze runs structural analyses over a graph and bundles the
// results into a report.
//
// A report captures the boundary sets, cycle status, and clowd partition of
// a graph at one point in time. Reports are identified by a UUID and keyed
// for caching by the graph's content fingerprint, so two structurally
// identical graphs share cached results.
//
// # Usage
//
// Create a Runner and analyze a graph:
//
//	runner := analyze.NewRunner(cache, nil, logger)
//	report, err := runner.Analyze(ctx, g, analyze.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Cyclic, report.Clowds)
package analyze

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/clowdgraph/clowd/pkg/cache"
	"github.com/clowdgraph/clowd/pkg/graph"
	"github.com/clowdgraph/clowd/pkg/graphio"
)

// Report is the result of analyzing a graph. It is JSON-serializable for
// caching, persistence, and API responses.
type Report struct {
	// ID uniquely identifies this report.
	ID string `json:"id"`

	// Fingerprint is the content hash of the analyzed graph.
	Fingerprint string `json:"fingerprint"`

	// CreatedAt is when the analysis ran.
	CreatedAt time.Time `json:"created_at"`

	// Meta carries the graph's metadata.
	Meta graph.Metadata `json:"meta,omitempty"`

	// NodeCount and EdgeCount describe the graph's size. EdgeCount counts
	// parallel labels individually.
	NodeCount int `json:"node_count"`
	EdgeCount int `json:"edge_count"`

	// Sources and Sinks are the boundary sets, sorted.
	Sources []string `json:"sources"`
	Sinks   []string `json:"sinks"`

	// Cyclic reports whether the graph contains a cycle.
	Cyclic bool `json:"cyclic"`

	// Clowds is the partition into weakly-connected subgraphs, each entry
	// listing the member items sorted. Clowds are ordered by first member.
	Clowds [][]string `json:"clowds"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// Route is one enumerated path between two items, serialized for caching
// and API responses.
type Route struct {
	// Nodes lists every node on the route in order.
	Nodes []string `json:"nodes"`

	// Labels lists the edge label of each step.
	Labels []string `json:"labels"`

	// Weight is the sum of the step weights.
	Weight float64 `json:"weight"`
}

// Fingerprint computes the content hash of a graph. The hash is derived
// from the deterministic JSON export, so it is stable across processes and
// independent of insertion order for the same structure.
func Fingerprint(g *graph.Graph[string, string]) (string, error) {
	data, err := graphio.Marshal(g)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}

// build runs the analyses and assembles a report.
func build(g *graph.Graph[string, string], fingerprint string) *Report {
	start := time.Now()

	sources := g.Sources()
	sinks := g.Sinks()
	slices.Sort(sources)
	slices.Sort(sinks)

	var clowds [][]string
	for _, part := range g.Split() {
		items := part.Items()
		slices.Sort(items)
		clowds = append(clowds, items)
	}
	slices.SortFunc(clowds, func(a, b []string) int { return slices.Compare(a, b) })

	return &Report{
		ID:          uuid.NewString(),
		Fingerprint: fingerprint,
		CreatedAt:   time.Now().UTC(),
		Meta:        g.Meta(),
		NodeCount:   g.Len(),
		EdgeCount:   g.EdgeCount(),
		Sources:     sources,
		Sinks:       sinks,
		Cyclic:      g.HasCycles(),
		Clowds:      clowds,
		Duration:    time.Since(start),
	}
}

// MarshalReport encodes a report as JSON.
func MarshalReport(r *Report) ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalReport decodes a JSON report.
func UnmarshalReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
