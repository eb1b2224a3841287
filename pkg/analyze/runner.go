package analyze

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/clowdgraph/clowd/pkg/cache"
	"github.com/clowdgraph/clowd/pkg/graph"
)

// Options configures a single analysis run.
type Options struct {
	// Refresh bypasses the cache and recomputes the analysis.
	Refresh bool `json:"refresh,omitempty"`
}

// Runner executes analyses with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store results. Multiple goroutines can safely use the same Runner.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Analyze runs the full analysis with caching. A cached report keeps its
// original ID and timestamp.
func (r *Runner) Analyze(ctx context.Context, g *graph.Graph[string, string], opts Options) (*Report, error) {
	report, _, err := r.AnalyzeWithCacheInfo(ctx, g, opts)
	return report, err
}

// AnalyzeWithCacheInfo runs the full analysis and reports whether the
// result came from cache.
func (r *Runner) AnalyzeWithCacheInfo(ctx context.Context, g *graph.Graph[string, string], opts Options) (*Report, bool, error) {
	fingerprint, err := Fingerprint(g)
	if err != nil {
		return nil, false, fmt.Errorf("fingerprint: %w", err)
	}
	cacheKey := r.Keyer.AnalysisKey(fingerprint)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if report, err := UnmarshalReport(data); err == nil {
				r.Logger.Debug("analysis cache hit", "fingerprint", fingerprint)
				return report, true, nil
			}
		}
	}

	report := build(g, fingerprint)

	r.Logger.Info("analyzed graph",
		"nodes", report.NodeCount,
		"edges", report.EdgeCount,
		"clowds", len(report.Clowds),
		"cyclic", report.Cyclic,
		"duration", report.Duration)

	if data, err := MarshalReport(report); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLAnalysis)
	}

	return report, false, nil
}

// Paths enumerates all simple routes between two items with caching. The
// same preconditions as [graph.Graph.Paths] apply: both items must be
// members and the graph must be acyclic.
func (r *Runner) Paths(ctx context.Context, g *graph.Graph[string, string], from, to string, opts Options) ([]Route, error) {
	fingerprint, err := Fingerprint(g)
	if err != nil {
		return nil, fmt.Errorf("fingerprint: %w", err)
	}
	cacheKey := r.Keyer.PathsKey(fingerprint, from, to)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var routes []Route
			if err := json.Unmarshal(data, &routes); err == nil {
				r.Logger.Debug("paths cache hit", "from", from, "to", to)
				return routes, nil
			}
		}
	}

	paths, err := g.Paths(from, to)
	if err != nil {
		return nil, err
	}

	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		route := Route{Nodes: p.Nodes(), Weight: p.Weight()}
		for _, s := range p.Steps() {
			route.Labels = append(route.Labels, s.Label)
		}
		routes = append(routes, route)
	}

	r.Logger.Info("enumerated paths", "from", from, "to", to, "count", len(routes))

	if data, err := json.Marshal(routes); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLPaths)
	}

	return routes, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
