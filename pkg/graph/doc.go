// Package graph provides a mutable, directed, labeled multigraph with
// eagerly maintained source and sink sets.
//
// A Graph wraps arbitrary caller-supplied items (any comparable type) in
// nodes and connects them with labeled, weighted edges. Multiplicity between
// the same pair of nodes is discriminated by label: linking the same
// (from, to, label) triple twice collapses into a single edge, while distinct
// labels between the same endpoints coexist as parallel edges.
//
// # Boundary Sets
//
// The graph keeps its source set (nodes with no incoming edge) and sink set
// (nodes with no outgoing edge) consistent on every structural mutation. A
// freshly added node is both a source and a sink; Link and Unlink move nodes
// in and out of the sets as their degree changes. Sources and Sinks are O(1)
// snapshots of precomputed state, never full scans.
//
// # Analyses
//
// Three read-only analyses are built in:
//
//   - [Graph.HasCycles] decides whether the graph contains a directed cycle
//     by iteratively peeling sinks off a disposable clone.
//   - [Graph.Split] partitions the graph into its clowds - maximal groups of
//     nodes reachable from a common set of sources.
//   - [Graph.Paths] enumerates every simple directed path between two nodes.
//     Path enumeration requires an acyclic graph and fails with
//     [ErrCyclicGraph] otherwise.
//
// # Concurrency
//
// All operations acquire a single graph-wide mutex for their full duration.
// The lock is intentionally coarse: the boundary-set invariants span the
// whole node set and cannot be checked under partial locking. HasCycles and
// Split take a clone while holding the lock and release it before doing the
// expensive peeling or merging work.
//
// # Example
//
//	g := graph.New[string, string](nil)
//	g.Add("build")
//	g.Add("test")
//	g.Add("release")
//	_ = g.Link("build", "test", "then", 1)
//	_ = g.Link("test", "release", "then", 1)
//
//	g.HasCycles()        // false
//	g.Sources()          // ["build"]
//	g.Sinks()            // ["release"]
//	paths, _ := g.Paths("build", "release")
package graph
