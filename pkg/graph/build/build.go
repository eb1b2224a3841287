// Package build constructs graph snapshots from caller-supplied successor
// functions. It is a convenience layer over the mutable engine: callers hand
// in a collection of items and a description of each item's outgoing edges,
// and receive a fully built, read-only view with boundary sets in place.
package build

import (
	"github.com/clowdgraph/clowd/pkg/graph"
)

// FromLabelMap builds a graph from items and a function describing each
// item's labeled successors. Successor items that are not in the input
// collection are added as nodes, so the successor function may mention
// items lazily. A nil successor function yields an edgeless graph.
func FromLabelMap[T comparable, L comparable](items []T, succ func(T) map[L]T) (graph.View[T, L], error) {
	g := graph.New[T, L](nil)
	for _, item := range items {
		g.Add(item)
	}
	if succ == nil {
		return g, nil
	}
	for _, item := range items {
		for label, to := range succ(item) {
			g.Add(to)
			if err := g.Link(item, to, label, 0); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// FromAdjacency builds an unlabeled graph from items and a function listing
// each item's successors. Edges carry the constant [graph.Unit] label, so
// repeated mentions of the same successor collapse into one edge.
func FromAdjacency[T comparable](items []T, succ func(T) []T) (graph.View[T, graph.Unit], error) {
	g := graph.New[T, graph.Unit](nil)
	for _, item := range items {
		g.Add(item)
	}
	if succ == nil {
		return g, nil
	}
	for _, item := range items {
		for _, to := range succ(item) {
			g.Add(to)
			if err := g.Link(item, to, graph.Unit{}, 0); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
