package graph

import (
	"errors"
	"sync"
)

var (
	// ErrNotMember is returned by [Graph.Link], [Graph.Unlink], [Graph.Paths],
	// [Graph.SubgraphFrom] and [Graph.SubgraphTo] when a referenced item is
	// not a node of this graph instance. This indicates caller misuse, most
	// commonly mixing items across graph instances.
	ErrNotMember = errors.New("item is not a member of this graph")

	// ErrEdgeNotFound is returned by queries that require an existing edge
	// between two nodes.
	ErrEdgeNotFound = errors.New("no edge between the given nodes")

	// ErrCyclicGraph is returned by [Graph.Paths] when the graph contains a
	// directed cycle. Path enumeration only terminates on acyclic graphs, so
	// a positive cycle check is treated as a failed precondition.
	ErrCyclicGraph = errors.New("graph contains a cycle")

	// ErrPathInUse is returned by [Path.Append] and [Path.Pop] once a cursor
	// has been obtained via [Path.Cursor]. A path is single-phase: build it,
	// then iterate it, never both.
	ErrPathInUse = errors.New("path is under active iteration")

	// ErrPathEmpty is returned by [Path.Pop] when the path has no steps left.
	// The anchor node is not a step and cannot be removed.
	ErrPathEmpty = errors.New("path has no steps")

	// ErrStepMismatch is returned by [Path.Append] when the step's From node
	// does not equal the path's current endpoint.
	ErrStepMismatch = errors.New("step does not start at the path's endpoint")

	// ErrCursorExhausted is returned by [Cursor.Next] after the last step has
	// been consumed.
	ErrCursorExhausted = errors.New("cursor is exhausted")
)

// Metadata stores arbitrary key-value pairs attached to a graph. It is
// commonly used to carry a display name or provenance information through
// serialization and rendering. Metadata maps are never nil after New.
type Metadata map[string]any

// Unit is the constant label used for unlabeled edges. Graphs built from a
// plain successor list (see the build subpackage) use Unit as their label
// type, collapsing parallel edges between the same endpoints into one.
type Unit struct{}

// EdgeKey identifies the (from, to) pair of an edge table entry.
type EdgeKey[T comparable] struct {
	From T
	To   T
}

// Edge is a snapshot of every labeled connection between one ordered pair of
// nodes. Labels maps each label to its recorded weight; it is never empty
// for an edge returned by the graph, and it is a copy the caller may keep.
type Edge[T comparable, L comparable] struct {
	From   T
	To     T
	Labels map[L]float64
}

// Neighbor is one labeled adjacency of a node, as reported by
// [Graph.SuccessorsOf] and [Graph.PredecessorsOf].
type Neighbor[T comparable, L comparable] struct {
	Item   T
	Label  L
	Weight float64
}

// node is the internal per-item adjacency state. Adjacency is keyed by
// neighbor item, with the set of labels connecting the pair; weights live in
// the graph-wide edge table. seq records insertion order so analyses can
// process nodes deterministically for a given mutation history.
type node[T comparable, L comparable] struct {
	seq  uint64
	succ map[T]map[L]struct{}
	pred map[T]map[L]struct{}
}

// Graph is a mutable, directed, labeled multigraph.
//
// The zero value is not usable - use [New]. All methods are safe for
// concurrent use; see the package documentation for the locking model.
type Graph[T comparable, L comparable] struct {
	mu   sync.Mutex
	meta Metadata
	seq  uint64

	nodes   map[T]*node[T, L]
	edges   map[EdgeKey[T]]map[L]float64
	sources map[T]struct{}
	sinks   map[T]struct{}
}

// New creates an empty graph with optional graph-level metadata.
// The metadata parameter can be nil, in which case an empty map is created.
func New[T comparable, L comparable](meta Metadata) *Graph[T, L] {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph[T, L]{
		meta:    meta,
		nodes:   make(map[T]*node[T, L]),
		edges:   make(map[EdgeKey[T]]map[L]float64),
		sources: make(map[T]struct{}),
		sinks:   make(map[T]struct{}),
	}
}

// Meta returns the graph-level metadata map. The returned map is never nil.
// It is not covered by the graph lock; treat it as configuration set up
// before the graph is shared.
func (g *Graph[T, L]) Meta() Metadata { return g.meta }

// Add inserts item as a new node and reports whether a node was created.
// Adding an item that is already present is a no-op returning false: each
// item appears in a graph at most once. A new node has no edges and is
// therefore both a source and a sink.
func (g *Graph[T, L]) Add(item T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addLocked(item)
}

func (g *Graph[T, L]) addLocked(item T) bool {
	if _, ok := g.nodes[item]; ok {
		return false
	}
	g.seq++
	g.nodes[item] = &node[T, L]{
		seq:  g.seq,
		succ: make(map[T]map[L]struct{}),
		pred: make(map[T]map[L]struct{}),
	}
	g.sources[item] = struct{}{}
	g.sinks[item] = struct{}{}
	return true
}

// Remove deletes the node wrapping item and every edge touching it, in both
// directions, and reports whether a node was actually removed. Neighbors
// that lose their last incoming or outgoing edge re-enter the source or sink
// set. Removing an absent item is a no-op returning false.
func (g *Graph[T, L]) Remove(item T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.removeLocked(item)
}

func (g *Graph[T, L]) removeLocked(item T) bool {
	n, ok := g.nodes[item]
	if !ok {
		return false
	}

	for nb := range n.succ {
		m := g.nodes[nb]
		delete(m.pred, item)
		if len(m.pred) == 0 {
			g.sources[nb] = struct{}{}
		}
		delete(g.edges, EdgeKey[T]{From: item, To: nb})
	}
	for nb := range n.pred {
		m := g.nodes[nb]
		delete(m.succ, item)
		if len(m.succ) == 0 {
			g.sinks[nb] = struct{}{}
		}
		delete(g.edges, EdgeKey[T]{From: nb, To: item})
	}

	delete(g.nodes, item)
	delete(g.sources, item)
	delete(g.sinks, item)
	return true
}

// Link adds a directed edge from → to carrying the given label and weight.
// Both endpoints must already be nodes of this graph; otherwise Link fails
// with [ErrNotMember] and leaves the graph unchanged.
//
// Linking an existing (from, to, label) triple again only updates the
// recorded weight (last write wins); the edge table keeps exactly one entry
// per label. After a successful Link, from is no longer a sink and to is no
// longer a source. Self-loops are permitted; they make the graph cyclic.
func (g *Graph[T, L]) Link(from, to T, label L, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.linkLocked(from, to, label, weight)
}

func (g *Graph[T, L]) linkLocked(from, to T, label L, weight float64) error {
	nf, ok := g.nodes[from]
	if !ok {
		return ErrNotMember
	}
	nt, ok := g.nodes[to]
	if !ok {
		return ErrNotMember
	}

	if nf.succ[to] == nil {
		nf.succ[to] = make(map[L]struct{})
	}
	nf.succ[to][label] = struct{}{}
	if nt.pred[from] == nil {
		nt.pred[from] = make(map[L]struct{})
	}
	nt.pred[from][label] = struct{}{}

	delete(g.sinks, from)
	delete(g.sources, to)

	key := EdgeKey[T]{From: from, To: to}
	if g.edges[key] == nil {
		g.edges[key] = make(map[L]float64)
	}
	g.edges[key][label] = weight
	return nil
}

// Unlink removes the labeled edge from → to. Both endpoints must be nodes of
// this graph; otherwise Unlink fails with [ErrNotMember]. Unlinking a label
// that does not exist between the pair is a no-op.
//
// When the last label between the pair is removed, the edge table entry is
// dropped. A node left without successors re-enters the sink set; a node
// left without predecessors re-enters the source set.
func (g *Graph[T, L]) Unlink(from, to T, label L) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unlinkLocked(from, to, label)
}

func (g *Graph[T, L]) unlinkLocked(from, to T, label L) error {
	nf, ok := g.nodes[from]
	if !ok {
		return ErrNotMember
	}
	nt, ok := g.nodes[to]
	if !ok {
		return ErrNotMember
	}

	labels, ok := nf.succ[to]
	if !ok {
		return nil
	}
	if _, ok := labels[label]; !ok {
		return nil
	}

	delete(labels, label)
	if len(labels) == 0 {
		delete(nf.succ, to)
	}
	if pl := nt.pred[from]; pl != nil {
		delete(pl, label)
		if len(pl) == 0 {
			delete(nt.pred, from)
		}
	}

	key := EdgeKey[T]{From: from, To: to}
	if el := g.edges[key]; el != nil {
		delete(el, label)
		if len(el) == 0 {
			delete(g.edges, key)
		}
	}

	if len(nf.succ) == 0 {
		g.sinks[from] = struct{}{}
	}
	if len(nt.pred) == 0 {
		g.sources[to] = struct{}{}
	}
	return nil
}

// Clear removes every node and edge, leaving an empty graph.
// Graph-level metadata is retained.
func (g *Graph[T, L]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[T]*node[T, L])
	g.edges = make(map[EdgeKey[T]]map[L]float64)
	g.sources = make(map[T]struct{})
	g.sinks = make(map[T]struct{})
}

// RemoveAll removes every listed item, ignoring items that are not members.
func (g *Graph[T, L]) RemoveAll(items []T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, item := range items {
		g.removeLocked(item)
	}
}

// RetainAll removes every node whose item is not in the given list.
func (g *Graph[T, L]) RetainAll(items []T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	keep := make(map[T]struct{}, len(items))
	for _, item := range items {
		keep[item] = struct{}{}
	}
	var drop []T
	for item := range g.nodes {
		if _, ok := keep[item]; !ok {
			drop = append(drop, item)
		}
	}
	for _, item := range drop {
		g.removeLocked(item)
	}
}
