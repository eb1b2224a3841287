package graph

// View is the read-only query surface of a graph. Consumers that only
// inspect a graph - renderers, serializers, iteration adapters - should
// accept a View instead of a *Graph so they cannot mutate it. Subgraph and
// analysis results are fresh graphs the caller owns and may mutate freely.
type View[T comparable, L comparable] interface {
	IsEmpty() bool
	Len() int
	EdgeCount() int
	Contains(item T) bool
	Items() []T
	Sources() []T
	Sinks() []T
	SuccessorsOf(item T) []Neighbor[T, L]
	PredecessorsOf(item T) []Neighbor[T, L]
	Edge(from, to T) (Edge[T, L], error)
	Edges() []Edge[T, L]
	Meta() Metadata
	HasCycles() bool
	SubgraphFrom(item T) (*Graph[T, L], error)
	SubgraphTo(item T) (*Graph[T, L], error)
	Split() []*Graph[T, L]
	Paths(from, to T) ([]*Path[T, L], error)
	Clone() *Graph[T, L]
}

var _ View[int, int] = (*Graph[int, int])(nil)
