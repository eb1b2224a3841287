package graph

// IsEmpty reports whether the graph has no nodes.
func (g *Graph[T, L]) IsEmpty() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes) == 0
}

// Len returns the number of nodes in the graph.
func (g *Graph[T, L]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// EdgeCount returns the number of labeled edges. Parallel labels between the
// same pair of nodes count individually.
func (g *Graph[T, L]) EdgeCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	count := 0
	for _, labels := range g.edges {
		count += len(labels)
	}
	return count
}

// Contains reports whether item is a node of this graph.
func (g *Graph[T, L]) Contains(item T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.nodes[item]
	return ok
}

// Items returns all items in the graph. The order is not guaranteed.
func (g *Graph[T, L]) Items() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	items := make([]T, 0, len(g.nodes))
	for item := range g.nodes {
		items = append(items, item)
	}
	return items
}

// Sources returns the items whose nodes have no incoming edges.
// The set is maintained eagerly, so this is a copy, not a scan.
// The order is not guaranteed.
func (g *Graph[T, L]) Sources() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return setToSlice(g.sources)
}

// Sinks returns the items whose nodes have no outgoing edges.
// The set is maintained eagerly, so this is a copy, not a scan.
// The order is not guaranteed.
func (g *Graph[T, L]) Sinks() []T {
	g.mu.Lock()
	defer g.mu.Unlock()
	return setToSlice(g.sinks)
}

// SuccessorsOf returns one entry per labeled outgoing edge of item: the
// neighbor, the label, and the recorded weight. Returns nil if item is not a
// member or has no successors. The order is not guaranteed.
func (g *Graph[T, L]) SuccessorsOf(item T) []Neighbor[T, L] {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[item]
	if !ok {
		return nil
	}
	var out []Neighbor[T, L]
	for nb, labels := range n.succ {
		weights := g.edges[EdgeKey[T]{From: item, To: nb}]
		for label := range labels {
			out = append(out, Neighbor[T, L]{Item: nb, Label: label, Weight: weights[label]})
		}
	}
	return out
}

// PredecessorsOf returns one entry per labeled incoming edge of item: the
// neighbor, the label, and the recorded weight. Returns nil if item is not a
// member or has no predecessors. The order is not guaranteed.
func (g *Graph[T, L]) PredecessorsOf(item T) []Neighbor[T, L] {
	g.mu.Lock()
	defer g.mu.Unlock()
	n, ok := g.nodes[item]
	if !ok {
		return nil
	}
	var out []Neighbor[T, L]
	for nb, labels := range n.pred {
		weights := g.edges[EdgeKey[T]{From: nb, To: item}]
		for label := range labels {
			out = append(out, Neighbor[T, L]{Item: nb, Label: label, Weight: weights[label]})
		}
	}
	return out
}

// Edge returns the edge table entry for the ordered pair (from, to).
// The Labels map is a copy the caller may keep. Returns [ErrEdgeNotFound]
// when no label connects the pair.
func (g *Graph[T, L]) Edge(from, to T) (Edge[T, L], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	labels, ok := g.edges[EdgeKey[T]{From: from, To: to}]
	if !ok {
		return Edge[T, L]{}, ErrEdgeNotFound
	}
	return Edge[T, L]{From: from, To: to, Labels: copyLabels(labels)}, nil
}

// Edges returns a snapshot of the whole edge table, one entry per connected
// (from, to) pair. The order is not guaranteed.
func (g *Graph[T, L]) Edges() []Edge[T, L] {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Edge[T, L], 0, len(g.edges))
	for key, labels := range g.edges {
		out = append(out, Edge[T, L]{From: key.From, To: key.To, Labels: copyLabels(labels)})
	}
	return out
}

// OutDegree returns the number of distinct successors of item, counting each
// neighbor once regardless of how many labels connect the pair.
// Returns 0 if item is not a member.
func (g *Graph[T, L]) OutDegree(item T) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.nodes[item]; ok {
		return len(n.succ)
	}
	return 0
}

// InDegree returns the number of distinct predecessors of item, counting
// each neighbor once regardless of how many labels connect the pair.
// Returns 0 if item is not a member.
func (g *Graph[T, L]) InDegree(item T) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.nodes[item]; ok {
		return len(n.pred)
	}
	return 0
}

func setToSlice[T comparable](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for item := range set {
		out = append(out, item)
	}
	return out
}

func copyLabels[L comparable](labels map[L]float64) map[L]float64 {
	out := make(map[L]float64, len(labels))
	for label, w := range labels {
		out[label] = w
	}
	return out
}
