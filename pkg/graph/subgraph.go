package graph

// SubgraphFrom returns the induced subgraph of every node reachable from
// item by following successor edges, including item itself. Fails with
// [ErrNotMember] if item is not a node of this graph.
func (g *Graph[T, L]) SubgraphFrom(item T) (*Graph[T, L], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[item]; !ok {
		return nil, ErrNotMember
	}
	return g.induced(g.forwardClosure(item)), nil
}

// SubgraphTo returns the induced subgraph of every node that can reach item
// by following successor edges, including item itself. Fails with
// [ErrNotMember] if item is not a node of this graph.
func (g *Graph[T, L]) SubgraphTo(item T) (*Graph[T, L], error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[item]; !ok {
		return nil, ErrNotMember
	}
	return g.induced(g.backwardClosure(item)), nil
}

// backwardClosure mirrors forwardClosure over predecessor edges.
func (g *Graph[T, L]) backwardClosure(item T) map[T]struct{} {
	seen := map[T]struct{}{item: {}}
	frontier := []T{item}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for nb := range g.nodes[cur].pred {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			frontier = append(frontier, nb)
		}
	}
	return seen
}
