package graph

// Clone returns a structurally independent copy of the graph: fresh node
// records wrapping the same items, with adjacency, the edge table and the
// boundary sets reproduced exactly. Mutating the clone never affects the
// original. Cost is O(nodes + edges).
//
// Clone is also the substrate for the destructive analyses: HasCycles peels
// a private clone instead of the live graph.
func (g *Graph[T, L]) Clone() *Graph[T, L] {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cloneLocked()
}

func (g *Graph[T, L]) cloneLocked() *Graph[T, L] {
	c := &Graph[T, L]{
		meta:    make(Metadata, len(g.meta)),
		seq:     g.seq,
		nodes:   make(map[T]*node[T, L], len(g.nodes)),
		edges:   make(map[EdgeKey[T]]map[L]float64, len(g.edges)),
		sources: make(map[T]struct{}, len(g.sources)),
		sinks:   make(map[T]struct{}, len(g.sinks)),
	}
	for k, v := range g.meta {
		c.meta[k] = v
	}
	for item, n := range g.nodes {
		c.nodes[item] = &node[T, L]{
			seq:  n.seq,
			succ: copyAdjacency(n.succ),
			pred: copyAdjacency(n.pred),
		}
	}
	for key, labels := range g.edges {
		c.edges[key] = copyLabels(labels)
	}
	for item := range g.sources {
		c.sources[item] = struct{}{}
	}
	for item := range g.sinks {
		c.sinks[item] = struct{}{}
	}
	return c
}

// induced returns a new graph containing exactly the nodes in keep and the
// edges whose endpoints are both kept. Node insertion order follows the
// original sequence numbers so derived graphs analyze deterministically.
// Callers must hold the lock or own the graph privately.
func (g *Graph[T, L]) induced(keep map[T]struct{}) *Graph[T, L] {
	sub := New[T, L](nil)
	for k, v := range g.meta {
		sub.meta[k] = v
	}
	for item := range keep {
		if n, ok := g.nodes[item]; ok {
			sub.addLocked(item)
			sub.nodes[item].seq = n.seq
			if n.seq > sub.seq {
				sub.seq = n.seq
			}
		}
	}
	for key, labels := range g.edges {
		if _, ok := sub.nodes[key.From]; !ok {
			continue
		}
		if _, ok := sub.nodes[key.To]; !ok {
			continue
		}
		for label, w := range labels {
			_ = sub.linkLocked(key.From, key.To, label, w)
		}
	}
	return sub
}

func copyAdjacency[T comparable, L comparable](adj map[T]map[L]struct{}) map[T]map[L]struct{} {
	out := make(map[T]map[L]struct{}, len(adj))
	for nb, labels := range adj {
		ls := make(map[L]struct{}, len(labels))
		for label := range labels {
			ls[label] = struct{}{}
		}
		out[nb] = ls
	}
	return out
}
