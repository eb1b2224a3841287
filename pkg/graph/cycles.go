package graph

// HasCycles reports whether the graph contains a directed cycle.
//
// The check peels sinks: a finite acyclic graph always has at least one
// sink, and removing a sink cannot change whether any remaining node will
// eventually become one. So the graph is acyclic exactly when repeatedly
// removing all current sinks empties it. Three cheap observations short-cut
// the peel at every level:
//
//   - an empty graph has no cycles
//   - a non-empty graph with no sinks has a cycle
//   - a graph where every node is a sink has no edges, hence no cycles
//
// Peeling is destructive, so it runs on a private clone taken while holding
// the lock; the lock is released before the peel starts. Each node is
// removed exactly once, so the total cost is O(nodes + edges).
func (g *Graph[T, L]) HasCycles() bool {
	g.mu.Lock()
	if verdict, decided := quickCycleCheck(len(g.nodes), len(g.sinks)); decided {
		g.mu.Unlock()
		return verdict
	}
	c := g.cloneLocked()
	g.mu.Unlock()

	return c.peelForCycles()
}

// peelForCycles destroys the receiver. It must only run on a private clone.
func (g *Graph[T, L]) peelForCycles() bool {
	for {
		if verdict, decided := quickCycleCheck(len(g.nodes), len(g.sinks)); decided {
			return verdict
		}
		batch := setToSlice(g.sinks)
		for _, item := range batch {
			g.removeLocked(item)
		}
	}
}

// quickCycleCheck applies the three early exits. decided is false when the
// peel has to continue.
func quickCycleCheck(nodes, sinks int) (cyclic, decided bool) {
	switch {
	case nodes == 0:
		return false, true
	case sinks == 0:
		return true, true
	case sinks == nodes:
		return false, true
	default:
		return false, false
	}
}
