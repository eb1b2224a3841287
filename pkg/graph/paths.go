package graph

// Paths enumerates every simple directed path from one node to another.
//
// Both endpoints must be members of this graph, otherwise Paths fails with
// [ErrNotMember]. The graph must be acyclic: the work-list expansion below
// only terminates without cycles, so a positive cycle check fails the call
// with [ErrCyclicGraph] before any searching happens. When from == to the
// result is a single zero-length path. When no route exists the result is
// empty. The order of the returned paths is not guaranteed.
//
// The search keeps a list of partial paths seeded with the zero-length path
// at from. Each round, a partial path ending at the target is kept as a hit,
// a partial path stranded on a non-target sink is dropped, and every other
// partial path is replaced by one extension per labeled outgoing edge of its
// endpoint. The search is done when a round produces no extensions.
func (g *Graph[T, L]) Paths(from, to T) ([]*Path[T, L], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return nil, ErrNotMember
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, ErrNotMember
	}

	if cyclic, decided := quickCycleCheck(len(g.nodes), len(g.sinks)); !decided || cyclic {
		if cyclic || g.cloneLocked().peelForCycles() {
			return nil, ErrCyclicGraph
		}
	}

	if from == to {
		return []*Path[T, L]{NewPath[T, L](from)}, nil
	}

	list := []*Path[T, L]{NewPath[T, L](from)}
	for {
		next := make([]*Path[T, L], 0, len(list))
		expanded := false
		for _, p := range list {
			end := p.Last()
			switch {
			case end == to:
				next = append(next, p)
			case len(g.nodes[end].succ) == 0:
				// Stranded on a sink that is not the target.
			default:
				expanded = true
				for nb, labels := range g.nodes[end].succ {
					weights := g.edges[EdgeKey[T]{From: end, To: nb}]
					for label := range labels {
						np := p.Clone()
						np.steps = append(np.steps, Step[T, L]{
							From:   end,
							To:     nb,
							Label:  label,
							Weight: weights[label],
						})
						next = append(next, np)
					}
				}
			}
		}
		list = next
		if !expanded {
			return list, nil
		}
	}
}
