package graph

import "slices"

// Split partitions the graph into its clowds: maximal groups of nodes
// reachable from a common set of sources. Two sources belong to the same
// clowd when their forward-reachable closures intersect.
//
// Returns nil for an empty graph. A graph with fewer than two sources is a
// single clowd and is returned as one clone. Otherwise each clowd becomes an
// induced subgraph containing its merged closure, with edges restricted to
// pairs inside the group.
//
// Candidate groups are merged in node insertion order, so the partition is
// reproducible for a given mutation history. The work runs on a clone taken
// under the lock and released before the closure computation starts.
func (g *Graph[T, L]) Split() []*Graph[T, L] {
	g.mu.Lock()
	if len(g.nodes) == 0 {
		g.mu.Unlock()
		return nil
	}
	c := g.cloneLocked()
	g.mu.Unlock()

	if len(c.sources) < 2 {
		return []*Graph[T, L]{c}
	}

	// One candidate group per source, in insertion order.
	sources := setToSlice(c.sources)
	slices.SortFunc(sources, func(a, b T) int {
		return int(c.nodes[a].seq) - int(c.nodes[b].seq)
	})

	groups := make([]*clowd[T], len(sources))
	for i, src := range sources {
		groups[i] = &clowd[T]{
			sources: map[T]struct{}{src: {}},
			closure: c.forwardClosure(src),
		}
	}

	// Merge any two groups whose closures intersect until all remaining
	// groups are pairwise disjoint. Merging group j into group i can only
	// grow i's closure, so a single left-to-right sweep per i suffices.
	for i := 0; i < len(groups)-1; i++ {
		if groups[i] == nil {
			continue
		}
		for j := i + 1; j < len(groups); j++ {
			if groups[j] == nil {
				continue
			}
			if !intersects(groups[i].closure, groups[j].closure) {
				continue
			}
			for s := range groups[j].sources {
				groups[i].sources[s] = struct{}{}
			}
			for n := range groups[j].closure {
				groups[i].closure[n] = struct{}{}
			}
			groups[j] = nil
			// Rescan: the grown closure may now touch groups already passed.
			j = i
		}
	}

	var out []*Graph[T, L]
	for _, grp := range groups {
		if grp == nil {
			continue
		}
		for s := range grp.sources {
			grp.closure[s] = struct{}{}
		}
		out = append(out, c.induced(grp.closure))
	}
	return out
}

// clowd is a candidate group during Split: the sources seeding it and the
// union of their forward-reachable closures.
type clowd[T comparable] struct {
	sources map[T]struct{}
	closure map[T]struct{}
}

// forwardClosure returns item plus every node reachable from it by
// following successor edges transitively. Callers must hold the lock or own
// the graph privately.
func (g *Graph[T, L]) forwardClosure(item T) map[T]struct{} {
	seen := map[T]struct{}{item: {}}
	frontier := []T{item}
	for len(frontier) > 0 {
		cur := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for nb := range g.nodes[cur].succ {
			if _, ok := seen[nb]; ok {
				continue
			}
			seen[nb] = struct{}{}
			frontier = append(frontier, nb)
		}
	}
	return seen
}

func intersects[T comparable](a, b map[T]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for item := range a {
		if _, ok := b[item]; ok {
			return true
		}
	}
	return false
}
