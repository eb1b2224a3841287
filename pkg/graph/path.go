package graph

// Step is one labeled, weighted edge traversal in a [Path].
type Step[T comparable, L comparable] struct {
	From   T
	To     T
	Label  L
	Weight float64
}

// Path is an ordered sequence of steps sharing a common anchor node, the
// path's start. The anchor is not itself a step: a zero-length path is
// valid and ends at its anchor.
//
// A path is single-phase. Build it with [Path.Append] and [Path.Pop], then
// iterate it with [Path.Cursor]. Once a cursor has been obtained the path
// rejects further mutation with [ErrPathInUse].
type Path[T comparable, L comparable] struct {
	anchor T
	steps  []Step[T, L]
	inUse  bool
}

// NewPath creates an empty path anchored at the given node.
func NewPath[T comparable, L comparable](anchor T) *Path[T, L] {
	return &Path[T, L]{anchor: anchor}
}

// Append extends the path by one step. The step must start where the path
// currently ends; otherwise Append fails with [ErrStepMismatch]. Fails with
// [ErrPathInUse] once a cursor has been obtained.
func (p *Path[T, L]) Append(s Step[T, L]) error {
	if p.inUse {
		return ErrPathInUse
	}
	if s.From != p.Last() {
		return ErrStepMismatch
	}
	p.steps = append(p.steps, s)
	return nil
}

// Pop removes the final step. Fails with [ErrPathEmpty] on a zero-length
// path (the anchor cannot be removed) and with [ErrPathInUse] once a cursor
// has been obtained.
func (p *Path[T, L]) Pop() error {
	if p.inUse {
		return ErrPathInUse
	}
	if len(p.steps) == 0 {
		return ErrPathEmpty
	}
	p.steps = p.steps[:len(p.steps)-1]
	return nil
}

// Len returns the number of steps. The anchor does not count.
func (p *Path[T, L]) Len() int { return len(p.steps) }

// First returns the anchor node.
func (p *Path[T, L]) First() T { return p.anchor }

// Last returns the current endpoint: the anchor for a zero-length path,
// otherwise the destination of the final step.
func (p *Path[T, L]) Last() T {
	if len(p.steps) == 0 {
		return p.anchor
	}
	return p.steps[len(p.steps)-1].To
}

// Nodes lists every node on the path in order, starting with the anchor.
func (p *Path[T, L]) Nodes() []T {
	nodes := make([]T, 0, len(p.steps)+1)
	nodes = append(nodes, p.anchor)
	for _, s := range p.steps {
		nodes = append(nodes, s.To)
	}
	return nodes
}

// Steps returns a copy of the path's steps. The copy is detached: mutating
// it does not affect the path, and taking it does not mark the path in use.
func (p *Path[T, L]) Steps() []Step[T, L] {
	out := make([]Step[T, L], len(p.steps))
	copy(out, p.steps)
	return out
}

// Weight returns the sum of the step weights.
func (p *Path[T, L]) Weight() float64 {
	var w float64
	for _, s := range p.steps {
		w += s.Weight
	}
	return w
}

// Clone returns an independent copy of the path. The copy is not in use
// even when the original is.
func (p *Path[T, L]) Clone() *Path[T, L] {
	return &Path[T, L]{anchor: p.anchor, steps: p.Steps()}
}

// Cursor starts iterating the path and locks it against further mutation.
// Obtaining a second cursor restarts iteration from the first step.
func (p *Path[T, L]) Cursor() *Cursor[T, L] {
	p.inUse = true
	return &Cursor[T, L]{path: p}
}

// Cursor walks a path's steps in order.
type Cursor[T comparable, L comparable] struct {
	path *Path[T, L]
	next int
}

// HasNext reports whether another step remains.
func (c *Cursor[T, L]) HasNext() bool { return c.next < len(c.path.steps) }

// Next returns the next step. Fails with [ErrCursorExhausted] after the
// final step has been consumed.
func (c *Cursor[T, L]) Next() (Step[T, L], error) {
	if c.next >= len(c.path.steps) {
		return Step[T, L]{}, ErrCursorExhausted
	}
	s := c.path.steps[c.next]
	c.next++
	return s, nil
}
