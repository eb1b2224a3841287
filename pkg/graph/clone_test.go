package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestClone(t *testing.T) {
	g := New[string, string](Metadata{"name": "orig"})
	for _, it := range []string{"a", "b", "c"} {
		g.Add(it)
	}
	_ = g.Link("a", "b", "x", 1)
	_ = g.Link("b", "c", "y", 2)

	c := g.Clone()

	t.Run("QueriesMatch", func(t *testing.T) {
		if got, want := c.Len(), g.Len(); got != want {
			t.Errorf("Len() = %d, want %d", got, want)
		}
		if got, want := c.EdgeCount(), g.EdgeCount(); got != want {
			t.Errorf("EdgeCount() = %d, want %d", got, want)
		}
		if got, want := sorted(c.Sources()), sorted(g.Sources()); !slices.Equal(got, want) {
			t.Errorf("Sources() = %v, want %v", got, want)
		}
		if got, want := sorted(c.Sinks()), sorted(g.Sinks()); !slices.Equal(got, want) {
			t.Errorf("Sinks() = %v, want %v", got, want)
		}
		e, err := c.Edge("a", "b")
		if err != nil {
			t.Fatalf("Edge(a, b): %v", err)
		}
		if e.Labels["x"] != 1 {
			t.Errorf("clone edge weight = %v, want 1", e.Labels["x"])
		}
	})

	t.Run("Independent", func(t *testing.T) {
		c.Remove("b")
		_ = c.Link("a", "c", "z", 3)

		if !g.Contains("b") {
			t.Error("mutating clone removed node from original")
		}
		if _, err := g.Edge("a", "c"); !errors.Is(err, ErrEdgeNotFound) {
			t.Error("mutating clone added edge to original")
		}
		if got := g.EdgeCount(); got != 2 {
			t.Errorf("original EdgeCount() = %d, want 2", got)
		}
	})
}
