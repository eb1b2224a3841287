package graph

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func sorted(items []string) []string {
	slices.Sort(items)
	return items
}

func TestAdd(t *testing.T) {
	g := New[string, string](nil)

	if !g.Add("a") {
		t.Fatal("Add(a) = false, want true")
	}
	if g.Add("a") {
		t.Error("second Add(a) = true, want false")
	}
	if got := g.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}

	// A fresh node is both a source and a sink.
	if got := g.Sources(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Sources() = %v, want [a]", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"a"}) {
		t.Errorf("Sinks() = %v, want [a]", got)
	}
}

func TestLink(t *testing.T) {
	t.Run("MovesBoundarySets", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")

		if err := g.Link("a", "b", "x", 1); err != nil {
			t.Fatalf("Link: %v", err)
		}

		if got := g.Sources(); !slices.Equal(sorted(got), []string{"a"}) {
			t.Errorf("Sources() = %v, want [a]", got)
		}
		if got := g.Sinks(); !slices.Equal(sorted(got), []string{"b"}) {
			t.Errorf("Sinks() = %v, want [b]", got)
		}
	})

	t.Run("UnknownEndpoint", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")

		if err := g.Link("a", "ghost", "x", 1); !errors.Is(err, ErrNotMember) {
			t.Errorf("Link(a, ghost) = %v, want ErrNotMember", err)
		}
		if err := g.Link("ghost", "a", "x", 1); !errors.Is(err, ErrNotMember) {
			t.Errorf("Link(ghost, a) = %v, want ErrNotMember", err)
		}
		// Failed links must not disturb boundary state.
		if got := g.Sinks(); !slices.Equal(got, []string{"a"}) {
			t.Errorf("Sinks() after failed Link = %v, want [a]", got)
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")

		_ = g.Link("a", "b", "x", 1)
		_ = g.Link("a", "b", "x", 2)

		e, err := g.Edge("a", "b")
		if err != nil {
			t.Fatalf("Edge: %v", err)
		}
		if len(e.Labels) != 1 {
			t.Fatalf("labels = %v, want exactly one", e.Labels)
		}
		if w := e.Labels["x"]; w != 2 {
			t.Errorf("weight = %v, want 2 (last write wins)", w)
		}
		if got := g.EdgeCount(); got != 1 {
			t.Errorf("EdgeCount() = %d, want 1", got)
		}
	})

	t.Run("ParallelLabels", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")

		_ = g.Link("a", "b", "x", 1)
		_ = g.Link("a", "b", "y", 2)

		e, err := g.Edge("a", "b")
		if err != nil {
			t.Fatalf("Edge: %v", err)
		}
		if len(e.Labels) != 2 {
			t.Errorf("labels = %v, want two", e.Labels)
		}
		if got := g.EdgeCount(); got != 2 {
			t.Errorf("EdgeCount() = %d, want 2", got)
		}
		if got := g.OutDegree("a"); got != 1 {
			t.Errorf("OutDegree(a) = %d, want 1 (one distinct neighbor)", got)
		}
	})
}

func TestUnlink(t *testing.T) {
	t.Run("RestoresBoundarySets", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")
		_ = g.Link("a", "b", "x", 1)

		if err := g.Unlink("a", "b", "x"); err != nil {
			t.Fatalf("Unlink: %v", err)
		}

		// a lost its only outgoing edge, b its only incoming edge.
		if got := g.Sinks(); !slices.Contains(got, "a") {
			t.Errorf("Sinks() = %v, want to contain a", got)
		}
		if got := g.Sources(); !slices.Contains(got, "b") {
			t.Errorf("Sources() = %v, want to contain b", got)
		}
		if _, err := g.Edge("a", "b"); !errors.Is(err, ErrEdgeNotFound) {
			t.Errorf("Edge after Unlink = %v, want ErrEdgeNotFound", err)
		}
	})

	t.Run("KeepsPairWhileLabelsRemain", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")
		_ = g.Link("a", "b", "x", 1)
		_ = g.Link("a", "b", "y", 2)

		_ = g.Unlink("a", "b", "x")

		e, err := g.Edge("a", "b")
		if err != nil {
			t.Fatalf("Edge: %v", err)
		}
		if len(e.Labels) != 1 {
			t.Errorf("labels = %v, want [y] only", e.Labels)
		}
		if got := g.Sinks(); slices.Contains(got, "a") {
			t.Errorf("a must not be a sink while a→b remains")
		}
	})

	t.Run("MissingEdgeIsNoop", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")
		g.Add("b")

		if err := g.Unlink("a", "b", "x"); err != nil {
			t.Errorf("Unlink of absent edge = %v, want nil", err)
		}
	})

	t.Run("UnknownEndpoint", func(t *testing.T) {
		g := New[string, string](nil)
		g.Add("a")

		if err := g.Unlink("a", "ghost", "x"); !errors.Is(err, ErrNotMember) {
			t.Errorf("Unlink(a, ghost) = %v, want ErrNotMember", err)
		}
	})
}

func TestRemove(t *testing.T) {
	t.Run("CutsAllTouchingEdges", func(t *testing.T) {
		g := New[string, string](nil)
		for _, it := range []string{"a", "b", "c"} {
			g.Add(it)
		}
		_ = g.Link("a", "b", "x", 1)
		_ = g.Link("b", "c", "x", 1)

		if !g.Remove("b") {
			t.Fatal("Remove(b) = false, want true")
		}

		if g.Contains("b") {
			t.Error("b still a member after Remove")
		}
		// a lost its successor, c its predecessor.
		if got := g.Sinks(); !slices.Contains(got, "a") {
			t.Errorf("Sinks() = %v, want to contain a", got)
		}
		if got := g.Sources(); !slices.Contains(got, "c") {
			t.Errorf("Sources() = %v, want to contain c", got)
		}
		if got := g.EdgeCount(); got != 0 {
			t.Errorf("EdgeCount() = %d, want 0", got)
		}
	})

	t.Run("AbsentIsNoop", func(t *testing.T) {
		g := New[string, string](nil)
		if g.Remove("ghost") {
			t.Error("Remove(ghost) = true, want false")
		}
	})
}

func TestClear(t *testing.T) {
	g := New[string, string](Metadata{"name": "t"})
	g.Add("a")
	g.Add("b")
	_ = g.Link("a", "b", "x", 1)

	g.Clear()

	if !g.IsEmpty() {
		t.Error("graph not empty after Clear")
	}
	if got := len(g.Sources()); got != 0 {
		t.Errorf("Sources() has %d entries after Clear", got)
	}
	if g.Meta()["name"] != "t" {
		t.Error("Clear dropped graph metadata")
	}
}

func TestRetainAll(t *testing.T) {
	g := New[string, string](nil)
	for _, it := range []string{"a", "b", "c", "d"} {
		g.Add(it)
	}
	_ = g.Link("a", "b", "x", 1)
	_ = g.Link("c", "d", "x", 1)

	g.RetainAll([]string{"a", "b"})

	if got := sorted(g.Items()); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Items() = %v, want [a b]", got)
	}
	if _, err := g.Edge("a", "b"); err != nil {
		t.Errorf("edge a→b lost by RetainAll: %v", err)
	}
}

func TestSuccessorsOf(t *testing.T) {
	g := New[string, string](nil)
	for _, it := range []string{"a", "b", "c"} {
		g.Add(it)
	}
	_ = g.Link("a", "b", "x", 1.5)
	_ = g.Link("a", "c", "y", 2.5)

	succ := g.SuccessorsOf("a")
	if len(succ) != 2 {
		t.Fatalf("SuccessorsOf(a) has %d entries, want 2", len(succ))
	}
	for _, nb := range succ {
		switch nb.Item {
		case "b":
			if nb.Label != "x" || nb.Weight != 1.5 {
				t.Errorf("neighbor b = %+v, want label x weight 1.5", nb)
			}
		case "c":
			if nb.Label != "y" || nb.Weight != 2.5 {
				t.Errorf("neighbor c = %+v, want label y weight 2.5", nb)
			}
		default:
			t.Errorf("unexpected neighbor %+v", nb)
		}
	}

	if got := g.SuccessorsOf("ghost"); got != nil {
		t.Errorf("SuccessorsOf(ghost) = %v, want nil", got)
	}

	pred := g.PredecessorsOf("b")
	if len(pred) != 1 || pred[0].Item != "a" || pred[0].Label != "x" {
		t.Errorf("PredecessorsOf(b) = %+v, want [{a x 1.5}]", pred)
	}
}

// TestBoundaryInvariant drives a randomized mutation sequence and verifies
// after every step that the tracked source and sink sets match a full scan
// of the adjacency state.
func TestBoundaryInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	items := []string{"a", "b", "c", "d", "e", "f"}
	labels := []string{"x", "y"}
	g := New[string, string](nil)

	check := func(step int) {
		t.Helper()
		var wantSources, wantSinks []string
		for _, it := range items {
			if !g.Contains(it) {
				continue
			}
			if g.InDegree(it) == 0 {
				wantSources = append(wantSources, it)
			}
			if g.OutDegree(it) == 0 {
				wantSinks = append(wantSinks, it)
			}
		}
		slices.Sort(wantSources)
		slices.Sort(wantSinks)
		if got := sorted(g.Sources()); !slices.Equal(got, wantSources) {
			t.Fatalf("step %d: Sources() = %v, want %v", step, got, wantSources)
		}
		if got := sorted(g.Sinks()); !slices.Equal(got, wantSinks) {
			t.Fatalf("step %d: Sinks() = %v, want %v", step, got, wantSinks)
		}
	}

	for step := 0; step < 2000; step++ {
		from := items[rng.Intn(len(items))]
		to := items[rng.Intn(len(items))]
		label := labels[rng.Intn(len(labels))]
		switch rng.Intn(5) {
		case 0:
			g.Add(from)
		case 1:
			g.Remove(from)
		case 2, 3:
			_ = g.Link(from, to, label, float64(step))
		case 4:
			_ = g.Unlink(from, to, label)
		}
		check(step)
	}
}
