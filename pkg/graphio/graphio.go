package graphio

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/clowdgraph/clowd/pkg/graph"
)

type document struct {
	Meta  graph.Metadata `json:"meta,omitempty"`
	Nodes []node         `json:"nodes"`
	Edges []edge         `json:"edges"`
}

type node struct {
	ID string `json:"id"`
}

type edge struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// Write encodes a graph as JSON and writes it to w. Nodes are sorted by ID
// and edges by (from, to, label), so output is deterministic. The result can
// be re-imported with [Read] for round-trip processing.
func Write(g *graph.Graph[string, string], w io.Writer) error {
	doc := document{
		Meta:  g.Meta(),
		Nodes: make([]node, 0, g.Len()),
	}

	items := g.Items()
	slices.Sort(items)
	for _, id := range items {
		doc.Nodes = append(doc.Nodes, node{ID: id})
	}

	for _, e := range g.Edges() {
		for label, weight := range e.Labels {
			doc.Edges = append(doc.Edges, edge{From: e.From, To: e.To, Label: label, Weight: weight})
		}
	}
	slices.SortFunc(doc.Edges, func(a, b edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		if c := cmp.Compare(a.To, b.To); c != 0 {
			return c
		}
		return cmp.Compare(a.Label, b.Label)
	})
	if doc.Edges == nil {
		doc.Edges = []edge{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal encodes a graph into JSON bytes using the same format as [Write].
func Marshal(g *graph.Graph[string, string]) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes a graph to a JSON file at path. This is a convenience
// wrapper around [Write] for file-based output.
func WriteFile(g *graph.Graph[string, string], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// Read decodes a JSON graph from r.
//
// Read returns an error if:
//   - The JSON is malformed
//   - A node has a duplicate ID
//   - An edge references an unknown node ID
//
// Errors are wrapped with context describing which node or edge caused the
// problem. The returned graph is independent of r and can be modified freely
// after Read returns. Read does not close r.
func Read(r io.Reader) (*graph.Graph[string, string], error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New[string, string](doc.Meta)
	for _, n := range doc.Nodes {
		if !g.Add(n.ID) {
			return nil, fmt.Errorf("node %s: duplicate id", n.ID)
		}
	}
	for _, e := range doc.Edges {
		if err := g.Link(e.From, e.To, e.Label, e.Weight); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// Unmarshal decodes JSON bytes into a graph using the same format as [Read].
func Unmarshal(data []byte) (*graph.Graph[string, string], error) {
	return Read(bytes.NewReader(data))
}

// ReadFile reads a JSON file at path and returns the decoded graph. The
// error wraps the underlying cause with the file path for context.
func ReadFile(path string) (*graph.Graph[string, string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}
