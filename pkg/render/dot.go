// Package render converts graphs to Graphviz DOT and rasterized formats.
//
// [ToDOT] produces a deterministic DOT document with sources and sinks
// visually distinguished. [RenderSVG] and [RenderPNG] rasterize DOT via the
// embedded Graphviz engine, so no external binaries are required.
package render

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/clowdgraph/clowd/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// ShowWeights appends each edge's weight to its label.
	ShowWeights bool

	// Horizontal lays the graph out left to right instead of top to bottom.
	Horizontal bool
}

// ToDOT converts a graph to Graphviz DOT format. Nodes and edges are
// emitted in sorted order, so the same graph always yields the same DOT.
//
// Sources are drawn with a green tint and sinks with a blue one; isolated
// nodes (both source and sink) are drawn dashed.
func ToDOT(g *graph.Graph[string, string], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.Horizontal {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	sources := toSet(g.Sources())
	sinks := toSet(g.Sinks())

	items := g.Items()
	slices.Sort(items)
	for _, id := range items {
		attrs := nodeAttrs(id, sources[id], sinks[id])
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	edges := g.Edges()
	slices.SortFunc(edges, func(a, b graph.Edge[string, string]) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
	for _, e := range edges {
		for _, label := range slices.Sorted(maps.Keys(e.Labels)) {
			text := label
			if opts.ShowWeights {
				text = fmt.Sprintf("%s (%g)", label, e.Labels[label])
			}
			if text == "" {
				fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			} else {
				fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, text)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}

func nodeAttrs(id string, source, sink bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", id)}
	switch {
	case source && sink:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case source:
		attrs = append(attrs, "fillcolor=\"#d5f5d5\"")
	case sink:
		attrs = append(attrs, "fillcolor=\"#d5e5f5\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG, nil)
}

func renderFormat(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	out := buf.Bytes()
	if post != nil {
		out = post(out)
	}
	return out, nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
