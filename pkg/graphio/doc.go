// Package graphio provides JSON import and export for string-keyed graphs.
//
// # JSON Format
//
// The format has two top-level arrays plus an optional metadata object:
//
//	{
//	  "meta": {"name": "services"},
//	  "nodes": [
//	    {"id": "gateway"},
//	    {"id": "orders"}
//	  ],
//	  "edges": [
//	    {"from": "gateway", "to": "orders", "label": "http", "weight": 1}
//	  ]
//	}
//
// Each node must have a unique "id". Each edge must reference known node
// IDs; "label" defaults to the empty string and "weight" to zero. Parallel
// edges between the same pair are expressed as separate edge entries with
// distinct labels.
//
// # Import
//
// Use [ReadFile] to read a graph from a file path, or [Read] to read from
// any io.Reader:
//
//	g, err := graphio.ReadFile("services.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions validate the structure and reject duplicate node IDs and
// edges that reference unknown nodes. Errors are wrapped with context about
// which node or edge caused the problem. Cycles are allowed: the mutable
// engine accepts cyclic graphs, and analyses that require acyclicity report
// that themselves.
//
// # Export
//
// Use [WriteFile] to write a graph to a file, or [Write] to write to any
// io.Writer. Output is deterministic: nodes are sorted by ID and edges by
// (from, to, label), so exporting the same graph twice yields identical
// bytes. Import then export round-trips a graph exactly.
package graphio
