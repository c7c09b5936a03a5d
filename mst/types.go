package mst

import "errors"

// ErrEmptyGraph indicates Compute was called on a graph with n < 1; this
// cannot occur through core.Create, which rejects it, but is kept as a
// defensive sentinel for direct callers.
var ErrEmptyGraph = errors.New("mst: graph has no vertices")

// Edge is one emitted spanning-tree edge (u,v,w), u being the parent of
// v in the tree grown from vertex 0.
type Edge struct {
	U, V, W int
}

// Outcome is the result of a minimum-spanning-tree computation.
type Outcome struct {
	// Connected reports whether every vertex could be reached, i.e.
	// whether a spanning tree exists.
	Connected bool

	// Edges holds the n-1 spanning-tree edges when Connected is true.
	Edges []Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int
}
