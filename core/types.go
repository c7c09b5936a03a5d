package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidSize indicates Create was called with n < 1.
	ErrInvalidSize = errors.New("core: graph size must be >= 1")

	// ErrOutOfRange indicates a vertex index outside [0,n).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be >= 1")

	// ErrDuplicateEdge indicates a second edge between an already-connected
	// pair, or a second self-loop on the same vertex.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Incidence is one directed half of a stored undirected edge: the
// vertex lives implicitly in the owning Graph.adj slice index, To
// is the neighbor reached by this incidence, and Weight is the shared
// weight of the undirected edge.
type Incidence struct {
	To     int
	Weight int
}

// Graph is an undirected, integer-weighted simple graph over vertices
// 0..n-1. See the package doc for the storage rationale and invariants.
//
// A Graph is owned by exactly one caller at a time; it carries no
// internal locking.
type Graph struct {
	n    int
	adj  [][]Incidence
	size int // number of undirected edges currently stored
}

// Create returns an empty Graph with n vertices and no edges.
// Requires n >= 1.
func Create(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	return &Graph{
		n:   n,
		adj: make([][]Incidence, n),
	}, nil
}

// Destroy releases g's storage. It is idempotent: calling Destroy on an
// already-destroyed (nil-adjacency) Graph, or on a nil *Graph, is a no-op.
func (g *Graph) Destroy() {
	if g == nil {
		return
	}
	g.adj = nil
	g.n = 0
	g.size = 0
}

// N returns the number of vertices in g.
func (g *Graph) N() int { return g.n }

// EdgeCount returns the number of undirected edges stored in g
// (self-loops count once).
func (g *Graph) EdgeCount() int { return g.size }
