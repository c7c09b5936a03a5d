package clique

import "errors"

// ErrVertexOutOfRange is returned by IsClique when a candidate vertex
// falls outside [0, n).
var ErrVertexOutOfRange = errors.New("clique: vertex out of range")

// MaxOutcome is the result of a maximum-clique search.
type MaxOutcome struct {
	Vertices []int
}

// Size returns the number of vertices in the clique.
func (o MaxOutcome) Size() int { return len(o.Vertices) }

// CountOutcome is the result of a full clique count, bucketed by size.
// BySize has n+1 entries (nil for an empty graph); BySize[k] counts
// cliques of size k, entries above Largest are 0, and BySize[0] is 0
// and unused, kept so that BySize[k] reads naturally for clique size k.
type CountOutcome struct {
	BySize  []int
	Total   int
	Largest int
}
