package wire

import "errors"

// MaxVertices is the upper bound on vertex count accepted by either
// wire protocol.
const MaxVertices = 50

var (
	// ErrShortRead is returned when a frame ends before its declared
	// length has been consumed.
	ErrShortRead = errors.New("wire: short read")

	// ErrVertexCount is returned when vertices is outside (0, MaxVertices].
	ErrVertexCount = errors.New("wire: vertex count out of range")

	// ErrEdgeCount is returned when the declared edge count is negative
	// or exceeds n*n.
	ErrEdgeCount = errors.New("wire: edge count out of range")

	// ErrVertexOutOfRange is returned when an edge endpoint falls
	// outside [0, vertices).
	ErrVertexOutOfRange = errors.New("wire: edge endpoint out of range")

	// ErrBadWeight is returned when an edge weight is not positive.
	ErrBadWeight = errors.New("wire: edge weight must be positive")

	// ErrBadAlgorithmID is returned when a single-shot request names an
	// id outside 1..5.
	ErrBadAlgorithmID = errors.New("wire: algorithm id out of range")
)

// PipelineRequest is the decoded form of the pipeline front-end's
// request: a header plus an edge list, as specified by the fixed
// 3-integer header followed by a length-prefixed triple payload.
type PipelineRequest struct {
	Seed      int32
	MaxWeight int32
	Vertices  int32
	Edges     []EdgeTriple
}

// EdgeTriple is one (u, v, w) wire edge.
type EdgeTriple struct {
	U, V, W int32
}

// SingleShotRequest is the decoded form of a single-shot dispatch
// request, covering both the unweighted adjacency-matrix form (ids 1,
// 4, 5) and the weighted edge-triple form (ids 2, 3).
type SingleShotRequest struct {
	AlgorithmID int32
	Vertices    int32

	// AdjacencyMatrix is populated for the unweighted form, row-major,
	// length Vertices*Vertices.
	AdjacencyMatrix []int32

	// Edges is populated for the weighted form.
	Edges []EdgeTriple
}

// IsWeightedForm reports whether id uses the weighted edge-triple
// request form rather than the unweighted adjacency-matrix form.
func IsWeightedForm(algorithmID int32) bool {
	return algorithmID == 2 || algorithmID == 3
}
