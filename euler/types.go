package euler

import "errors"

// ErrNoCircuit indicates the graph has no Eulerian circuit: it has no
// edges, some vertex has odd degree, or the non-isolated vertices are
// not connected.
var ErrNoCircuit = errors.New("euler: graph has no Eulerian circuit")

// Outcome is the result of an Eulerian-circuit computation.
type Outcome struct {
	// Exists reports whether the graph has an Eulerian circuit.
	Exists bool

	// Circuit is the closed walk traversing every edge exactly once,
	// of length m+1 when Exists is true. Nil otherwise.
	Circuit []int
}
