package graphgen

import (
	"errors"
	"math/rand"

	"github.com/arcweave/graphpipe/core"
)

// ErrTooFewEdgesAdded is returned when the attempt cap is exhausted
// before the requested edge count was reached; the caller still gets
// the partially filled graph.
var ErrTooFewEdgesAdded = errors.New("graphgen: could not add the requested number of edges")

// maxAttemptsPerEdge bounds rejection-sampling retries, mirroring the
// reference generator's num_edges*1000 cap.
const maxAttemptsPerEdge = 1000

// Generate builds an n-vertex graph and adds up to numEdges random
// edges with weights in [1, maxWeight], seeded deterministically by
// seed. Picks that AddEdge rejects (a repeated pair, or a second
// self-loop on a vertex) are retried, not counted; a vertex's first
// self-loop is accepted and counted.
func Generate(seed int64, n, numEdges, maxWeight int) (*core.Graph, error) {
	g, err := core.Create(n)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	added := 0
	maxAttempts := numEdges * maxAttemptsPerEdge
	if maxAttempts == 0 {
		maxAttempts = maxAttemptsPerEdge
	}

	for attempts := 0; added < numEdges && attempts < maxAttempts; attempts++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		w := rng.Intn(maxWeight) + 1

		if err := g.AddEdge(u, v, w); err == nil {
			added++
		}
	}

	if added < numEdges {
		return g, ErrTooFewEdgesAdded
	}
	return g, nil
}
