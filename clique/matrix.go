package clique

import "github.com/arcweave/graphpipe/core"

// buildAdjacencyMatrix builds an n x n boolean adjacency matrix from g,
// ignoring self-loops, for the pairwise-adjacency checks every clique
// routine in this package performs.
func buildAdjacencyMatrix(g *core.Graph) [][]bool {
	n := g.N()
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for u := 0; u < n; u++ {
		for _, inc := range g.Incidences(u) {
			if inc.To != u {
				adj[u][inc.To] = true
			}
		}
	}
	return adj
}

func connectedToAll(adj [][]bool, v int, clique []int) bool {
	for _, u := range clique {
		if !adj[v][u] {
			return false
		}
	}
	return true
}
