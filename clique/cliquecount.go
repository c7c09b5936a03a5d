package clique

import "github.com/arcweave/graphpipe/core"

// Count enumerates every clique of g (not only maximal ones) via the
// same depth-first extension FindMax uses, counting each non-empty
// clique bucketed by size. Edges count as 2-cliques, triangles as
// 3-cliques; n=0 yields a zero Total.
func Count(g *core.Graph) CountOutcome {
	n := g.N()
	if n == 0 {
		return CountOutcome{}
	}

	adj := buildAdjacencyMatrix(g)
	bySize := make([]int, n+1)

	var extend func(current []int)
	extend = func(current []int) {
		if len(current) > 0 {
			bySize[len(current)]++
		}
		last := -1
		if len(current) > 0 {
			last = current[len(current)-1]
		}
		for v := last + 1; v < n; v++ {
			if connectedToAll(adj, v, current) {
				extend(append(current, v))
			}
		}
	}
	extend(nil)

	total := 0
	largest := 0
	for size := 1; size <= n; size++ {
		if bySize[size] > 0 {
			total += bySize[size]
			largest = size
		}
	}

	return CountOutcome{BySize: bySize, Total: total, Largest: largest}
}

// CountTriangles counts 3-cliques directly via the ordered-triple fast
// path, without building the full size distribution Count produces.
func CountTriangles(g *core.Graph) int {
	n := g.N()
	if n < 3 {
		return 0
	}

	adj := buildAdjacencyMatrix(g)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adj[i][j] {
				continue
			}
			for k := j + 1; k < n; k++ {
				if adj[i][k] && adj[j][k] {
					count++
				}
			}
		}
	}
	return count
}
