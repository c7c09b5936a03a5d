package clique

import "github.com/arcweave/graphpipe/core"

// FindMax finds a maximum clique of g via depth-first extension:
// starting from each vertex, extend the current clique with any
// higher-numbered vertex adjacent to every current member, keeping the
// largest clique found. An empty graph yields an empty clique; a
// single-vertex graph yields the clique {0}.
func FindMax(g *core.Graph) MaxOutcome {
	n := g.N()
	if n == 0 {
		return MaxOutcome{}
	}
	if n == 1 {
		return MaxOutcome{Vertices: []int{0}}
	}

	adj := buildAdjacencyMatrix(g)
	var best []int

	var extend func(current []int)
	extend = func(current []int) {
		if len(current) > len(best) {
			best = append([]int(nil), current...)
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

	for start := 0; start < n; start++ {
		extend([]int{start})
	}

	return MaxOutcome{Vertices: best}
}

// IsClique reports whether vertices forms a clique in g: every pair is
// pairwise adjacent. A set of size 0 or 1 is trivially a clique.
func IsClique(g *core.Graph, vertices []int) (bool, error) {
	n := g.N()
	for _, v := range vertices {
		if v < 0 || v >= n {
			return false, ErrVertexOutOfRange
		}
	}
	if len(vertices) <= 1 {
		return true, nil
	}

	adj := buildAdjacencyMatrix(g)
	for i := 0; i < len(vertices); i++ {
		for j := i + 1; j < len(vertices); j++ {
			if !adj[vertices[i]][vertices[j]] {
				return false, nil
			}
		}
	}
	return true, nil
}

// FindAllMaximal enumerates every maximal clique of g via the basic
// Bron-Kerbosch algorithm (R, P, X sets; recurse on each candidate in
// P; report when P and X are both empty).
func FindAllMaximal(g *core.Graph) []MaxOutcome {
	n := g.N()
	if n == 0 {
		return nil
	}

	adj := buildAdjacencyMatrix(g)
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	var results []MaxOutcome

	var bronKerbosch func(r, p, x []int)
	bronKerbosch = func(r, p, x []int) {
		if len(p) == 0 && len(x) == 0 {
			results = append(results, MaxOutcome{Vertices: append([]int(nil), r...)})
			return
		}

		candidates := append([]int(nil), p...)
		for _, v := range candidates {
			rNext := append(append([]int(nil), r...), v)

			var pNext, xNext []int
			for _, u := range p {
				if adj[v][u] {
					pNext = append(pNext, u)
				}
			}
			for _, u := range x {
				if adj[v][u] {
					xNext = append(xNext, u)
				}
			}

			bronKerbosch(rNext, pNext, xNext)

			p = removeValue(p, v)
			x = append(x, v)
		}
	}

	bronKerbosch(nil, p, nil)
	return results
}

func removeValue(s []int, v int) []int {
	for i, u := range s {
		if u == v {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}
