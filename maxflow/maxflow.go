package maxflow

import "github.com/arcweave/graphpipe/core"

// Run computes the maximum flow from source to sink in g. Self-loops
// are excluded; edge weight is taken as capacity in both directions of
// the underlying undirected edge.
func Run(g *core.Graph, source, sink int) (Outcome, error) {
	n := g.N()
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return Outcome{}, ErrOutOfRange
	}
	if source == sink {
		return Outcome{}, ErrSameVertex
	}

	capMatrix := buildCapacityMatrix(g)

	total := 0
	for {
		parent, bottleneck := bfsAugmentingPath(capMatrix, n, source, sink)
		if parent == nil {
			break
		}
		total += bottleneck

		v := sink
		for v != source {
			u := parent[v]
			capMatrix[u][v] -= bottleneck
			capMatrix[v][u] += bottleneck
			v = u
		}
	}

	return Outcome{Value: total, Source: source, Sink: sink}, nil
}

// RunDefault is the convenience form with source=0, sink=n-1. It
// requires n >= 2.
func RunDefault(g *core.Graph) (Outcome, error) {
	if g.N() < 2 {
		return Outcome{}, ErrTooSmall
	}
	return Run(g, 0, g.N()-1)
}

func buildCapacityMatrix(g *core.Graph) [][]int {
	n := g.N()
	capMatrix := make([][]int, n)
	for i := range capMatrix {
		capMatrix[i] = make([]int, n)
	}
	for u := 0; u < n; u++ {
		for _, inc := range g.Incidences(u) {
			if inc.To == u {
				continue
			}
			capMatrix[u][inc.To] = inc.Weight
		}
	}
	return capMatrix
}

// bfsAugmentingPath finds the shortest (fewest-edges) path from source
// to sink with positive residual capacity, returning the parent map and
// the path's bottleneck capacity. Returns (nil, 0) if no path exists.
func bfsAugmentingPath(capMatrix [][]int, n, source, sink int) ([]int, int) {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	visited := make([]bool, n)
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == sink {
			break
		}
		for v := 0; v < n; v++ {
			if !visited[v] && capMatrix[u][v] > 0 {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}

	if !visited[sink] {
		return nil, 0
	}

	bottleneck := -1
	for v := sink; v != source; v = parent[v] {
		u := parent[v]
		if bottleneck == -1 || capMatrix[u][v] < bottleneck {
			bottleneck = capMatrix[u][v]
		}
	}
	return parent, bottleneck
}
