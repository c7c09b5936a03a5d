package mst

import (
	"container/heap"

	"github.com/arcweave/graphpipe/core"
)

// candidate is one entry in the min-heap: the cheapest known edge weight
// connecting vertex v to the growing tree, and the tree-side endpoint
// that offered it.
type candidate struct {
	v, parent, weight int
}

type candidateHeap []candidate

func (h candidateHeap) Len() int            { return len(h) }
func (h candidateHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h candidateHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Compute runs Prim's algorithm on g starting from vertex 0 and returns
// the resulting Outcome. A single-vertex graph is trivially connected
// with an empty edge set.
func Compute(g *core.Graph) (Outcome, error) {
	n := g.N()
	if n < 1 {
		return Outcome{}, ErrEmptyGraph
	}

	inTree := make([]bool, n)
	key := make([]int, n)
	parent := make([]int, n)
	for v := range key {
		key[v] = -1
		parent[v] = -1
	}

	h := &candidateHeap{}
	heap.Init(h)
	heap.Push(h, candidate{v: 0, parent: -1, weight: 0})
	key[0] = 0

	var edges []Edge
	total := 0
	visited := 0

	for h.Len() > 0 {
		c := heap.Pop(h).(candidate)
		v := c.v
		if inTree[v] {
			continue
		}
		inTree[v] = true
		visited++
		if c.parent != -1 {
			edges = append(edges, Edge{U: c.parent, V: v, W: c.weight})
			total += c.weight
		}

		for _, inc := range g.Incidences(v) {
			w := inc.To
			if w == v || inTree[w] {
				continue
			}
			// Strict less-than: the first edge to reach w at a given
			// weight keeps priority over any later-discovered tie.
			if key[w] == -1 || inc.Weight < key[w] {
				key[w] = inc.Weight
				parent[w] = v
				heap.Push(h, candidate{v: w, parent: v, weight: inc.Weight})
			}
		}
	}

	if visited != n {
		return Outcome{Connected: false}, nil
	}
	return Outcome{Connected: true, Edges: edges, TotalWeight: total}, nil
}
