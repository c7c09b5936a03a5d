package euler

import "github.com/arcweave/graphpipe/core"

// edgeView is the deduplicated incidence-by-edge-id structure described
// in the package doc: incidentEdges[v] lists the edge IDs touching v,
// and other[id] holds the two endpoints of edge id, from which otherEnd
// gives the "other side" as seen from a given vertex during the walk.
type edgeView struct {
	incidentEdges [][]int // per vertex, edge IDs incident to it
	other         [][2]int
	edgeCount     int
}

func buildEdgeView(g *core.Graph) *edgeView {
	n := g.N()
	ev := &edgeView{
		incidentEdges: make([][]int, n),
	}

	seen := make(map[[2]int]bool) // (u,v) with u<=v already assigned an id, for u!=v
	for u := 0; u < n; u++ {
		for _, inc := range g.Incidences(u) {
			v := inc.To
			if u == v {
				// One of the two u->u incidences per self-loop becomes one
				// new edge id; skip the second by tracking a per-vertex
				// "pending loop" flag via seen keyed on (u,u).
				key := [2]int{u, u}
				if seen[key] {
					seen[key] = false // reset so a hypothetical third occurrence (impossible) wouldn't reuse
					continue
				}
				seen[key] = true
				id := ev.edgeCount
				ev.edgeCount++
				ev.other = append(ev.other, [2]int{u, u})
				ev.incidentEdges[u] = append(ev.incidentEdges[u], id)
				ev.incidentEdges[u] = append(ev.incidentEdges[u], id)
				continue
			}
			if u < v {
				key := [2]int{u, v}
				if seen[key] {
					continue
				}
				seen[key] = true
				id := ev.edgeCount
				ev.edgeCount++
				ev.other = append(ev.other, [2]int{u, v})
				ev.incidentEdges[u] = append(ev.incidentEdges[u], id)
				ev.incidentEdges[v] = append(ev.incidentEdges[v], id)
			}
		}
	}
	return ev
}

// otherEnd returns the vertex reached from v by walking edge id.
func (ev *edgeView) otherEnd(id, v int) int {
	pair := ev.other[id]
	if pair[0] == v {
		return pair[1]
	}
	return pair[0]
}

// HasCircuit reports whether g has an Eulerian circuit: at least one
// edge, every vertex has even degree, and the non-isolated vertices are
// connected.
func HasCircuit(g *core.Graph) bool {
	if g.EdgeCount() == 0 {
		return false
	}
	for v := 0; v < g.N(); v++ {
		if g.Degree(v)%2 != 0 {
			return false
		}
	}
	return g.IsConnectedIgnoringIsolated()
}

// FindCircuit computes an Eulerian circuit of g via Hierholzer's
// algorithm. Returns Outcome{Exists: false} and ErrNoCircuit if g has
// no Eulerian circuit.
func FindCircuit(g *core.Graph) (Outcome, error) {
	if !HasCircuit(g) {
		return Outcome{Exists: false}, ErrNoCircuit
	}

	ev := buildEdgeView(g)

	start := 0
	for v := 0; v < g.N(); v++ {
		if g.Degree(v) > 0 {
			start = v
			break
		}
	}

	used := make([]bool, ev.edgeCount)
	cursor := make([]int, g.N()) // next untried index into incidentEdges[v]

	type frame struct{ v int }
	stack := []frame{{v: start}}
	var path []int

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		u := top.v

		advanced := false
		for cursor[u] < len(ev.incidentEdges[u]) {
			id := ev.incidentEdges[u][cursor[u]]
			cursor[u]++
			if used[id] {
				continue
			}
			used[id] = true
			w := ev.otherEnd(id, u)
			stack = append(stack, frame{v: w})
			advanced = true
			break
		}

		if !advanced {
			path = append(path, u)
			stack = stack[:len(stack)-1]
		}
	}

	// path was built by backtracking (append on dead end), so it is
	// already the reverse of the traversal order; Hierholzer's circuit
	// is this path reversed.
	circuit := make([]int, len(path))
	for i, v := range path {
		circuit[len(path)-1-i] = v
	}

	return Outcome{Exists: true, Circuit: circuit}, nil
}
