package core

import (
	"fmt"
	"strings"
)

// hasNonUnitWeight reports whether any stored edge has weight != 1.
func (g *Graph) hasNonUnitWeight() bool {
	for v := 0; v < g.n; v++ {
		for _, inc := range g.adj[v] {
			if inc.Weight != 1 {
				return true
			}
		}
	}
	return false
}

// Print renders one line per vertex listing its neighbors in incidence
// order. Weights are shown only if some edge in the graph has weight
// other than 1, matching the reference implementation's terse default.
func (g *Graph) Print() string {
	showWeights := g.hasNonUnitWeight()

	var b strings.Builder
	for v := 0; v < g.n; v++ {
		fmt.Fprintf(&b, "%d:", v)
		for _, inc := range g.adj[v] {
			if showWeights {
				fmt.Fprintf(&b, " %d(w=%d)", inc.To, inc.Weight)
			} else {
				fmt.Fprintf(&b, " %d", inc.To)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
