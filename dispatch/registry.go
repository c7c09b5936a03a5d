package dispatch

import (
	"fmt"
	"strings"

	"github.com/arcweave/graphpipe/clique"
	"github.com/arcweave/graphpipe/core"
	"github.com/arcweave/graphpipe/euler"
	"github.com/arcweave/graphpipe/maxflow"
	"github.com/arcweave/graphpipe/mst"
)

// maxReportLen is the truncation point for strategy output that can
// grow with graph size (MST's edge list); longer output is cut with an
// explicit marker rather than silently dropped.
const maxReportLen = 1000

// idToType is the fixed identifier table from the dispatch layer's
// specification.
var idToType = map[int]Type{
	1: TypeEuler,
	2: TypeMaxFlow,
	3: TypeMST,
	4: TypeMaxClique,
	5: TypeCliqueCount,
}

// Registry is the immutable table of algorithm strategies, keyed by
// Type. Each NewRegistry call builds its own instance.
type Registry struct {
	byType map[Type]*Strategy
}

// NewRegistry builds the fixed five-entry strategy table. Callers
// build it once and treat it as read-only afterward.
func NewRegistry() *Registry {
	r := &Registry{byType: make(map[Type]*Strategy, 5)}
	r.register(1, TypeEuler, "euler", "Eulerian circuit via Hierholzer's algorithm", runEuler)
	r.register(2, TypeMaxFlow, "max_flow", "maximum flow via Edmonds-Karp", runMaxFlow)
	r.register(3, TypeMST, "mst", "minimum spanning tree via Prim's algorithm", runMST)
	r.register(4, TypeMaxClique, "max_clique", "largest clique via backtracking search", runMaxClique)
	r.register(5, TypeCliqueCount, "clique_count", "clique counts bucketed by size", runCliqueCount)
	return r
}

func (r *Registry) register(id int, t Type, name, description string, fn func(g *core.Graph) string) {
	r.byType[t] = &Strategy{ID: id, Name: name, Description: description, Type: t, Run: fn}
}

// TypeOf maps an algorithm id to its type tag. ok is false for any id
// outside the fixed 1..5 table.
func TypeOf(id int) (Type, bool) {
	t, ok := idToType[id]
	return t, ok
}

// StrategyFor looks up the strategy record for a type tag.
func (r *Registry) StrategyFor(t Type) (*Strategy, bool) {
	s, ok := r.byType[t]
	return s, ok
}

// Run looks up the strategy for id and executes it against g,
// returning its one-line (or, for MST, possibly multi-line) textual
// result. Unknown ids produce a string beginning with "Factory Error:"
// rather than an error return, so callers that only inspect the
// leading token never confuse a failure with a valid result.
func (r *Registry) Run(g *core.Graph, id int) string {
	t, ok := TypeOf(id)
	if !ok {
		return fmt.Sprintf("Factory Error: unknown algorithm id %d", id)
	}
	s, ok := r.StrategyFor(t)
	if !ok {
		return fmt.Sprintf("Factory Error: no strategy registered for %s", t)
	}
	return truncate(s.Run(g))
}

func truncate(s string) string {
	if len(s) <= maxReportLen {
		return s
	}
	return s[:maxReportLen] + " ...[truncated]"
}

func runEuler(g *core.Graph) string {
	out, err := euler.FindCircuit(g)
	if err != nil {
		return "Euler: no circuit"
	}
	return fmt.Sprintf("Euler: circuit of length %d: %s", len(out.Circuit)-1, joinInts(out.Circuit))
}

func runMaxFlow(g *core.Graph) string {
	out, err := maxflow.RunDefault(g)
	if err != nil {
		return fmt.Sprintf("MaxFlow: %s", err)
	}
	return fmt.Sprintf("MaxFlow: value=%d source=%d sink=%d", out.Value, out.Source, out.Sink)
}

func runMST(g *core.Graph) string {
	out, err := mst.Compute(g)
	if err != nil {
		return fmt.Sprintf("MST: %s", err)
	}
	if !out.Connected {
		return "MST: graph is disconnected, no spanning tree"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "MST: total_weight=%d edges=", out.TotalWeight)
	for i, e := range out.Edges {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "(%d-%d:%d)", e.U, e.V, e.W)
	}
	return b.String()
}

func runMaxClique(g *core.Graph) string {
	out := clique.FindMax(g)
	return fmt.Sprintf("MaxClique: size=%d vertices=%s", out.Size(), joinInts(out.Vertices))
}

func runCliqueCount(g *core.Graph) string {
	out := clique.Count(g)
	var parts []string
	for size := 1; size <= out.Largest; size++ {
		if out.BySize[size] > 0 {
			parts = append(parts, fmt.Sprintf("%d:%d", size, out.BySize[size]))
		}
	}
	return fmt.Sprintf("CliqueCount: total=%d largest=%d by_size={%s}", out.Total, out.Largest, strings.Join(parts, ", "))
}

func joinInts(vs []int) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
