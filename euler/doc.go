// Package euler finds Eulerian circuits over a core.Graph using
// Hierholzer's algorithm.
//
// HasCircuit and FindCircuit both work from a deduplicated edge view:
// each undirected edge is assigned a unique ID once (a self-loop gets
// one ID, listed twice at its vertex), and every vertex holds the list
// of edge IDs incident to it. Hierholzer's walk then consumes each edge ID
// exactly once via a per-vertex cursor, which is what guarantees the
// produced circuit traverses every edge exactly once even when the
// store's incidence lists contain duplicate-looking entries (a
// self-loop's two identical u->u incidences).
//
// The walk is an explicit stack rather than recursion, and edges are
// keyed by ID rather than removed from adjacency-list values directly,
// since a self-loop's two identical entries are not safely
// distinguishable by value alone.
package euler
