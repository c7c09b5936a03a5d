// Package graphpipe is a concurrent graph-analysis server: a small
// algorithm library (Eulerian circuits, minimum spanning trees,
// maximum flow, clique search and counting) over a simple integer-keyed
// graph, exposed through three interchangeable TCP front-ends:
//
//	pipeline/ — bounded blocking-queue pipeline running every job
//	            through all four algorithms in sequence
//	server/   — per-connection single-shot dispatch, and a
//	            leader-follower worker pool, both backed by dispatch/
//	dispatch/ — fixed id-to-strategy registry used by the non-pipeline
//	            front-ends
//
// Everything is organized under:
//
//	core/     — the graph store: incidence lists, simple-graph policy
//	euler/    — Eulerian circuit (Hierholzer)
//	mst/      — minimum spanning tree (Prim)
//	maxflow/  — maximum flow (Edmonds-Karp)
//	clique/   — max clique, clique counting, Bron-Kerbosch, triangles
//	wire/     — binary request/response framing for both protocols
//	metrics/  — optional Prometheus instrumentation
//	graphgen/ — deterministic random graph generation for test clients
//	cmd/      — the four server and client binaries
package graphpipe
