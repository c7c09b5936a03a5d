// Package mst computes a minimum spanning tree over a core.Graph using
// Prim's algorithm, starting from vertex 0.
//
// It reads the graph's incidence lists directly (self-loops ignored; no
// weight matrix is built) and grows the tree with a binary min-heap
// keyed by candidate-edge weight, so that ties resolve
// in favor of whichever edge first connected a vertex to the tree.
package mst
