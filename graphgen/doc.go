// Package graphgen deterministically generates random graphs from a
// seed, vertex count, and maximum edge weight, for use by test clients
// exercising the pipeline and dispatch servers.
//
// It reproduces the reference random-graph generator's rejection
// sampling: repeatedly pick a random (u, v), attempt to add it, and
// skip on duplicate, bounded by a generous attempt cap so a dense
// request on a small graph still terminates.
package graphgen
