// Package server implements the three TCP front-ends that share the
// algorithm library and wire protocols: the bounded-queue pipeline
// server, the per-connection single-shot dispatch server, and the
// leader-follower worker pool.
//
// Every front-end accepts one positional port argument at the cmd/
// layer; this package only knows net.Listener and does not read flags
// or handle signals itself, so it can be driven identically from a
// production binary or a test.
package server
