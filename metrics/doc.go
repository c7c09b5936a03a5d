// Package metrics wires process-wide Prometheus instrumentation for
// the pipeline and server front-ends: jobs submitted and completed,
// per-stage duration, queue depth, and active connections.
//
// It is disabled by default (see cmd/pipeline-server's -metrics-addr
// flag) and has no effect on algorithm correctness: every collector is
// registered once through promauto, and callers that don't opt in
// simply never construct a *Metrics.
package metrics
