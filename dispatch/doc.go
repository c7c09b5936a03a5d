// Package dispatch maps a numeric algorithm identifier to one of the
// five algorithm-library strategies (Euler, MaxFlow, MST, MaxClique,
// CliqueCount) and runs it, formatting a short textual result.
//
// The registry is a fixed five-entry table that NewRegistry builds for
// each caller and that is never mutated afterward, so lookups never need
// synchronization; this mirrors burstgridgo's internal/registry, which
// builds a name-keyed handler table once at startup and serves it
// read-only thereafter.
package dispatch
