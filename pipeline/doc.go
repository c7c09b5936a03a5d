// Package pipeline implements the bounded blocking-queue pipeline that
// runs every job through a fixed sequence of stage transforms.
//
// Each stage owns a Queue: a mutex plus two condition variables
// (not_empty, not_full), not a channel. A buffered channel would give
// FIFO ordering and blocking for free, but broadcasting shutdown to
// every blocked producer and consumer needs either a second shutdown
// channel selected against on every push/pop, or exactly the
// mutex-plus-condvar shape built here directly; this package takes the
// direct route.
//
// A Job is single-owner throughout its life: it is constructed by the
// acceptor, handed to queue 1, and from then on exactly one goroutine
// (a queue or a stage worker) holds it at any instant. Its graph is
// destroyed exactly once: by the terminal stage, or, when shutdown
// refuses a job's push onto the next queue, by the stage holding it.
package pipeline
