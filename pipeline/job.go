package pipeline

import (
	"io"
	"time"

	"github.com/arcweave/graphpipe/core"
)

// stageCount is K, the number of transforms the reference pipeline
// runs: MST, MaxFlow, MaxClique, CliqueCount, in that order.
const stageCount = 4

// Job is one admitted unit of pipeline work. It is single-owner: after
// being pushed onto a Queue, the pusher must not retain or mutate it.
type Job struct {
	ID        int64
	Graph     *core.Graph
	Client    io.WriteCloser
	StartTime time.Time

	// Results holds one line per completed stage, in stage order; a
	// stage that fails records a human-readable error line instead of
	// aborting the job.
	Results [stageCount]string
}

// newJob constructs a job with the given id, taking ownership of g and
// client. The caller must not use g or client again.
func newJob(id int64, g *core.Graph, client io.WriteCloser) *Job {
	return &Job{
		ID:        id,
		Graph:     g,
		Client:    client,
		StartTime: time.Now(),
	}
}
