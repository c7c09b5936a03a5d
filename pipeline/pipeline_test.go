package pipeline_test

import (
	"bytes"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/arcweave/graphpipe/core"
	"github.com/arcweave/graphpipe/metrics"
	"github.com/arcweave/graphpipe/pipeline"
	"github.com/stretchr/testify/require"
)

// recordingClient captures what a job writes to it and tracks whether
// it has been closed, standing in for a net.Conn in tests.
type recordingClient struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (c *recordingClient) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *recordingClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *recordingClient) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

func (c *recordingClient) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func triangleGraph(t *testing.T) *core.Graph {
	g, err := core.Create(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 0, 1))
	return g
}

func TestQueueFIFOOrder(t *testing.T) {
	q := pipeline.NewQueue(4)
	for i := 0; i < 3; i++ {
		g, err := core.Create(1)
		require.NoError(t, err)
		job := &pipeline.Job{ID: int64(i), Graph: g}
		require.True(t, q.Push(job))
	}
	for i := 0; i < 3; i++ {
		job, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, int64(i), job.ID)
	}
}

func TestQueueShutdownWakesBlockedPop(t *testing.T) {
	q := pipeline.NewQueue(4)
	done := make(chan struct{})
	go func() {
		_, ok := q.Pop()
		require.False(t, ok)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Pop returned before shutdown")
	case <-time.After(50 * time.Millisecond):
	}

	q.Shutdown()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Pop did not wake after shutdown")
	}
}

func TestQueueShutdownStillDrainsQueuedItems(t *testing.T) {
	q := pipeline.NewQueue(4)
	g, err := core.Create(1)
	require.NoError(t, err)
	require.True(t, q.Push(&pipeline.Job{ID: 1, Graph: g}))

	q.Shutdown()

	job, ok := q.Pop()
	require.True(t, ok)
	require.Equal(t, int64(1), job.ID)

	_, ok = q.Pop()
	require.False(t, ok)
}

func TestPipelineProducesCompleteReportForTriangle(t *testing.T) {
	p := pipeline.New()
	defer p.Shutdown()

	client := &recordingClient{}
	require.True(t, p.Submit(triangleGraph(t), client))

	require.Eventually(t, func() bool {
		return client.isClosed()
	}, 2*time.Second, 5*time.Millisecond)

	report := client.String()
	require.Contains(t, report, "=== PIPELINE PROCESSING RESULTS ===")
	require.Contains(t, report, "Job ID:")
	require.Contains(t, report, "MST: Weight=2, Edges=2")
	// Two unit paths from 0 to 2 (0-2 and 0-1-2).
	require.Contains(t, report, "MaxFlow: Value=2")
	require.Contains(t, report, "MaxClique: Size=3")
	require.Contains(t, report, "CliqueCount: Total=7")
}

func TestPipelineAssignsAscendingDistinctJobIDs(t *testing.T) {
	p := pipeline.New()
	defer p.Shutdown()

	clients := make([]*recordingClient, 10)
	for i := range clients {
		clients[i] = &recordingClient{}
		require.True(t, p.Submit(triangleGraph(t), clients[i]))
	}

	for _, c := range clients {
		require.Eventually(t, func() bool { return c.isClosed() }, 2*time.Second, 5*time.Millisecond)
	}

	seen := make(map[string]bool)
	for i, c := range clients {
		report := c.String()
		require.Contains(t, report, "CliqueCount: Total=7")
		require.Contains(t, report, fmt.Sprintf("Job ID: %d\n", i+1), "job ids ascend in submission order")
		require.False(t, seen[report], "job id line should be distinct per job")
		seen[report] = true
	}
}

func TestPipelineDisconnectedGraphReportsNotConnected(t *testing.T) {
	p := pipeline.New()
	defer p.Shutdown()

	g, err := core.Create(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 5))

	client := &recordingClient{}
	require.True(t, p.Submit(g, client))

	require.Eventually(t, func() bool { return client.isClosed() }, 2*time.Second, 5*time.Millisecond)
	report := client.String()
	require.Contains(t, report, "MST: not connected")
	require.Contains(t, report, "MaxFlow: Value=0")
}

func TestPipelineSingleVertexGraph(t *testing.T) {
	p := pipeline.New()
	defer p.Shutdown()

	g, err := core.Create(1)
	require.NoError(t, err)

	client := &recordingClient{}
	require.True(t, p.Submit(g, client))

	require.Eventually(t, func() bool { return client.isClosed() }, 2*time.Second, 5*time.Millisecond)
	report := client.String()
	require.Contains(t, report, "MST: Weight=0, Edges=0")
	require.Contains(t, report, "MaxFlow: error:")
	require.Contains(t, report, "MaxClique: Size=1")
	require.Contains(t, report, "CliqueCount: Total=1")
}

func TestPipelineShutdownClosesInFlightClients(t *testing.T) {
	p := pipeline.New()

	client := &recordingClient{}
	require.True(t, p.Submit(triangleGraph(t), client))

	p.Shutdown()
	require.True(t, client.isClosed())
}

func TestPipelineWithMetricsCompletesJob(t *testing.T) {
	m := metrics.Init()
	p := pipeline.New(pipeline.WithMetrics(m))
	defer p.Shutdown()

	client := &recordingClient{}
	require.True(t, p.Submit(triangleGraph(t), client))

	require.Eventually(t, func() bool { return client.isClosed() }, 2*time.Second, 5*time.Millisecond)
}
