package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arcweave/graphpipe/metrics"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersAllMetrics(t *testing.T) {
	m := metrics.Init()
	require.NotNil(t, m.JobsSubmitted)
	require.NotNil(t, m.JobsCompleted)
	require.NotNil(t, m.StageDuration)
	require.NotNil(t, m.QueueDepth)
	require.NotNil(t, m.ConnectionsOpen)

	m.JobsSubmitted.Inc()
	m.StageDuration.WithLabelValues("mst").Observe(0.01)
	m.QueueDepth.WithLabelValues("mst").Set(3)
	m.ConnectionsOpen.Set(1)
}

func TestHandlerServesMetrics(t *testing.T) {
	h := metrics.Handler()
	require.NotNil(t, h)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
