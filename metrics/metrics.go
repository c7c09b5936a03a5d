package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is the process-wide instrumentation container. Construct it
// once via Init and pass it to whichever front-end is running.
type Metrics struct {
	JobsSubmitted   prometheus.Counter
	JobsCompleted   prometheus.Counter
	StageDuration   *prometheus.HistogramVec
	QueueDepth      *prometheus.GaugeVec
	ConnectionsOpen prometheus.Gauge
}

const namespace = "graphpipe"

// Init registers every metric with the default Prometheus registry. It
// must be called at most once per process.
func Init() *Metrics {
	return &Metrics{
		JobsSubmitted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_submitted_total",
			Help:      "Total pipeline jobs admitted.",
		}),
		JobsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_completed_total",
			Help:      "Total pipeline jobs that reached the terminal stage.",
		}),
		StageDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent running one stage's transform.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
		QueueDepth: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Current number of jobs waiting in a stage's input queue.",
		}, []string{"stage"}),
		ConnectionsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_open",
			Help:      "Current number of open client connections across all front-ends.",
		}),
	}
}

// Handler returns the HTTP handler to mount at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
