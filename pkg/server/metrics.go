package server

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "o"

// metrics holds the Prometheus metrics for the live-session server.
type metrics struct {
	sessionsActive prometheus.Gauge
	sessionsTotal  prometheus.Counter
	rendersTotal   prometheus.Counter
	snapshotsTotal prometheus.Counter
	eventsTotal    *prometheus.CounterVec
	eventErrors    prometheus.Counter
	eventDuration  prometheus.Histogram
}

// globalMetrics is the singleton metrics instance; Prometheus collectors
// can only be registered once per process.
var (
	globalMetrics     *metrics
	globalMetricsOnce sync.Once
)

func getMetrics() *metrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = &metrics{
			sessionsActive: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "sessions_active",
				Help:      "Currently connected live sessions.",
			}),
			sessionsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "sessions_total",
				Help:      "Total live sessions accepted.",
			}),
			rendersTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "renders_total",
				Help:      "Render passes started from the session loop.",
			}),
			snapshotsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "snapshots_total",
				Help:      "Snapshots pushed to clients.",
			}),
			eventsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "events_total",
				Help:      "Client events dispatched, by event name.",
			}, []string{"event"}),
			eventErrors: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "event_errors_total",
				Help:      "Client events that could not be dispatched.",
			}),
			eventDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "event_duration_seconds",
				Help:      "Time spent dispatching one client event, including re-renders.",
				Buckets:   prometheus.DefBuckets,
			}),
		}
	})
	return globalMetrics
}
