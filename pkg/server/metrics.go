package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the preview server, registered on the default
// registry and exposed at /metrics.
var (
	pagesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "htmlkit",
		Name:      "pages_rendered_total",
		Help:      "Total number of pages rendered by the preview server",
	})

	renderErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "htmlkit",
		Name:      "render_errors_total",
		Help:      "Total number of failed page renders",
	})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "htmlkit",
		Name:      "render_duration_seconds",
		Help:      "Page render duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})

	renderBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "htmlkit",
		Name:      "render_bytes",
		Help:      "Rendered page size in bytes",
		Buckets:   []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576},
	})
)
