// Package metrics holds the prometheus collectors shared by the services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gmao"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Return outcomes reported on SensorReturns.
const (
	ReturnResultOK          = "ok"
	ReturnResultNoChecklist = "no_checklist"
	ReturnResultNotFound    = "sensor_not_found"
	ReturnResultError       = "error"
)

// Collectors are registered on the default prometheus registry, which
// /metrics exposes.
var (
	// SensorReturns counts processed sensor returns by outcome.
	SensorReturns = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: namespace,
		Name:      "sensor_returns_total",
		Help:      "Number of processed sensor returns by result.",
	}, []string{"result"})

	// ResponsesRecorded counts stored checklist responses.
	ResponsesRecorded = promauto.NewCounter(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: namespace,
		Name:      "checklist_responses_recorded_total",
		Help:      "Number of checklist responses stored.",
	})

	// HistoryExports counts rendered history documents by format.
	HistoryExports = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
		Namespace: namespace,
		Name:      "history_exports_total",
		Help:      "Number of sensor history exports by format.",
	}, []string{"format"})

	// ReportRenderSeconds observes document rendering latency by format.
	ReportRenderSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{ //nolint: gochecknoglobals
		Namespace: namespace,
		Name:      "report_render_seconds",
		Help:      "Time spent rendering history documents.",
		Buckets:   DefaultBuckets,
	}, []string{"format"})
)
