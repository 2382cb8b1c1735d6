package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// PipelineRunsTotal counts dashboard pipeline runs by result status.
	PipelineRunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pressmonitor",
		Subsystem: "pipeline",
		Name:      "runs_total",
		Help:      "Total number of filter/match/aggregate runs, labeled by status (ok, empty, unavailable).",
	}, []string{"status"})

	// PipelineDurationSeconds is the time spent in one run, excluding the dataset fetch.
	PipelineDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pressmonitor",
		Subsystem: "pipeline",
		Name:      "duration_seconds",
		Help:      "Time to filter, match and aggregate one render.",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	})

	DatasetRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pressmonitor",
		Subsystem: "dataset",
		Name:      "rows",
		Help:      "Rows in the last loaded dataset.",
	}, []string{"dataset"})

	DatasetUndatedRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "pressmonitor",
		Subsystem: "dataset",
		Name:      "undated_rows",
		Help:      "Rows whose date could not be parsed in the last loaded dataset.",
	}, []string{"dataset"})

	DatasetLoadErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pressmonitor",
		Subsystem: "dataset",
		Name:      "load_errors_total",
		Help:      "Total number of renders aborted because a dataset could not be loaded.",
	})

	MissingColumnsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pressmonitor",
		Subsystem: "dataset",
		Name:      "missing_columns_total",
		Help:      "Total number of loads that found an expected column missing.",
	}, []string{"dataset", "field"})
)

// Register registers the collectors with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			PipelineRunsTotal,
			PipelineDurationSeconds,
			DatasetRows,
			DatasetUndatedRows,
			DatasetLoadErrorsTotal,
			MissingColumnsTotal,
		)
	})
}

func ObserveRun(status string, started time.Time) {
	PipelineRunsTotal.WithLabelValues(status).Inc()
	PipelineDurationSeconds.Observe(time.Since(started).Seconds())
}
