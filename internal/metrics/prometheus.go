package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for the ingestion job

var (
	// API call metrics
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_api_calls_total",
			Help: "Total number of NHL API calls",
		},
		[]string{"endpoint", "status"},
	)

	APICallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nhl_api_call_duration_seconds",
			Help:    "Duration of API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// Ingestion metrics
	RowsWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_rows_written_total",
			Help: "Total number of rows written to the database",
		},
		[]string{"table"},
	)

	RecordsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_records_skipped_total",
			Help: "Total number of source records skipped",
		},
		[]string{"reason"},
	)

	GamesProcessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nhl_games_processed_total",
			Help: "Total number of schedule games processed",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nhl_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordAPICall records an API call metric
func RecordAPICall(endpoint, status string, duration float64) {
	APICallsTotal.WithLabelValues(endpoint, status).Inc()
	APICallDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordRowWritten records a successful database insert
func RecordRowWritten(table string) {
	RowsWrittenTotal.WithLabelValues(table).Inc()
}

// RecordSkip records a skipped source record
func RecordSkip(reason string) {
	RecordsSkippedTotal.WithLabelValues(reason).Inc()
}

// RecordGameProcessed records one processed schedule game
func RecordGameProcessed() {
	GamesProcessedTotal.Inc()
}

// RecordError records an error
func RecordError(component, errorType string) {
	ErrorsTotal.WithLabelValues(component, errorType).Inc()
}
