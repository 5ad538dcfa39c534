// Package metrics provides Prometheus metrics for the ranking service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics
	tournamentsIngested prometheus.Counter
	uploadsDuplicate    prometheus.Counter
	storeTournaments    prometheus.Gauge

	// Processing metrics
	processPasses   prometheus.Counter
	processDuration prometheus.Histogram
	roundsExtracted prometheus.Counter
	roundsSkipped   prometheus.Counter

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "ranking",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.tournamentsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tournaments_ingested_total",
		Help:      "Total number of tournaments registered in the session store",
	})

	m.uploadsDuplicate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "uploads_duplicate_total",
		Help:      "Total number of uploads rejected as duplicates",
	})

	m.storeTournaments = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_tournaments",
		Help:      "Current number of tournaments held by the session store",
	})

	m.processPasses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "process_passes_total",
		Help:      "Total number of full aggregation passes",
	})

	m.processDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "process_duration_milliseconds",
		Help:      "Histogram of full aggregation pass duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.roundsExtracted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_extracted_total",
		Help:      "Total number of rounds normalized from raw tables",
	})

	m.roundsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "tables_skipped_total",
		Help:      "Total number of tables skipped for unresolved columns",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// GetRegistry returns the registry all global metrics are registered on.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordTournamentIngested increments the ingestion counter.
func RecordTournamentIngested() { globalManager.tournamentsIngested.Inc() }

// RecordDuplicateUpload increments the duplicate upload counter.
func RecordDuplicateUpload() { globalManager.uploadsDuplicate.Inc() }

// SetStoreTournaments updates the session store size gauge.
func SetStoreTournaments(n int) { globalManager.storeTournaments.Set(float64(n)) }

// RecordProcessPass records one full aggregation pass and its duration.
func RecordProcessPass(durationMs float64) {
	globalManager.processPasses.Inc()
	globalManager.processDuration.Observe(durationMs)
}

// AddRoundsExtracted adds to the normalized rounds counter.
func AddRoundsExtracted(n int) { globalManager.roundsExtracted.Add(float64(n)) }

// AddTablesSkipped adds to the skipped tables counter.
func AddTablesSkipped(n int) { globalManager.roundsSkipped.Add(float64(n)) }

// RecordHTTPRequest records one HTTP request by endpoint, method and status.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}
