// Package metrics provides Prometheus metrics for the rolecall service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the rolecall service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Intake metrics
	submissionsAccepted prometheus.Counter
	submissionsRejected prometheus.Counter
	resubmissions       prometheus.Counter

	// Run metrics - one run is a full recomputation over the roster
	runsTotal     prometheus.Counter
	runErrors     prometheus.Counter
	runDuration   prometheus.Histogram
	rosterSize    prometheus.Gauge
	floaterCount  prometheus.Gauge
	primaryCounts *prometheus.GaugeVec

	// Queue metrics
	queueCapacity      prometheus.Gauge
	queueSize          prometheus.Gauge
	queueEnqueueErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rolecall",
		subsystem:        "crews",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.submissionsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_accepted_total",
		Help:      "Total number of first-time submissions added to the roster",
	})

	m.submissionsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_rejected_total",
		Help:      "Total number of submissions rejected at the admission boundary",
	})

	m.resubmissions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resubmissions_total",
		Help:      "Total number of submissions that overwrote an existing applicant",
	})

	m.runsTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_total",
		Help:      "Total number of completed recomputation runs",
	})

	m.runErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_errors_total",
		Help:      "Total number of failed recomputation runs",
	})

	m.runDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "run_duration_milliseconds",
		Help:      "Histogram of full recomputation run duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.rosterSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "roster_size",
		Help:      "Current number of applicants on the roster",
	})

	m.floaterCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "floater_count",
		Help:      "Number of balance-role holders left without a crew after the last run",
	})

	m.primaryCounts = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "primary_role_count",
		Help:      "Number of applicants holding each primary role after the last run",
	}, []string{"role"})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Configured capacity of the submission queue",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current number of queued submissions",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total number of rejected enqueue attempts (full or closed queue)",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method, and status",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
}

// GetRegistry returns the registry backing the global manager, for
// exposition via promhttp.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Global helpers delegating to the singleton manager.

// RecordSubmissionAccepted counts a first-time submission.
func RecordSubmissionAccepted() { globalManager.submissionsAccepted.Inc() }

// RecordSubmissionRejected counts a submission rejected at the admission boundary.
func RecordSubmissionRejected() { globalManager.submissionsRejected.Inc() }

// RecordResubmission counts a submission that overwrote an existing applicant.
func RecordResubmission() { globalManager.resubmissions.Inc() }

// RecordRun counts one completed recomputation run.
func RecordRun() { globalManager.runsTotal.Inc() }

// RecordRunError counts one failed recomputation run.
func RecordRunError() { globalManager.runErrors.Inc() }

// RecordRunDuration observes a run duration in milliseconds.
func RecordRunDuration(ms float64) { globalManager.runDuration.Observe(ms) }

// UpdateRosterSize sets the current roster size.
func UpdateRosterSize(n int) { globalManager.rosterSize.Set(float64(n)) }

// UpdateFloaterCount sets the floater count from the last run.
func UpdateFloaterCount(n int) { globalManager.floaterCount.Set(float64(n)) }

// UpdatePrimaryCount sets the holder count for one primary role.
func UpdatePrimaryCount(role string, n int) {
	globalManager.primaryCounts.WithLabelValues(role).Set(float64(n))
}

// UpdateQueueCapacity sets the configured queue capacity.
func UpdateQueueCapacity(n int) { globalManager.queueCapacity.Set(float64(n)) }

// UpdateQueueSize sets the current queue size.
func UpdateQueueSize(n int) { globalManager.queueSize.Set(float64(n)) }

// RecordQueueEnqueueError counts one rejected enqueue attempt.
func RecordQueueEnqueueError() { globalManager.queueEnqueueErrors.Inc() }

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}
