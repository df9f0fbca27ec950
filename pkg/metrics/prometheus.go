// Package metrics provides Prometheus metrics for the HIRESIM simulator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the simulator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Estimation metrics
	estimatesProduced prometheus.Counter
	rangeWarnings     prometheus.Counter

	// Pipeline metrics
	candidatesScreened prometheus.Counter
	candidatesPassed   prometheus.Counter
	stepShortCircuits  prometheus.Counter
	finalScore         prometheus.Histogram
	interviewHours     prometheus.Histogram

	// Compensation metrics
	offersExtended prometheus.Counter
	offerValue     prometheus.Histogram

	// Search / trial metrics
	hires           prometheus.Counter
	trialsCompleted prometheus.Counter
	trialErrors     prometheus.Counter

	// Queue and worker health
	queueSize     prometheus.Gauge
	queueCapacity prometheus.Gauge
	enqueueErrors prometheus.Counter
	workerCount   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid the default Go collectors.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "hiresim",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics registers all metrics on the configured registry.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.estimatesProduced = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "estimates_produced_total",
		Help:      "Total number of perceived-skill estimates produced",
	})

	m.rangeWarnings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "estimate_range_warnings_total",
		Help:      "Total number of skill estimates outside [1,100] before clamping",
	})

	m.candidatesScreened = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_screened_total",
		Help:      "Total number of candidates run through a pipeline",
	})

	m.candidatesPassed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_passed_total",
		Help:      "Total number of candidates whose pipeline decision was pass",
	})

	m.stepShortCircuits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "step_short_circuits_total",
		Help:      "Total number of pipelines stopped early by the immediate strategy",
	})

	m.finalScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_score",
		Help:      "Distribution of final skill estimates across screened candidates",
		Buckets:   prometheus.LinearBuckets(0, 10, 12),
	})

	m.interviewHours = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "interview_hours",
		Help:      "Distribution of total interview hours spent per candidate",
		Buckets:   m.histogramBuckets,
	})

	m.offersExtended = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "offers_extended_total",
		Help:      "Total number of compensation offers computed for passing candidates",
	})

	m.offerValue = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "offer_value",
		Help:      "Distribution of final offer values",
		Buckets:   prometheus.ExponentialBuckets(50_000, 1.5, 8),
	})

	m.hires = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "hires_total",
		Help:      "Total number of accepted hires across all trials",
	})

	m.trialsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trials_completed_total",
		Help:      "Total number of completed simulation trials",
	})

	m.trialErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trial_errors_total",
		Help:      "Total number of trials that failed",
	})

	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trial_queue_size",
		Help:      "Current number of queued trials",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trial_queue_capacity",
		Help:      "Configured capacity of the trial queue",
	})

	m.enqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trial_enqueue_errors_total",
		Help:      "Total number of rejected trial enqueues",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Number of trial workers in the pool",
	})
}

// Package-level helpers against the global manager.

// RecordEstimate increments the produced-estimate counter.
func RecordEstimate() {
	globalManager.estimatesProduced.Inc()
}

// RecordRangeWarning increments the out-of-range estimate counter.
func RecordRangeWarning() {
	globalManager.rangeWarnings.Inc()
}

// RecordCandidateScreened increments the screened-candidate counter.
func RecordCandidateScreened() {
	globalManager.candidatesScreened.Inc()
}

// RecordCandidatePassed increments the passing-candidate counter.
func RecordCandidatePassed() {
	globalManager.candidatesPassed.Inc()
}

// RecordStepShortCircuit increments the early-termination counter.
func RecordStepShortCircuit() {
	globalManager.stepShortCircuits.Inc()
}

// RecordFinalScore observes a candidate's final skill estimate.
func RecordFinalScore(score float64) {
	globalManager.finalScore.Observe(score)
}

// RecordInterviewHours observes the total interview time spent on a candidate.
func RecordInterviewHours(hours float64) {
	globalManager.interviewHours.Observe(hours)
}

// RecordOffer observes a computed offer.
func RecordOffer(value float64) {
	globalManager.offersExtended.Inc()
	globalManager.offerValue.Observe(value)
}

// RecordHire increments the hire counter.
func RecordHire() {
	globalManager.hires.Inc()
}

// RecordTrialCompleted increments the completed-trial counter.
func RecordTrialCompleted() {
	globalManager.trialsCompleted.Inc()
}

// RecordTrialError increments the failed-trial counter.
func RecordTrialError() {
	globalManager.trialErrors.Inc()
}

// UpdateQueueSize sets the current trial queue length.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the configured trial queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordEnqueueError increments the rejected-enqueue counter.
func RecordEnqueueError() {
	globalManager.enqueueErrors.Inc()
}

// UpdateWorkerCount sets the worker pool size.
func UpdateWorkerCount(count int) {
	globalManager.workerCount.Set(float64(count))
}

// GetRegistry returns the custom registry for exposition.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
