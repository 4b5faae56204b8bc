package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker"
)

// ExternalAPIMetrics contains all metrics for external API monitoring
type ExternalAPIMetrics struct {
	apiDuration         *prometheus.HistogramVec
	apiCalls            *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
	timeouts            *prometheus.CounterVec
}

// NewExternalAPIMetrics creates a new instance of external API metrics
func NewExternalAPIMetrics() *ExternalAPIMetrics {
	return &ExternalAPIMetrics{
		apiDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lending_backend_external_api_duration_seconds",
				Help:    "Duration of external API calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api_name", "endpoint", "status"},
		),
		apiCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_backend_external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api_name", "status"},
		),
		circuitBreakerState: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lending_backend_circuit_breaker_state",
				Help: "Current state of circuit breakers (0=closed, 1=half-open, 2=open)",
			},
			[]string{"api_name"},
		),
		timeouts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_backend_external_api_timeouts_total",
				Help: "Total number of external API timeouts",
			},
			[]string{"api_name", "timeout_type"},
		),
	}
}

// MustRegister registers all metrics with the provided registry
func (m *ExternalAPIMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(
		m.apiDuration,
		m.apiCalls,
		m.circuitBreakerState,
		m.timeouts,
	)
}

// RecordAPICall records an API call with duration and status
func (m *ExternalAPIMetrics) RecordAPICall(apiName, endpoint, status string, duration float64) {
	m.apiDuration.WithLabelValues(apiName, endpoint, status).Observe(duration)
	m.apiCalls.WithLabelValues(apiName, status).Inc()
}

func (m *ExternalAPIMetrics) UpdateCircuitBreakerState(apiName string, state gobreaker.State) {
	m.circuitBreakerState.WithLabelValues(apiName).Set(float64(state))
}

func (m *ExternalAPIMetrics) RecordTimeout(apiName, timeoutType string) {
	m.timeouts.WithLabelValues(apiName, timeoutType).Inc()
}

// ActionMetrics counts what happens on the action surface.
type ActionMetrics struct {
	submissions     *prometheus.CounterVec
	telemetryEvents *prometheus.CounterVec
}

func NewActionMetrics() *ActionMetrics {
	return &ActionMetrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_backend_action_submissions_total",
				Help: "Action submissions by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		telemetryEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lending_backend_telemetry_events_total",
				Help: "Telemetry events by event type and delivery status",
			},
			[]string{"event", "status"},
		),
	}
}

func (m *ActionMetrics) MustRegister(registry *prometheus.Registry) {
	registry.MustRegister(m.submissions, m.telemetryEvents)
}

// RecordSubmission is safe to call on a nil receiver.
func (m *ActionMetrics) RecordSubmission(action, outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(action, outcome).Inc()
}

// RecordTelemetryEvent is safe to call on a nil receiver.
func (m *ActionMetrics) RecordTelemetryEvent(event, status string) {
	if m == nil {
		return
	}
	m.telemetryEvents.WithLabelValues(event, status).Inc()
}
