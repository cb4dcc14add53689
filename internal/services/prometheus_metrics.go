package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	accountCreations       *prometheus.CounterVec
	accountDeletions       *prometheus.CounterVec
	commissionApplications *prometheus.CounterVec
	counterResets          *prometheus.CounterVec
	commissionCharged      prometheus.Histogram
	customerLookups        *prometheus.CounterVec
	customerLookupDuration prometheus.Histogram
	circuitBreakerState    *prometheus.GaugeVec
	eventsPublished        *prometheus.CounterVec
	eventPublishFailures   *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		accountCreations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_creations_total",
				Help: "Total number of account creation attempts",
			},
			[]string{"status"},
		),
		accountDeletions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_deletions_total",
				Help: "Total number of account deletions",
			},
			[]string{"status"},
		),
		commissionApplications: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_applications_total",
				Help: "Total number of transaction commission applications",
			},
			[]string{"status"},
		),
		counterResets: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "monthly_counter_resets_total",
				Help: "Total number of monthly transaction counter resets",
			},
			[]string{"status"},
		),
		commissionCharged: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "commission_charged_amount",
				Help:    "Commission amounts charged per transaction",
				Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
			},
		),
		customerLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_lookups_total",
				Help: "Total number of customer directory lookups",
			},
			[]string{"status"},
		),
		customerLookupDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "customer_lookup_duration_seconds",
				Help:    "Customer directory lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		eventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_events_published_total",
				Help: "Total number of account events published to the stream",
			},
			[]string{"event_type"},
		),
		eventPublishFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "account_event_publish_failures_total",
				Help: "Total number of account event publish failures",
			},
			[]string{"event_type"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case "account_creation":
		if status != "" {
			m.accountCreations.WithLabelValues(status).Inc()
		}
	case "account_deletion":
		if status != "" {
			m.accountDeletions.WithLabelValues(status).Inc()
		}
	case "commission_application":
		if status != "" {
			m.commissionApplications.WithLabelValues(status).Inc()
		}
	case "counter_reset":
		if status != "" {
			m.counterResets.WithLabelValues(status).Inc()
		}
	case "customer_lookup":
		if status != "" {
			m.customerLookups.WithLabelValues(status).Inc()
		}
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "customer_lookup":
		m.customerLookupDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "commission_charged":
		m.commissionCharged.Observe(value)
	case "circuit_breaker_state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}

func (m *PrometheusMetrics) RecordEventPublished(eventType string) {
	m.eventsPublished.WithLabelValues(eventType).Inc()
}

func (m *PrometheusMetrics) RecordEventPublishFailure(eventType string) {
	m.eventPublishFailures.WithLabelValues(eventType).Inc()
}
