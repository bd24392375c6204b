package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	parseRequests     *prometheus.CounterVec
	parseDuration     prometheus.Histogram
	expensesSaved     prometheus.Counter
	expensesSaveFail  prometheus.Counter
	expensesDeleted   *prometheus.CounterVec
	refreshCycles     *prometheus.CounterVec
	refreshDuration   prometheus.Histogram
	activeRecordings  prometheus.Gauge
	reviewDecisions   *prometheus.CounterVec
	authFailuresTotal *prometheus.CounterVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		parseRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parse_requests_total",
				Help: "Total number of parse webhook submissions",
			},
			[]string{"status"},
		),
		parseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "parse_request_duration_milliseconds",
				Help:    "Parse webhook round-trip duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		expensesSaved: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_saved_total",
				Help: "Total number of expense records saved",
			},
		),
		expensesSaveFail: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "expenses_save_failures_total",
				Help: "Total number of failed expense saves",
			},
		),
		expensesDeleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "expenses_deleted_total",
				Help: "Total number of expense delete requests by outcome",
			},
			[]string{"outcome"},
		),
		refreshCycles: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_refresh_cycles_total",
				Help: "Total number of dashboard refresh cycles by trigger and status",
			},
			[]string{"trigger", "status"},
		),
		refreshDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_refresh_duration_milliseconds",
				Help:    "Dashboard refresh cycle duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		activeRecordings: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "active_recording_sessions",
				Help: "Current number of active capture sessions",
			},
		),
		reviewDecisions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "review_decisions_total",
				Help: "Total number of confidence gate decisions",
			},
			[]string{"decision"},
		),
		authFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auth_failures_total",
				Help: "Total number of rejected requests by reason",
			},
			[]string{"reason"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "parse.request.succeeded":
		m.parseRequests.WithLabelValues("succeeded").Inc()
		if decision := tags["decision"]; decision != "" {
			m.reviewDecisions.WithLabelValues(decision).Inc()
		}
	case "parse.request.failed":
		m.parseRequests.WithLabelValues("failed").Inc()
	case "expense.saved":
		m.expensesSaved.Inc()
	case "expense.save.failed":
		m.expensesSaveFail.Inc()
	case "expense.deleted":
		if outcome := tags["outcome"]; outcome != "" {
			m.expensesDeleted.WithLabelValues(outcome).Inc()
		}
	case "dashboard.refresh.completed":
		m.refreshCycles.WithLabelValues(tags["trigger"], "completed").Inc()
	case "dashboard.refresh.failed":
		m.refreshCycles.WithLabelValues(tags["trigger"], "failed").Inc()
	case "auth.failure":
		if reason := tags["reason"]; reason != "" {
			m.authFailuresTotal.WithLabelValues(reason).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "parse.request":
		m.parseDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard.refresh":
		m.refreshDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "capture.active_sessions":
		m.activeRecordings.Set(value)
	}
}
