package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetrics records entity and report operation metrics
type PrometheusMetrics struct {
	entityOperations *prometheus.CounterVec
	reportDuration   *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		entityOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "entity_operations_total",
				Help: "Total number of entity operations by entity, operation and status",
			},
			[]string{"entity", "operation", "status"},
		),
		reportDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "report_duration_milliseconds",
				Help:    "Report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"report"},
		),
	}
}

func (m *PrometheusMetrics) RecordEntityOperation(entity, operation, status string) {
	m.entityOperations.WithLabelValues(entity, operation, status).Inc()
}

func (m *PrometheusMetrics) RecordReportDuration(report string, durationMs float64) {
	m.reportDuration.WithLabelValues(report).Observe(durationMs)
}
