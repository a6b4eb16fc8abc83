package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// RecordMetrics counts entity operations and observes order amounts
type RecordMetrics interface {
	IncCreated(entity string)
	IncUpdated(entity string)
	IncDeleted(entity string)
	ObserveOrderAmount(amount float64, status string)
}

type recordMetrics struct {
	log            *logger.Logger
	recordsCreated *prometheus.CounterVec
	recordsUpdated *prometheus.CounterVec
	recordsDeleted *prometheus.CounterVec
	orderAmounts   *prometheus.HistogramVec
}

// NewRecordMetrics registers the record metrics on the given registry
func NewRecordMetrics(registry *prometheus.Registry, log *logger.Logger) RecordMetrics {
	recordsCreated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "The total number of created records",
		},
		[]string{"entity"},
	)

	recordsUpdated := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_updated_total",
			Help: "The total number of updated records",
		},
		[]string{"entity"},
	)

	recordsDeleted := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_deleted_total",
			Help: "The total number of deleted records, cascades included",
		},
		[]string{"entity"},
	)

	orderAmounts := promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_amount",
			Help:    "Order amounts distribution",
			Buckets: prometheus.ExponentialBuckets(10, 10, 5), // 10, 100, 1000, 10000, 100000
		},
		[]string{"status"},
	)

	return &recordMetrics{
		log:            log,
		recordsCreated: recordsCreated,
		recordsUpdated: recordsUpdated,
		recordsDeleted: recordsDeleted,
		orderAmounts:   orderAmounts,
	}
}

// IncCreated increments the created counter for an entity kind
func (m *recordMetrics) IncCreated(entity string) {
	m.recordsCreated.WithLabelValues(entity).Inc()
}

// IncUpdated increments the updated counter for an entity kind
func (m *recordMetrics) IncUpdated(entity string) {
	m.recordsUpdated.WithLabelValues(entity).Inc()
}

// IncDeleted increments the deleted counter for an entity kind
func (m *recordMetrics) IncDeleted(entity string) {
	m.recordsDeleted.WithLabelValues(entity).Inc()
}

// ObserveOrderAmount records the amount of a created order
func (m *recordMetrics) ObserveOrderAmount(amount float64, status string) {
	m.orderAmounts.WithLabelValues(status).Observe(amount)
}
