package metrics

import (
	"github.com/Dhoini/Customer-microservice/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CustomerMetrics интерфейс для метрик клиентов
type CustomerMetrics interface {
	IncCustomerCreated()
	IncCustomerUpdated()
	IncCustomerDeleted()
	IncCustomerRejected(operation, reason string)
	IncEventPublishFailed(eventType string)
}

type customerMetrics struct {
	log                *logger.Logger
	customersMutations *prometheus.CounterVec
	customersRejected  *prometheus.CounterVec
	eventsFailed       *prometheus.CounterVec
}

// NewCustomerMetrics создает новые метрики клиентов
func NewCustomerMetrics(registry *prometheus.Registry, log *logger.Logger) CustomerMetrics {
	customersMutations := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "customers_mutations_total",
			Help: "The total number of successful customer mutations by operation",
		},
		[]string{"operation"},
	)

	customersRejected := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "customers_rejected_total",
			Help: "The total number of rejected customer operations by reason",
		},
		[]string{"operation", "reason"},
	)

	eventsFailed := promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "customer_events_publish_failed_total",
			Help: "The total number of customer events that could not be published",
		},
		[]string{"event_type"},
	)

	return &customerMetrics{
		log:                log,
		customersMutations: customersMutations,
		customersRejected:  customersRejected,
		eventsFailed:       eventsFailed,
	}
}

// IncCustomerCreated увеличивает счетчик созданных клиентов
func (m *customerMetrics) IncCustomerCreated() {
	m.customersMutations.WithLabelValues("create").Inc()
}

// IncCustomerUpdated увеличивает счетчик обновленных клиентов
func (m *customerMetrics) IncCustomerUpdated() {
	m.customersMutations.WithLabelValues("update").Inc()
}

// IncCustomerDeleted увеличивает счетчик удаленных клиентов
func (m *customerMetrics) IncCustomerDeleted() {
	m.customersMutations.WithLabelValues("delete").Inc()
}

// IncCustomerRejected увеличивает счетчик отклоненных операций
func (m *customerMetrics) IncCustomerRejected(operation, reason string) {
	m.customersRejected.WithLabelValues(operation, reason).Inc()
}

// IncEventPublishFailed увеличивает счетчик неотправленных событий
func (m *customerMetrics) IncEventPublishFailed(eventType string) {
	m.eventsFailed.WithLabelValues(eventType).Inc()
}
