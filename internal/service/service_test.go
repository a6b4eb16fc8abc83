package service

import (
	"io"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Dhoini/Tims-microservice/internal/kafka/producer"
	"github.com/Dhoini/Tims-microservice/internal/metrics"
	"github.com/Dhoini/Tims-microservice/internal/repository"
	"github.com/Dhoini/Tims-microservice/internal/validation"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// testEnv wires both services over fresh in-memory repositories, a
// private metrics registry and the no-op event producer.
type testEnv struct {
	customers CustomerService
	orders    OrderService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.New(logger.ERROR)
	log.SetOutput(io.Discard)

	registry := prometheus.NewRegistry()
	recordMetrics := metrics.NewRecordMetrics(registry, log)

	customerRepo := repository.NewInMemoryCustomerRepository(log)
	orderRepo := repository.NewInMemoryOrderRepository(log)
	validate := validation.New()
	events := producer.NewNoopRecordProducer()

	return &testEnv{
		customers: NewCustomerService(customerRepo, orderRepo, validate, events, recordMetrics, log),
		orders:    NewOrderService(orderRepo, customerRepo, validate, events, recordMetrics, log),
	}
}
