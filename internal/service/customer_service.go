package service

import (
	"context"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Dhoini/Tims-microservice/internal/domain"
	"github.com/Dhoini/Tims-microservice/internal/kafka/producer"
	"github.com/Dhoini/Tims-microservice/internal/metrics"
	"github.com/Dhoini/Tims-microservice/internal/repository"
	"github.com/Dhoini/Tims-microservice/internal/validation"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// Entity labels used for metrics and events
const (
	entityCustomer = "customer"
	entityOrder    = "order"
)

// CustomerService drives customer operations: validation, storage and
// the cascade delete of dependent orders.
type CustomerService interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, payload validation.CustomerPayload) (domain.Customer, error)
	Update(ctx context.Context, id string, payload validation.CustomerPayload) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Customer], error)
}

type customerService struct {
	customers repository.CustomerRepository
	orders    repository.OrderRepository
	validate  *validatorv10.Validate
	events    producer.RecordProducer
	metrics   metrics.RecordMetrics
	log       *logger.Logger
}

// NewCustomerService wires a customer service
func NewCustomerService(
	customers repository.CustomerRepository,
	orders repository.OrderRepository,
	validate *validatorv10.Validate,
	events producer.RecordProducer,
	recordMetrics metrics.RecordMetrics,
	log *logger.Logger,
) CustomerService {
	return &customerService{
		customers: customers,
		orders:    orders,
		validate:  validate,
		events:    events,
		metrics:   recordMetrics,
		log:       log,
	}
}

// GetAll returns every customer
func (s *customerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.GetAll(ctx)
}

// GetByID returns one customer by id
func (s *customerService) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create validates, sanitizes and stores a new customer
func (s *customerService) Create(ctx context.Context, payload validation.CustomerPayload) (domain.Customer, error) {
	if result := validation.ValidateCustomer(s.validate, payload); !result.IsValid {
		return domain.Customer{}, domain.NewValidationError(result.Errors)
	}

	customer, err := s.customers.Create(ctx, validation.SanitizeCustomer(payload))
	if err != nil {
		return domain.Customer{}, err
	}

	s.metrics.IncCreated(entityCustomer)
	s.publish(ctx, producer.TopicCustomerCreated, customer.ID, customer)

	return customer, nil
}

// Update validates, sanitizes and merges the supplied fields onto an
// existing customer
func (s *customerService) Update(ctx context.Context, id string, payload validation.CustomerPayload) (domain.Customer, error) {
	if result := validation.ValidateCustomer(s.validate, payload); !result.IsValid {
		return domain.Customer{}, domain.NewValidationError(result.Errors)
	}

	customer, err := s.customers.Update(ctx, id, validation.SanitizeCustomer(payload))
	if err != nil {
		return domain.Customer{}, err
	}

	s.metrics.IncUpdated(entityCustomer)
	s.publish(ctx, producer.TopicCustomerUpdated, customer.ID, customer)

	return customer, nil
}

// Delete removes a customer and cascades to every order referencing it
func (s *customerService) Delete(ctx context.Context, id string) error {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.customers.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.orders.DeleteByCustomerID(ctx, customer.ID)
	if err != nil {
		return err
	}
	if removed > 0 {
		s.log.Info("Cascade deleted %d orders of customer %d", removed, customer.ID)
	}

	s.metrics.IncDeleted(entityCustomer)
	for i := 0; i < removed; i++ {
		s.metrics.IncDeleted(entityOrder)
	}
	s.publish(ctx, producer.TopicCustomerDeleted, customer.ID, nil)

	return nil
}

// GetPaged returns one page of customers
func (s *customerService) GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Customer], error) {
	return s.customers.GetPaged(ctx, pageNumber, pageSize)
}

// publish sends an entity event; failures are logged and swallowed so
// eventing never fails a request
func (s *customerService) publish(ctx context.Context, topic string, recordID int, record any) {
	if err := s.events.Publish(ctx, topic, entityCustomer, recordID, record); err != nil {
		s.log.Warn("Failed to publish %s event for customer %d: %v", topic, recordID, err)
	}
}
