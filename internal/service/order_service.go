package service

import (
	"context"
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/Dhoini/Tims-microservice/internal/domain"
	"github.com/Dhoini/Tims-microservice/internal/kafka/producer"
	"github.com/Dhoini/Tims-microservice/internal/metrics"
	"github.com/Dhoini/Tims-microservice/internal/repository"
	"github.com/Dhoini/Tims-microservice/internal/validation"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// OrderService drives order operations, including the referential
// check against the customer collection.
type OrderService interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, payload validation.OrderPayload) (domain.Order, error)
	Update(ctx context.Context, id string, payload validation.OrderPayload) (domain.Order, error)
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error)
	GetPagedByCustomer(ctx context.Context, customerID string, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error)
}

type orderService struct {
	orders    repository.OrderRepository
	customers repository.CustomerRepository
	validate  *validatorv10.Validate
	events    producer.RecordProducer
	metrics   metrics.RecordMetrics
	log       *logger.Logger
}

// NewOrderService wires an order service
func NewOrderService(
	orders repository.OrderRepository,
	customers repository.CustomerRepository,
	validate *validatorv10.Validate,
	events producer.RecordProducer,
	recordMetrics metrics.RecordMetrics,
	log *logger.Logger,
) OrderService {
	return &orderService{
		orders:    orders,
		customers: customers,
		validate:  validate,
		events:    events,
		metrics:   recordMetrics,
		log:       log,
	}
}

// GetAll returns every order
func (s *orderService) GetAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.GetAll(ctx)
}

// GetByID returns one order by id
func (s *orderService) GetByID(ctx context.Context, id string) (domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// Create validates and sanitizes the payload, verifies the referenced
// customer exists, backfills the denormalized customer name and stores
// the order. Status defaults to pending.
func (s *orderService) Create(ctx context.Context, payload validation.OrderPayload) (domain.Order, error) {
	if result := validation.ValidateOrder(s.validate, payload); !result.IsValid {
		return domain.Order{}, domain.NewValidationError(result.Errors)
	}

	data := validation.SanitizeOrder(payload)

	customer, err := s.lookupCustomer(ctx, data.CustomerID)
	if err != nil {
		return domain.Order{}, err
	}
	if data.CustomerName == nil {
		data.CustomerName = customer.Name
	}
	if data.Status == nil {
		pending := domain.StatusPending
		data.Status = &pending
	}

	order, err := s.orders.Create(ctx, data)
	if err != nil {
		return domain.Order{}, err
	}

	s.metrics.IncCreated(entityOrder)
	if order.Amount != nil {
		s.metrics.ObserveOrderAmount(*order.Amount, order.Status)
	}
	s.publish(ctx, producer.TopicOrderCreated, order.ID, order)

	return order, nil
}

// Update validates and sanitizes the payload and merges the supplied
// fields onto an existing order. A changed customer reference is
// verified; the stored customer name is left as supplied and may go
// stale relative to the customer record.
func (s *orderService) Update(ctx context.Context, id string, payload validation.OrderPayload) (domain.Order, error) {
	if result := validation.ValidateOrder(s.validate, payload); !result.IsValid {
		return domain.Order{}, domain.NewValidationError(result.Errors)
	}

	data := validation.SanitizeOrder(payload)

	if data.CustomerID != nil {
		if _, err := s.lookupCustomer(ctx, data.CustomerID); err != nil {
			return domain.Order{}, err
		}
	}

	order, err := s.orders.Update(ctx, id, data)
	if err != nil {
		return domain.Order{}, err
	}

	s.metrics.IncUpdated(entityOrder)
	s.publish(ctx, producer.TopicOrderUpdated, order.ID, order)

	return order, nil
}

// Delete removes one order
func (s *orderService) Delete(ctx context.Context, id string) error {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.orders.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.IncDeleted(entityOrder)
	s.publish(ctx, producer.TopicOrderDeleted, order.ID, nil)

	return nil
}

// GetPaged returns one page of orders
func (s *orderService) GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error) {
	return s.orders.GetPaged(ctx, pageNumber, pageSize)
}

// GetPagedByCustomer returns one page of the orders belonging to the
// given customer. The customer must exist.
func (s *orderService) GetPagedByCustomer(ctx context.Context, customerID string, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		return domain.PagedResult[domain.Order]{}, domain.ErrCustomerNotFound
	}

	return s.orders.GetByCustomerID(ctx, customerID, pageNumber, pageSize)
}

// lookupCustomer resolves a sanitized customer reference, mapping any
// miss to ErrCustomerNotFound
func (s *orderService) lookupCustomer(ctx context.Context, customerID *int) (domain.Customer, error) {
	if customerID == nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	customer, err := s.customers.GetByID(ctx, strconv.Itoa(*customerID))
	if err != nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return customer, nil
}

// publish sends an entity event; failures are logged and swallowed
func (s *orderService) publish(ctx context.Context, topic string, recordID int, record any) {
	if err := s.events.Publish(ctx, topic, entityOrder, recordID, record); err != nil {
		s.log.Warn("Failed to publish %s event for order %d: %v", topic, recordID, err)
	}
}
