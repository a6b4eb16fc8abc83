package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dhoini/Tims-microservice/internal/domain"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// OrderRepository defines storage operations for orders
type OrderRepository interface {
	GetAll(ctx context.Context) ([]domain.Order, error)
	GetByID(ctx context.Context, id string) (domain.Order, error)
	Create(ctx context.Context, data domain.OrderData) (domain.Order, error)
	Update(ctx context.Context, id string, data domain.OrderData) (domain.Order, error)
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error)
	GetByCustomerID(ctx context.Context, customerID string, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error)
	DeleteByCustomerID(ctx context.Context, customerID int) (int, error)
}

// InMemoryOrderRepository keeps orders in process memory with the same
// layout as the customer repository: id-keyed map plus insertion-order
// id slice and a monotonic counter.
type InMemoryOrderRepository struct {
	mu      sync.RWMutex
	orders  map[int]domain.Order
	ids     []int
	nextID  int
	nowFunc func() time.Time
	log     *logger.Logger
}

// NewInMemoryOrderRepository creates an empty order repository
func NewInMemoryOrderRepository(log *logger.Logger) *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders:  make(map[int]domain.Order),
		nextID:  1,
		nowFunc: time.Now,
		log:     log,
	}
}

// GetAll returns every order in insertion order as a defensive copy
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

// GetByID returns the order with the given id
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (domain.Order, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Order{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	order, exists := r.orders[n]
	if !exists {
		return domain.Order{}, ErrNotFound
	}

	return order, nil
}

// Create assigns the next id, stamps timestamps and appends the
// record. OrderNumber defaults to "ORD-<id>" when not supplied.
func (r *InMemoryOrderRepository) Create(ctx context.Context, data domain.OrderData) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	order := domain.Order{
		ID:           r.nextID,
		CustomerName: data.CustomerName,
		ProductName:  data.ProductName,
		Quantity:     data.Quantity,
		Amount:       data.Amount,
		OrderDate:    data.OrderDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.nextID++

	if data.CustomerID != nil {
		order.CustomerID = *data.CustomerID
	}
	if data.OrderNumber != nil && *data.OrderNumber != "" {
		order.OrderNumber = *data.OrderNumber
	} else {
		order.OrderNumber = fmt.Sprintf("ORD-%d", order.ID)
	}
	if data.Status != nil {
		order.Status = *data.Status
	}

	r.orders[order.ID] = order
	r.ids = append(r.ids, order.ID)

	return order, nil
}

// Update shallow-merges the supplied fields onto the existing record
// and refreshes UpdatedAt
func (r *InMemoryOrderRepository) Update(ctx context.Context, id string, data domain.OrderData) (domain.Order, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	order, exists := r.orders[n]
	if !exists {
		return domain.Order{}, ErrNotFound
	}

	if data.CustomerID != nil {
		order.CustomerID = *data.CustomerID
	}
	if data.CustomerName != nil {
		order.CustomerName = data.CustomerName
	}
	if data.ProductName != nil {
		order.ProductName = data.ProductName
	}
	if data.Quantity != nil {
		order.Quantity = data.Quantity
	}
	if data.Amount != nil {
		order.Amount = data.Amount
	}
	if data.OrderDate != nil {
		order.OrderDate = data.OrderDate
	}
	if data.Status != nil {
		order.Status = *data.Status
	}
	if data.OrderNumber != nil && *data.OrderNumber != "" {
		order.OrderNumber = *data.OrderNumber
	}
	order.UpdatedAt = r.nowFunc()

	r.orders[n] = order

	return order, nil
}

// Delete removes the order with the given id
func (r *InMemoryOrderRepository) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.orders[n]; !exists {
		return ErrNotFound
	}

	r.remove(n)

	return nil
}

// GetPaged returns one page of orders in insertion order
func (r *InMemoryOrderRepository) GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.PageSlice(r.snapshot(), pageNumber, pageSize), nil
}

// GetByCustomerID returns one page of the orders referencing the given
// customer, in insertion order. A malformed customer id matches no
// records.
func (r *InMemoryOrderRepository) GetByCustomerID(ctx context.Context, customerID string, pageNumber, pageSize int) (domain.PagedResult[domain.Order], error) {
	n, err := parseID(customerID)
	if err != nil {
		return domain.PageSlice([]domain.Order{}, pageNumber, pageSize), nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Order
	for _, id := range r.ids {
		if order := r.orders[id]; order.CustomerID == n {
			matched = append(matched, order)
		}
	}

	return domain.PageSlice(matched, pageNumber, pageSize), nil
}

// DeleteByCustomerID removes every order referencing the given
// customer and reports how many were removed. Used by the customer
// cascade delete.
func (r *InMemoryOrderRepository) DeleteByCustomerID(ctx context.Context, customerID int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doomed []int
	for _, id := range r.ids {
		if r.orders[id].CustomerID == customerID {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		r.remove(id)
	}

	return len(doomed), nil
}

// remove deletes one order. Callers must hold the write lock.
func (r *InMemoryOrderRepository) remove(id int) {
	delete(r.orders, id)
	for i, existing := range r.ids {
		if existing == id {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}
}

// snapshot copies the backing collection in insertion order. Callers
// must hold at least a read lock.
func (r *InMemoryOrderRepository) snapshot() []domain.Order {
	orders := make([]domain.Order, 0, len(r.ids))
	for _, id := range r.ids {
		orders = append(orders, r.orders[id])
	}
	return orders
}
