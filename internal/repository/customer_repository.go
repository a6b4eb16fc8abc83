package repository

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/Dhoini/Tims-microservice/internal/domain"
	"github.com/Dhoini/Tims-microservice/pkg/logger"
)

// CustomerRepository defines storage operations for customers
type CustomerRepository interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (domain.Customer, error)
	Create(ctx context.Context, data domain.CustomerData) (domain.Customer, error)
	Update(ctx context.Context, id string, data domain.CustomerData) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
	GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Customer], error)
}

// InMemoryCustomerRepository keeps customers in process memory.
// Records live in a map keyed by id; the ids slice preserves insertion
// order for listing and paging. Ids are assigned from a monotonic
// counter and never reused within a process lifetime.
type InMemoryCustomerRepository struct {
	mu        sync.RWMutex
	customers map[int]domain.Customer
	ids       []int
	nextID    int
	nowFunc   func() time.Time
	log       *logger.Logger
}

// NewInMemoryCustomerRepository creates an empty customer repository
func NewInMemoryCustomerRepository(log *logger.Logger) *InMemoryCustomerRepository {
	return &InMemoryCustomerRepository{
		customers: make(map[int]domain.Customer),
		nextID:    1,
		nowFunc:   time.Now,
		log:       log,
	}
}

// parseID coerces a string id to an integer. Any malformed id simply
// fails to match a record.
func parseID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, ErrNotFound
	}
	return n, nil
}

// GetAll returns every customer in insertion order as a defensive copy
func (r *InMemoryCustomerRepository) GetAll(ctx context.Context) ([]domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshot(), nil
}

// GetByID returns the customer with the given id
func (r *InMemoryCustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[n]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	return customer, nil
}

// Create assigns the next id, stamps timestamps and appends the record
func (r *InMemoryCustomerRepository) Create(ctx context.Context, data domain.CustomerData) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	customer := domain.Customer{
		ID:        r.nextID,
		Name:      data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.nextID++

	r.customers[customer.ID] = customer
	r.ids = append(r.ids, customer.ID)

	return customer, nil
}

// Update shallow-merges the supplied fields onto the existing record
// and refreshes UpdatedAt. Fields the caller did not supply are left
// untouched.
func (r *InMemoryCustomerRepository) Update(ctx context.Context, id string, data domain.CustomerData) (domain.Customer, error) {
	n, err := parseID(id)
	if err != nil {
		return domain.Customer{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	customer, exists := r.customers[n]
	if !exists {
		return domain.Customer{}, ErrNotFound
	}

	if data.Name != nil {
		customer.Name = data.Name
	}
	if data.Email != nil {
		customer.Email = data.Email
	}
	if data.Phone != nil {
		customer.Phone = data.Phone
	}
	if data.Address != nil {
		customer.Address = data.Address
	}
	customer.UpdatedAt = r.nowFunc()

	r.customers[n] = customer

	return customer, nil
}

// Delete removes the customer with the given id
func (r *InMemoryCustomerRepository) Delete(ctx context.Context, id string) error {
	n, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[n]; !exists {
		return ErrNotFound
	}

	delete(r.customers, n)
	for i, existing := range r.ids {
		if existing == n {
			r.ids = append(r.ids[:i], r.ids[i+1:]...)
			break
		}
	}

	return nil
}

// GetPaged returns one page of customers in insertion order
func (r *InMemoryCustomerRepository) GetPaged(ctx context.Context, pageNumber, pageSize int) (domain.PagedResult[domain.Customer], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.PageSlice(r.snapshot(), pageNumber, pageSize), nil
}

// snapshot copies the backing collection in insertion order. Callers
// must hold at least a read lock.
func (r *InMemoryCustomerRepository) snapshot() []domain.Customer {
	customers := make([]domain.Customer, 0, len(r.ids))
	for _, id := range r.ids {
		customers = append(customers, r.customers[id])
	}
	return customers
}
