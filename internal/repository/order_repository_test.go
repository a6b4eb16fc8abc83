package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dhoini/Tims-microservice/internal/domain"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func TestOrderRepositoryCreateDefaultsOrderNumber(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	t.Run("generated from the assigned id", func(t *testing.T) {
		order, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, "ORD-1", order.OrderNumber)
	})

	t.Run("supplied number wins", func(t *testing.T) {
		order, err := repo.Create(ctx, domain.OrderData{
			CustomerID:  intPtr(1),
			OrderNumber: strPtr("ORD-CUSTOM"),
		})
		require.NoError(t, err)
		assert.Equal(t, "ORD-CUSTOM", order.OrderNumber)
	})
}

func TestOrderRepositoryCreateStoresFields(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())

	order, err := repo.Create(context.Background(), domain.OrderData{
		CustomerID:   intPtr(3),
		CustomerName: strPtr("Acme"),
		ProductName:  strPtr("Widget"),
		Quantity:     intPtr(5),
		Amount:       floatPtr(99.5),
		OrderDate:    strPtr("2026-08-01"),
		Status:       strPtr(domain.StatusPending),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, order.ID)
	assert.Equal(t, 3, order.CustomerID)
	assert.Equal(t, "Acme", *order.CustomerName)
	assert.Equal(t, "Widget", *order.ProductName)
	assert.Equal(t, 5, *order.Quantity)
	assert.Equal(t, 99.5, *order.Amount)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestOrderRepositoryUpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.OrderData{
		CustomerID:  intPtr(1),
		ProductName: strPtr("Widget"),
		Quantity:    intPtr(5),
		Status:      strPtr(domain.StatusPending),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "1", domain.OrderData{
		Status: strPtr(domain.StatusCompleted),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, "Widget", *updated.ProductName)
	assert.Equal(t, 5, *updated.Quantity)
	assert.Equal(t, "ORD-1", updated.OrderNumber)
}

func TestOrderRepositoryUpdateAcceptsZeroQuantity(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(1), Quantity: intPtr(5)})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "1", domain.OrderData{Quantity: intPtr(0)})
	require.NoError(t, err)

	require.NotNil(t, updated.Quantity)
	assert.Equal(t, 0, *updated.Quantity)
}

func TestOrderRepositoryGetByCustomerID(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	for _, customerID := range []int{1, 2, 1, 1, 2} {
		_, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(customerID)})
		require.NoError(t, err)
	}

	t.Run("only the customer's orders, insertion order", func(t *testing.T) {
		result, err := repo.GetByCustomerID(ctx, "1", 1, 10)
		require.NoError(t, err)

		require.Len(t, result.Data, 3)
		assert.Equal(t, 3, result.TotalCount)
		assert.Equal(t, []int{1, 3, 4}, []int{result.Data[0].ID, result.Data[1].ID, result.Data[2].ID})
	})

	t.Run("paged window", func(t *testing.T) {
		result, err := repo.GetByCustomerID(ctx, "1", 2, 2)
		require.NoError(t, err)

		require.Len(t, result.Data, 1)
		assert.Equal(t, 4, result.Data[0].ID)
		assert.Equal(t, 2, result.TotalPages)
	})

	t.Run("unknown customer yields an empty page", func(t *testing.T) {
		result, err := repo.GetByCustomerID(ctx, "99", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, 0, result.TotalCount)
	})

	t.Run("malformed customer id matches nothing", func(t *testing.T) {
		result, err := repo.GetByCustomerID(ctx, "abc", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, result.Data)
	})
}

func TestOrderRepositoryDeleteByCustomerID(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	for _, customerID := range []int{1, 2, 1} {
		_, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(customerID)})
		require.NoError(t, err)
	}

	removed, err := repo.DeleteByCustomerID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 2, remaining[0].CustomerID)

	removed, err = repo.DeleteByCustomerID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
}

func TestOrderRepositoryDelete(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(1)})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "1"))
	assert.ErrorIs(t, repo.Delete(ctx, "1"), ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "not-a-number"), ErrNotFound)
}

func TestOrderRepositoryGetPaged(t *testing.T) {
	repo := NewInMemoryOrderRepository(testLogger())
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		_, err := repo.Create(ctx, domain.OrderData{CustomerID: intPtr(1)})
		require.NoError(t, err)
	}

	result, err := repo.GetPaged(ctx, 3, 3)
	require.NoError(t, err)

	assert.Len(t, result.Data, 1)
	assert.Equal(t, 7, result.TotalCount)
	assert.Equal(t, 3, result.TotalPages)
}
