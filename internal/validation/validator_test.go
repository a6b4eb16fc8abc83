package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCustomer(t *testing.T) {
	v := New()

	t.Run("empty payload is valid", func(t *testing.T) {
		result := ValidateCustomer(v, CustomerPayload{})
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("string fields pass", func(t *testing.T) {
		result := ValidateCustomer(v, CustomerPayload{
			Name:    "Acme Corp",
			Email:   "info@acme.test",
			Phone:   "555-0100",
			Address: "1 Main St",
		})
		assert.True(t, result.IsValid)
	})

	t.Run("non-string fields are itemized", func(t *testing.T) {
		result := ValidateCustomer(v, CustomerPayload{
			Name:  float64(123),
			Email: true,
		})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Name must be a string")
		assert.Contains(t, result.Errors, "Email must be a string")
		assert.Len(t, result.Errors, 2)
	})
}

func TestValidateOrder(t *testing.T) {
	v := New()

	t.Run("customerId is mandatory", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "CustomerId is required")
	})

	t.Run("minimal valid payload", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{CustomerID: float64(1)})
		assert.True(t, result.IsValid)
	})

	t.Run("numeric strings are accepted for numeric fields", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{
			CustomerID: "1",
			Quantity:   "5",
			Amount:     "99.5",
		})
		assert.True(t, result.IsValid)
	})

	t.Run("fractional quantity is rejected", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{
			CustomerID: float64(1),
			Quantity:   float64(1.5),
		})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Quantity must be an integer")
	})

	t.Run("non-numeric customerId", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{CustomerID: "abc"})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "CustomerId must be an integer")
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{
			CustomerID: float64(1),
			Amount:     "lots",
		})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "Amount must be a number")
	})

	t.Run("every bad field yields its own message", func(t *testing.T) {
		result := ValidateOrder(v, OrderPayload{
			ProductName: float64(7),
			Quantity:    "abc",
			Status:      false,
		})

		require.False(t, result.IsValid)
		assert.Contains(t, result.Errors, "CustomerId is required")
		assert.Contains(t, result.Errors, "ProductName must be a string")
		assert.Contains(t, result.Errors, "Quantity must be an integer")
		assert.Contains(t, result.Errors, "Status must be a string")
		assert.Len(t, result.Errors, 4)
	})
}

func TestIntValue(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected int
		ok       bool
	}{
		{"integral float", float64(42), 42, true},
		{"zero", float64(0), 0, true},
		{"fractional float", float64(1.5), 0, false},
		{"numeric string", "7", 7, true},
		{"float string with integral value", "7.0", 7, true},
		{"non-numeric string", "abc", 0, false},
		{"bool", true, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := intValue(tt.value)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, n)
			}
		})
	}
}
