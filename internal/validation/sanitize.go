package validation

import "github.com/Dhoini/Tims-microservice/internal/domain"

// SanitizeCustomer coerces a validated payload into the canonical
// customer input shape. Absent and empty values come out as nil.
// Sanitize never re-validates; callers run ValidateCustomer first.
func SanitizeCustomer(payload CustomerPayload) domain.CustomerData {
	return domain.CustomerData{
		Name:    optString(payload.Name),
		Email:   optString(payload.Email),
		Phone:   optString(payload.Phone),
		Address: optString(payload.Address),
	}
}

// SanitizeOrder coerces a validated payload into the canonical order
// input shape, parsing numeric-looking strings into their numeric
// types.
func SanitizeOrder(payload OrderPayload) domain.OrderData {
	return domain.OrderData{
		CustomerID:   optID(payload.CustomerID),
		CustomerName: optString(payload.CustomerName),
		ProductName:  optString(payload.ProductName),
		Quantity:     optInt(payload.Quantity),
		Amount:       optFloat(payload.Amount),
		OrderDate:    optString(payload.OrderDate),
		Status:       optString(payload.Status),
		OrderNumber:  optString(payload.OrderNumber),
	}
}

// optString keeps non-empty string values
func optString(value any) *string {
	if s, ok := value.(string); ok && s != "" {
		return &s
	}
	return nil
}

// optID keeps integer-coercible, non-zero values. Ids start at 1, so
// zero sanitizes to absent and never survives a merge.
func optID(value any) *int {
	if value == nil {
		return nil
	}
	if n, ok := intValue(value); ok && n != 0 {
		return &n
	}
	return nil
}

// optInt keeps integer-coercible values, zero included
func optInt(value any) *int {
	if value == nil {
		return nil
	}
	if n, ok := intValue(value); ok {
		return &n
	}
	return nil
}

// optFloat keeps number-coercible values
func optFloat(value any) *float64 {
	if value == nil {
		return nil
	}
	if f, ok := floatValue(value); ok {
		return &f
	}
	return nil
}
