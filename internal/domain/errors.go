package domain

import (
	"errors"
	"strings"
)

// Application errors
var (
	// ErrNotFound record not found
	ErrNotFound = errors.New("record not found")

	// ErrCustomerNotFound referenced customer does not exist
	ErrCustomerNotFound = errors.New("customer not found")
)

// ValidationError carries the itemized messages produced by payload
// validation. It maps to a 400 response with the error list.
type ValidationError struct {
	Errors []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError creates a validation error from a message list
func NewValidationError(errs []string) *ValidationError {
	return &ValidationError{Errors: errs}
}
