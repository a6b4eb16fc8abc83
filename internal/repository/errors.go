package repository

import "github.com/Dhoini/Tims-microservice/internal/domain"

// Repository errors
var (
	// ErrNotFound no record matches the given id. Malformed ids fail
	// to match and report the same error.
	ErrNotFound = domain.ErrNotFound
)
