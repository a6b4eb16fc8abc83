package domain

import "time"

// Customer represents a stored customer record. Optional fields are
// pointers so absent values serialize as JSON null, matching the wire
// contract of the records API.
type Customer struct {
	ID        int       `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerData is the canonical sanitized input shape for customer
// create/update. A nil field was not supplied by the caller and is
// stored as null on create and left untouched on update.
type CustomerData struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}
