package domain

import "time"

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Order represents a stored order record. CustomerName is a
// denormalized copy of the referenced customer's name taken at write
// time; it is allowed to go stale if the customer is later renamed.
type Order struct {
	ID           int       `json:"id"`
	OrderNumber  string    `json:"orderNumber"`
	CustomerID   int       `json:"customerId"`
	CustomerName *string   `json:"customerName"`
	ProductName  *string   `json:"productName"`
	Quantity     *int      `json:"quantity"`
	Amount       *float64  `json:"amount"`
	OrderDate    *string   `json:"orderDate"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OrderData is the canonical sanitized input shape for order
// create/update. Nil means the field was not supplied.
type OrderData struct {
	CustomerID   *int
	CustomerName *string
	ProductName  *string
	Quantity     *int
	Amount       *float64
	OrderDate    *string
	Status       *string
	OrderNumber  *string
}
