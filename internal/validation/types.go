package validation

// CustomerPayload is the raw body of customer create/update requests.
// Fields are untyped so that a wrongly typed value reaches validation
// as an itemized error instead of failing the JSON bind wholesale.
type CustomerPayload struct {
	Name    any `json:"name"`
	Email   any `json:"email"`
	Phone   any `json:"phone"`
	Address any `json:"address"`
}

// OrderPayload is the raw body of order create/update requests.
// CustomerId is the only mandatory field; numeric fields accept
// numeric-looking strings and are coerced during sanitization.
type OrderPayload struct {
	CustomerID   any `json:"customerId"`
	CustomerName any `json:"customerName"`
	ProductName  any `json:"productName"`
	Quantity     any `json:"quantity"`
	Amount       any `json:"amount"`
	OrderDate    any `json:"orderDate"`
	Status       any `json:"status"`
	OrderNumber  any `json:"orderNumber"`
}

// Result is the outcome of validating a payload
type Result struct {
	IsValid bool
	Errors  []string
}
