package validation

import (
	"fmt"
	"math"
	"strconv"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Validation tags reported by the struct-level checks
const (
	tagRequired = "required"
	tagString   = "string_type"
	tagInteger  = "int_type"
	tagNumber   = "number_type"
)

// New returns a configured validator with the per-entity struct-level
// validations registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	v.RegisterStructValidation(customerPayloadValidation, CustomerPayload{})
	v.RegisterStructValidation(orderPayloadValidation, OrderPayload{})

	return v
}

// ValidateCustomer checks field types of a customer payload. Rules are
// type checks only; required-name enforcement is a UI concern.
func ValidateCustomer(v *validatorv10.Validate, payload CustomerPayload) Result {
	return toResult(v.Struct(payload))
}

// ValidateOrder checks field types and CustomerId presence of an order
// payload.
func ValidateOrder(v *validatorv10.Validate, payload OrderPayload) Result {
	return toResult(v.Struct(payload))
}

// customerPayloadValidation reports a type error for every optional
// field that is present but not a string.
func customerPayloadValidation(sl validatorv10.StructLevel) {
	p := sl.Current().Interface().(CustomerPayload)

	checkString(sl, p.Name, "Name")
	checkString(sl, p.Email, "Email")
	checkString(sl, p.Phone, "Phone")
	checkString(sl, p.Address, "Address")
}

// orderPayloadValidation reports presence of CustomerId and the type
// of every supplied field.
func orderPayloadValidation(sl validatorv10.StructLevel) {
	p := sl.Current().Interface().(OrderPayload)

	if p.CustomerID == nil {
		sl.ReportError(p.CustomerID, "CustomerId", "CustomerID", tagRequired, "")
	} else if _, ok := intValue(p.CustomerID); !ok {
		sl.ReportError(p.CustomerID, "CustomerId", "CustomerID", tagInteger, "")
	}

	checkString(sl, p.CustomerName, "CustomerName")
	checkString(sl, p.ProductName, "ProductName")

	if p.Quantity != nil {
		if _, ok := intValue(p.Quantity); !ok {
			sl.ReportError(p.Quantity, "Quantity", "Quantity", tagInteger, "")
		}
	}
	if p.Amount != nil {
		if _, ok := floatValue(p.Amount); !ok {
			sl.ReportError(p.Amount, "Amount", "Amount", tagNumber, "")
		}
	}

	checkString(sl, p.OrderDate, "OrderDate")
	checkString(sl, p.Status, "Status")
	checkString(sl, p.OrderNumber, "OrderNumber")
}

// checkString reports a type error when the value is present and not a
// string
func checkString(sl validatorv10.StructLevel, value any, field string) {
	if value == nil {
		return
	}
	if _, ok := value.(string); !ok {
		sl.ReportError(value, field, field, tagString, "")
	}
}

// intValue coerces a JSON value into an integer. JSON numbers arrive
// as float64 and must carry an integral value; numeric strings are
// parsed the same way.
func intValue(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return int(v), true
		}
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil && f == math.Trunc(f) {
			return int(f), true
		}
	case int:
		return v, true
	}
	return 0, false
}

// floatValue coerces a JSON value into a float
func floatValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f, true
		}
	case int:
		return float64(v), true
	}
	return 0, false
}

// toResult converts validator errors into the human-readable message
// list of the API contract
func toResult(err error) Result {
	if err == nil {
		return Result{IsValid: true}
	}

	var messages []string
	if ve, ok := err.(validatorv10.ValidationErrors); ok {
		for _, fe := range ve {
			messages = append(messages, messageFor(fe))
		}
	} else {
		messages = append(messages, err.Error())
	}

	return Result{IsValid: false, Errors: messages}
}

// messageFor renders one field error as a client-facing message
func messageFor(fe validatorv10.FieldError) string {
	switch fe.Tag() {
	case tagRequired:
		return fmt.Sprintf("%s is required", fe.Field())
	case tagString:
		return fmt.Sprintf("%s must be a string", fe.Field())
	case tagInteger:
		return fmt.Sprintf("%s must be an integer", fe.Field())
	case tagNumber:
		return fmt.Sprintf("%s must be a number", fe.Field())
	}
	return fe.Error()
}
