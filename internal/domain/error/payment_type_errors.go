// Package error defines domain-specific errors for the bookkeeping API.
package error

import "errors"

// Payment type domain errors.
var (
	// ErrPaymentTypeNotFound is returned when a payment type is not found in the system.
	ErrPaymentTypeNotFound = errors.New("payment type not found")

	// ErrNotAuthorizedToModifyPaymentType is returned when user is not authorized to modify a payment type.
	ErrNotAuthorizedToModifyPaymentType = errors.New("not authorized to modify payment type")
)

// PaymentTypeErrorCode defines error codes for payment type errors.
// Format: PT-XXYYYY where XX is category and YYYY is specific error.
type PaymentTypeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingPaymentTypeName PaymentTypeErrorCode = "PT-010001"

	// Lookup errors (03XXXX)
	ErrCodePaymentTypeNotFound      PaymentTypeErrorCode = "PT-030001"
	ErrCodeNotAuthorizedPaymentType PaymentTypeErrorCode = "PT-030002"
)

// PaymentTypeError represents a payment type error with code and message.
type PaymentTypeError struct {
	Code    PaymentTypeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentTypeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentTypeError) Unwrap() error {
	return e.Err
}

// NewPaymentTypeError creates a new PaymentTypeError with the given code and message.
func NewPaymentTypeError(code PaymentTypeErrorCode, message string, err error) *PaymentTypeError {
	return &PaymentTypeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
