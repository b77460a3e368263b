// Package error defines domain-specific errors for the bookkeeping API.
package error

import "errors"

// Recurring entry domain errors.
var (
	// ErrRecurringEntryNotFound is returned when a recurring entry is not found in the system.
	ErrRecurringEntryNotFound = errors.New("recurring entry not found")

	// ErrInvalidFrequency is returned when the frequency is not daily, weekly, monthly or yearly.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrPaymentTypeRequired is returned when a recurring expense entry has no payment type.
	ErrPaymentTypeRequired = errors.New("recurring entries for expense categories require a payment type")

	// ErrNotAuthorizedToModifyRecurringEntry is returned when user is not authorized to modify a recurring entry.
	ErrNotAuthorizedToModifyRecurringEntry = errors.New("not authorized to modify recurring entry")
)

// RecurringEntryErrorCode defines error codes for recurring entry errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringEntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency       RecurringEntryErrorCode = "REC-010001"
	ErrCodePaymentTypeRequired    RecurringEntryErrorCode = "REC-010002"
	ErrCodeMissingRecurringFields RecurringEntryErrorCode = "REC-010003"

	// Dependency errors (02XXXX)
	ErrCodeRecurringCategoryNotFound    RecurringEntryErrorCode = "REC-020001"
	ErrCodeRecurringPaymentTypeNotFound RecurringEntryErrorCode = "REC-020002"

	// Lookup errors (03XXXX)
	ErrCodeRecurringEntryNotFound      RecurringEntryErrorCode = "REC-030001"
	ErrCodeNotAuthorizedRecurringEntry RecurringEntryErrorCode = "REC-030002"
)

// RecurringEntryError represents a recurring entry error with code and message.
type RecurringEntryError struct {
	Code    RecurringEntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringEntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringEntryError) Unwrap() error {
	return e.Err
}

// NewRecurringEntryError creates a new RecurringEntryError with the given code and message.
func NewRecurringEntryError(code RecurringEntryErrorCode, message string, err error) *RecurringEntryError {
	return &RecurringEntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
