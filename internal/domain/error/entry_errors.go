// Package error defines domain-specific errors for the bookkeeping API.
package error

import "errors"

// Entry domain errors.
var (
	// ErrEntryNotFound is returned when an entry is not found in the system.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrInvalidPeriod is returned when the entry period is not in YYYY-MM form.
	ErrInvalidPeriod = errors.New("invalid period: expected YYYY-MM")

	// ErrCategoryNotOwnedByUser is returned when the referenced category does not belong to the user.
	ErrCategoryNotOwnedByUser = errors.New("category does not belong to user")

	// ErrPaymentTypeNotOwnedByUser is returned when the referenced payment type does not belong to the user.
	ErrPaymentTypeNotOwnedByUser = errors.New("payment type does not belong to user")

	// ErrNotAuthorizedToModifyEntry is returned when user is not authorized to modify an entry.
	ErrNotAuthorizedToModifyEntry = errors.New("not authorized to modify entry")
)

// EntryErrorCode defines error codes for entry errors.
// Format: ENT-XXYYYY where XX is category and YYYY is specific error.
type EntryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod      EntryErrorCode = "ENT-010001"
	ErrCodeMissingEntryFields EntryErrorCode = "ENT-010002"

	// Dependency errors (02XXXX)
	ErrCodeEntryCategoryNotFound    EntryErrorCode = "ENT-020001"
	ErrCodeEntryPaymentTypeNotFound EntryErrorCode = "ENT-020002"

	// Lookup errors (03XXXX)
	ErrCodeEntryNotFound      EntryErrorCode = "ENT-030001"
	ErrCodeNotAuthorizedEntry EntryErrorCode = "ENT-030002"
)

// EntryError represents an entry error with code and message.
type EntryError struct {
	Code    EntryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// NewEntryError creates a new EntryError with the given code and message.
func NewEntryError(code EntryErrorCode, message string, err error) *EntryError {
	return &EntryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
