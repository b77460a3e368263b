// Package error defines domain-specific errors for the bookkeeping API.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when a category with the same name and type exists for the user.
	ErrCategoryAlreadyExists = errors.New("category with the same name and type already exists")

	// ErrInvalidCategoryType is returned when the category type is not income or expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrCostCenterRequired is returned when an expense category is created without a cost center.
	ErrCostCenterRequired = errors.New("expense categories require a cost center")

	// ErrCostCenterNotAllowed is returned when an income category references a cost center.
	ErrCostCenterNotAllowed = errors.New("income categories must not reference a cost center")

	// ErrCategoryHasEntries is returned when deleting a category that entries still reference.
	ErrCategoryHasEntries = errors.New("category is linked to one or more entries")

	// ErrNotAuthorizedToModifyCategory is returned when user is not authorized to modify a category.
	ErrNotAuthorizedToModifyCategory = errors.New("not authorized to modify category")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCategoryType   CategoryErrorCode = "CAT-010001"
	ErrCodeCostCenterRequired    CategoryErrorCode = "CAT-010002"
	ErrCodeCostCenterNotAllowed  CategoryErrorCode = "CAT-010003"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010004"

	// Conflict errors (02XXXX)
	ErrCodeCategoryExists     CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryHasEntries CategoryErrorCode = "CAT-020002"

	// Lookup errors (03XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-030001"
	ErrCodeNotAuthorizedCategory CategoryErrorCode = "CAT-030002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
