// Package error defines domain-specific errors for the bookkeeping API.
package error

import "errors"

// Cost center domain errors.
var (
	// ErrCostCenterNotFound is returned when a cost center is not found in the system.
	ErrCostCenterNotFound = errors.New("cost center not found")

	// ErrCostCenterHasCategories is returned when deleting a cost center that categories still reference.
	ErrCostCenterHasCategories = errors.New("cost center is linked to one or more categories")

	// ErrNotAuthorizedToModifyCostCenter is returned when user is not authorized to modify a cost center.
	ErrNotAuthorizedToModifyCostCenter = errors.New("not authorized to modify cost center")
)

// CostCenterErrorCode defines error codes for cost center errors.
// Format: CC-XXYYYY where XX is category and YYYY is specific error.
type CostCenterErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingCostCenterName CostCenterErrorCode = "CC-010001"

	// Conflict errors (02XXXX)
	ErrCodeCostCenterHasCategories CostCenterErrorCode = "CC-020001"

	// Lookup errors (03XXXX)
	ErrCodeCostCenterNotFound      CostCenterErrorCode = "CC-030001"
	ErrCodeNotAuthorizedCostCenter CostCenterErrorCode = "CC-030002"
)

// CostCenterError represents a cost center error with code and message.
type CostCenterError struct {
	Code    CostCenterErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CostCenterError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CostCenterError) Unwrap() error {
	return e.Err
}

// NewCostCenterError creates a new CostCenterError with the given code and message.
func NewCostCenterError(code CostCenterErrorCode, message string, err error) *CostCenterError {
	return &CostCenterError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
