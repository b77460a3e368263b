// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"time"

	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidYear,
			"year must be between 1 and 9999",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}

func validateMonth(month int) error {
	if month < 1 || month > 12 {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	return nil
}

func validateYearMonth(year, month int) (time.Month, error) {
	if err := validateYear(year); err != nil {
		return 0, err
	}
	if err := validateMonth(month); err != nil {
		return 0, err
	}
	return time.Month(month), nil
}
