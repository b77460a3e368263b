// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// DashboardRepository defines the read-only aggregate queries the dashboard
// use cases are built on. Implementations group and sum entries in the
// store; the use cases turn the raw rows into dashboard figures.
type DashboardRepository interface {
	// TypeTotalsForPeriod returns the summed income and expense amounts for
	// one accounting month.
	TypeTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) (*TypeTotals, error)

	// TypeTotalsByMonth returns per-month income and expense sums for every
	// period of the given year that has entries.
	TypeTotalsByMonth(ctx context.Context, userID uuid.UUID, year int) ([]MonthTypeTotals, error)

	// TypeTotalsAllTime returns the summed income and expense amounts over
	// the user's whole history.
	TypeTotalsAllTime(ctx context.Context, userID uuid.UUID) (*TypeTotals, error)

	// CategoryTotalsForPeriod returns per-category sums for one accounting
	// month. Categories without activity that month produce no row.
	CategoryTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) ([]RawCategoryTotal, error)

	// ExpenseTotalsByPeriod returns per-month expense sums for every period
	// on or after from that has expense entries.
	ExpenseTotalsByPeriod(ctx context.Context, userID uuid.UUID, from valueobject.Period) ([]PeriodTotal, error)

	// PaymentTypeTotalsForPeriod returns per-payment-type sums for one
	// accounting month. Entries without a payment type come back with a nil
	// name.
	PaymentTypeTotalsForPeriod(ctx context.Context, userID uuid.UUID, period valueobject.Period) ([]RawPaymentTypeTotal, error)
}

// TypeTotals holds summed income and expense amounts.
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance returns income minus expense.
func (t TypeTotals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// MonthTypeTotals is one month's income and expense sums.
type MonthTypeTotals struct {
	Period  valueobject.Period
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// RawCategoryTotal is one category's sum for a month.
type RawCategoryTotal struct {
	CategoryID   uuid.UUID
	CategoryName string
	Type         entity.CategoryType
	Total        decimal.Decimal
}

// PeriodTotal is one month's sum.
type PeriodTotal struct {
	Period valueobject.Period
	Total  decimal.Decimal
}

// RawPaymentTypeTotal is one payment type's sum for a month. Name is nil for
// entries recorded without a payment type.
type RawPaymentTypeTotal struct {
	PaymentTypeName *string
	Total           decimal.Decimal
}
