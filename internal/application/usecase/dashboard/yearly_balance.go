// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetYearlyBalanceInput represents the input for the yearly balance.
type GetYearlyBalanceInput struct {
	UserID uuid.UUID
	Year   int
}

// MonthBucket is one calendar month's income and expense, rounded to two
// decimal places.
type MonthBucket struct {
	Month   valueobject.Period `json:"month"`
	Income  decimal.Decimal    `json:"income"`
	Expense decimal.Decimal    `json:"expense"`
}

// GetYearlyBalanceOutput represents the output of the yearly balance.
type GetYearlyBalanceOutput struct {
	Months []MonthBucket
}

// GetYearlyBalanceUseCase computes twelve monthly income/expense buckets for
// a year. Months without entries produce zero buckets.
type GetYearlyBalanceUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetYearlyBalanceUseCase creates a new GetYearlyBalanceUseCase instance.
func NewGetYearlyBalanceUseCase(dashboardRepo DashboardRepository) *GetYearlyBalanceUseCase {
	return &GetYearlyBalanceUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the yearly balance buckets.
func (uc *GetYearlyBalanceUseCase) Execute(ctx context.Context, input GetYearlyBalanceInput) (*GetYearlyBalanceOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	rows, err := uc.dashboardRepo.TypeTotalsByMonth(ctx, input.UserID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}

	byPeriod := make(map[valueobject.Period]MonthTypeTotals, len(rows))
	for _, row := range rows {
		byPeriod[row.Period] = row
	}

	months := make([]MonthBucket, 0, 12)
	for month := time.January; month <= time.December; month++ {
		period := valueobject.NewPeriod(input.Year, month)
		row := byPeriod[period]
		months = append(months, MonthBucket{
			Month:   period,
			Income:  row.Income.Round(2),
			Expense: row.Expense.Round(2),
		})
	}

	return &GetYearlyBalanceOutput{Months: months}, nil
}
