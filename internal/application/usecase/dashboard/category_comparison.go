// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetCategoryComparisonInput represents the input for the category comparison.
type GetCategoryComparisonInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// HighestCategory is the top category of a type for a month, with the
// percentage change against the previous month's top category of the same
// type. When no category has activity the name is empty and the amount zero.
type HighestCategory struct {
	Category         string          `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}

// GetCategoryComparisonOutput represents the output of the category comparison.
type GetCategoryComparisonOutput struct {
	HighestIncome  HighestCategory
	HighestExpense HighestCategory
}

// GetCategoryComparisonUseCase finds the month's highest income and highest
// expense categories and compares their amounts against the previous month.
// A zero previous amount yields a change of 100 when the current amount is
// positive and 0 otherwise.
type GetCategoryComparisonUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetCategoryComparisonUseCase creates a new GetCategoryComparisonUseCase instance.
func NewGetCategoryComparisonUseCase(dashboardRepo DashboardRepository) *GetCategoryComparisonUseCase {
	return &GetCategoryComparisonUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the category comparison.
func (uc *GetCategoryComparisonUseCase) Execute(ctx context.Context, input GetCategoryComparisonInput) (*GetCategoryComparisonOutput, error) {
	month, err := validateYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	period := valueobject.NewPeriod(input.Year, month)
	previousPeriod := period.Previous()

	currentIncome, currentExpense, err := uc.highestForPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, err
	}
	previousIncome, previousExpense, err := uc.highestForPeriod(ctx, input.UserID, previousPeriod)
	if err != nil {
		return nil, err
	}

	return &GetCategoryComparisonOutput{
		HighestIncome: HighestCategory{
			Category:         currentIncome.name,
			Amount:           currentIncome.amount,
			PercentageChange: percentageChange(currentIncome.amount, previousIncome.amount),
		},
		HighestExpense: HighestCategory{
			Category:         currentExpense.name,
			Amount:           currentExpense.amount,
			PercentageChange: percentageChange(currentExpense.amount, previousExpense.amount),
		},
	}, nil
}

type topCategory struct {
	name   string
	amount decimal.Decimal
}

// highestForPeriod picks the category with the largest sum per type. Only
// sums above the zero default can win, so a month of refunds (negative
// totals) reports no top category rather than the least negative one.
func (uc *GetCategoryComparisonUseCase) highestForPeriod(
	ctx context.Context,
	userID uuid.UUID,
	period valueobject.Period,
) (topCategory, topCategory, error) {
	rows, err := uc.dashboardRepo.CategoryTotalsForPeriod(ctx, userID, period)
	if err != nil {
		return topCategory{}, topCategory{}, fmt.Errorf("failed to get category totals: %w", err)
	}

	income := topCategory{amount: decimal.Zero}
	expense := topCategory{amount: decimal.Zero}

	for _, row := range rows {
		switch row.Type {
		case entity.CategoryTypeIncome:
			if row.Total.GreaterThan(income.amount) {
				income = topCategory{name: row.CategoryName, amount: row.Total}
			}
		case entity.CategoryTypeExpense:
			if row.Total.GreaterThan(expense.amount) {
				expense = topCategory{name: row.CategoryName, amount: row.Total}
			}
		}
	}

	return income, expense, nil
}

// percentageChange leans positive on a zero base: a fresh amount counts as a
// 100 percent increase, no amount at all as no change.
func percentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return decimal.NewFromInt(100)
		}
		return decimal.Zero
	}
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
