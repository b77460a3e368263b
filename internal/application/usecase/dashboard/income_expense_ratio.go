// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetIncomeExpenseRatioInput represents the input for the income/expense ratio.
type GetIncomeExpenseRatioInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetIncomeExpenseRatioOutput represents the output of the income/expense ratio.
type GetIncomeExpenseRatioOutput struct {
	Ratio float64
}

// GetIncomeExpenseRatioUseCase computes income divided by expense for one
// month. A month without expenses yields +Inf.
type GetIncomeExpenseRatioUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetIncomeExpenseRatioUseCase creates a new GetIncomeExpenseRatioUseCase instance.
func NewGetIncomeExpenseRatioUseCase(dashboardRepo DashboardRepository) *GetIncomeExpenseRatioUseCase {
	return &GetIncomeExpenseRatioUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the ratio.
func (uc *GetIncomeExpenseRatioUseCase) Execute(ctx context.Context, input GetIncomeExpenseRatioInput) (*GetIncomeExpenseRatioOutput, error) {
	month, err := validateYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	period := valueobject.NewPeriod(input.Year, month)

	totals, err := uc.dashboardRepo.TypeTotalsForPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get month totals: %w", err)
	}

	if totals.Expense.IsZero() {
		return &GetIncomeExpenseRatioOutput{Ratio: math.Inf(1)}, nil
	}

	ratio, _ := totals.Income.Div(totals.Expense).Float64()
	return &GetIncomeExpenseRatioOutput{Ratio: ratio}, nil
}
