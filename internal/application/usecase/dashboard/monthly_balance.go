// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetMonthlyBalanceInput represents the input for the monthly balance.
type GetMonthlyBalanceInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetMonthlyBalanceOutput represents the output of the monthly balance.
type GetMonthlyBalanceOutput struct {
	CurrentBalance   decimal.Decimal
	PreviousBalance  decimal.Decimal
	PercentageChange decimal.Decimal
}

// GetMonthlyBalanceUseCase computes a month's balance (income minus expense)
// together with the previous month's balance and the percentage change
// between them. A zero previous balance yields a zero percentage change.
type GetMonthlyBalanceUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetMonthlyBalanceUseCase creates a new GetMonthlyBalanceUseCase instance.
func NewGetMonthlyBalanceUseCase(dashboardRepo DashboardRepository) *GetMonthlyBalanceUseCase {
	return &GetMonthlyBalanceUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the monthly balance with its trend.
func (uc *GetMonthlyBalanceUseCase) Execute(ctx context.Context, input GetMonthlyBalanceInput) (*GetMonthlyBalanceOutput, error) {
	month, err := validateYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	period := valueobject.NewPeriod(input.Year, month)
	previousPeriod := period.Previous()

	current, err := uc.dashboardRepo.TypeTotalsForPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get current month totals: %w", err)
	}

	previous, err := uc.dashboardRepo.TypeTotalsForPeriod(ctx, input.UserID, previousPeriod)
	if err != nil {
		return nil, fmt.Errorf("failed to get previous month totals: %w", err)
	}

	currentBalance := current.Balance()
	previousBalance := previous.Balance()

	percentageChange := decimal.Zero
	if !previousBalance.IsZero() {
		percentageChange = currentBalance.Sub(previousBalance).
			Div(previousBalance.Abs()).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return &GetMonthlyBalanceOutput{
		CurrentBalance:   currentBalance,
		PreviousBalance:  previousBalance,
		PercentageChange: percentageChange,
	}, nil
}
