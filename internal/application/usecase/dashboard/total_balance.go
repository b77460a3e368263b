// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GetTotalBalanceInput represents the input for the total balance.
type GetTotalBalanceInput struct {
	UserID uuid.UUID
}

// GetTotalBalanceOutput represents the output of the total balance.
type GetTotalBalanceOutput struct {
	Balance decimal.Decimal
}

// GetTotalBalanceUseCase computes the user's all-time balance, income minus
// expense over every entry ever recorded.
type GetTotalBalanceUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetTotalBalanceUseCase creates a new GetTotalBalanceUseCase instance.
func NewGetTotalBalanceUseCase(dashboardRepo DashboardRepository) *GetTotalBalanceUseCase {
	return &GetTotalBalanceUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the total balance.
func (uc *GetTotalBalanceUseCase) Execute(ctx context.Context, input GetTotalBalanceInput) (*GetTotalBalanceOutput, error) {
	totals, err := uc.dashboardRepo.TypeTotalsAllTime(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all-time totals: %w", err)
	}

	return &GetTotalBalanceOutput{Balance: totals.Balance()}, nil
}
