// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetSurvivalTimeInput represents the input for the survival time.
type GetSurvivalTimeInput struct {
	UserID uuid.UUID
}

// GetSurvivalTimeOutput represents the output of the survival time.
type GetSurvivalTimeOutput struct {
	Months float64
}

// GetSurvivalTimeUseCase estimates how many months the user's all-time
// balance would last at their recent spending rate. The rate is the average
// monthly expense over the trailing twelve months, averaged only over months
// that actually had expenses. A zero rate yields +Inf.
type GetSurvivalTimeUseCase struct {
	dashboardRepo DashboardRepository
	clock         adapter.Clock
}

// NewGetSurvivalTimeUseCase creates a new GetSurvivalTimeUseCase instance.
func NewGetSurvivalTimeUseCase(dashboardRepo DashboardRepository, clock adapter.Clock) *GetSurvivalTimeUseCase {
	return &GetSurvivalTimeUseCase{
		dashboardRepo: dashboardRepo,
		clock:         clock,
	}
}

// Execute computes the survival time in months.
func (uc *GetSurvivalTimeUseCase) Execute(ctx context.Context, input GetSurvivalTimeInput) (*GetSurvivalTimeOutput, error) {
	totals, err := uc.dashboardRepo.TypeTotalsAllTime(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get all-time totals: %w", err)
	}
	balance := totals.Balance()

	now := uc.clock.Now().UTC()
	from := valueobject.NewPeriod(now.Year()-1, now.Month())

	expenseMonths, err := uc.dashboardRepo.ExpenseTotalsByPeriod(ctx, input.UserID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to get trailing expense totals: %w", err)
	}

	totalExpenses := decimal.Zero
	for _, m := range expenseMonths {
		totalExpenses = totalExpenses.Add(m.Total)
	}

	monthsWithExpenses := len(expenseMonths)
	if monthsWithExpenses == 0 {
		monthsWithExpenses = 1
	}

	average := totalExpenses.Div(decimal.NewFromInt(int64(monthsWithExpenses)))
	if average.IsZero() {
		return &GetSurvivalTimeOutput{Months: math.Inf(1)}, nil
	}

	months, _ := balance.Div(average).Float64()
	return &GetSurvivalTimeOutput{Months: months}, nil
}
