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

// GetPaymentTypeTotalsInput represents the input for payment type totals.
type GetPaymentTypeTotalsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// GetPaymentTypeTotalsOutput maps payment type names to summed amounts for
// the month. Entries without a payment type land in the "no payment type"
// bucket.
type GetPaymentTypeTotalsOutput struct {
	Totals map[string]decimal.Decimal
}

// GetPaymentTypeTotalsUseCase sums a month's entries per payment type.
type GetPaymentTypeTotalsUseCase struct {
	dashboardRepo DashboardRepository
}

// NewGetPaymentTypeTotalsUseCase creates a new GetPaymentTypeTotalsUseCase instance.
func NewGetPaymentTypeTotalsUseCase(dashboardRepo DashboardRepository) *GetPaymentTypeTotalsUseCase {
	return &GetPaymentTypeTotalsUseCase{
		dashboardRepo: dashboardRepo,
	}
}

// Execute computes the month's payment type totals.
func (uc *GetPaymentTypeTotalsUseCase) Execute(ctx context.Context, input GetPaymentTypeTotalsInput) (*GetPaymentTypeTotalsOutput, error) {
	month, err := validateYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	period := valueobject.NewPeriod(input.Year, month)

	rows, err := uc.dashboardRepo.PaymentTypeTotalsForPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get payment type totals: %w", err)
	}

	totals := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		name := entity.NoPaymentTypeLabel
		if row.PaymentTypeName != nil {
			name = *row.PaymentTypeName
		}
		totals[name] = totals[name].Add(row.Total)
	}

	return &GetPaymentTypeTotalsOutput{Totals: totals}, nil
}
