// Package dashboard contains dashboard aggregation use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// GetCategoryTotalsInput represents the input for monthly category totals.
type GetCategoryTotalsInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// CategoryTotal is one category's summed amount for the month.
type CategoryTotal struct {
	CategoryID   uuid.UUID           `json:"category_id"`
	CategoryName string              `json:"category_name"`
	Type         entity.CategoryType `json:"type"`
	Total        decimal.Decimal     `json:"total"`
}

// GetCategoryTotalsOutput represents the output of monthly category totals.
type GetCategoryTotalsOutput struct {
	Totals []CategoryTotal
}

// GetCategoryTotalsUseCase computes per-category sums for one month. Every
// category the user owns gets a row, zero-activity categories included.
type GetCategoryTotalsUseCase struct {
	dashboardRepo DashboardRepository
	categoryRepo  adapter.CategoryRepository
}

// NewGetCategoryTotalsUseCase creates a new GetCategoryTotalsUseCase instance.
func NewGetCategoryTotalsUseCase(
	dashboardRepo DashboardRepository,
	categoryRepo adapter.CategoryRepository,
) *GetCategoryTotalsUseCase {
	return &GetCategoryTotalsUseCase{
		dashboardRepo: dashboardRepo,
		categoryRepo:  categoryRepo,
	}
}

// Execute computes the month's category totals.
func (uc *GetCategoryTotalsUseCase) Execute(ctx context.Context, input GetCategoryTotalsInput) (*GetCategoryTotalsOutput, error) {
	month, err := validateYearMonth(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	period := valueobject.NewPeriod(input.Year, month)

	categories, err := uc.categoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	rows, err := uc.dashboardRepo.CategoryTotalsForPeriod(ctx, input.UserID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get category totals: %w", err)
	}

	totalsByCategory := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totalsByCategory[row.CategoryID] = row.Total
	}

	totals := make([]CategoryTotal, 0, len(categories))
	for _, category := range categories {
		totals = append(totals, CategoryTotal{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			Type:         category.Type,
			Total:        totalsByCategory[category.ID],
		})
	}

	return &GetCategoryTotalsOutput{Totals: totals}, nil
}
