// Package costcenter contains cost center-related use cases.
package costcenter

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
)

// ListCostCentersInput represents the input for listing cost centers.
type ListCostCentersInput struct {
	UserID uuid.UUID
	Search string
	Page   int
	Limit  int
}

// ListCostCentersOutput represents the output of listing cost centers.
type ListCostCentersOutput struct {
	CostCenters []*entity.CostCenter
	Total       int64
	Page        int
	Limit       int
}

// ListCostCentersUseCase handles cost center listing logic.
type ListCostCentersUseCase struct {
	costCenterRepo adapter.CostCenterRepository
}

// NewListCostCentersUseCase creates a new ListCostCentersUseCase instance.
func NewListCostCentersUseCase(costCenterRepo adapter.CostCenterRepository) *ListCostCentersUseCase {
	return &ListCostCentersUseCase{
		costCenterRepo: costCenterRepo,
	}
}

// Execute retrieves the user's cost centers.
func (uc *ListCostCentersUseCase) Execute(ctx context.Context, input ListCostCentersInput) (*ListCostCentersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}

	result, err := uc.costCenterRepo.FindByUser(ctx, input.UserID, input.Search,
		adapter.Pagination{Page: input.Page, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}

	return &ListCostCentersOutput{
		CostCenters: result.CostCenters,
		Total:       result.Total,
		Page:        result.Page,
		Limit:       result.Limit,
	}, nil
}
