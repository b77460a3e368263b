package costcenter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// DeleteCostCenterInput represents the input for cost center deletion.
type DeleteCostCenterInput struct {
	CostCenterID uuid.UUID
	UserID       uuid.UUID
}

// DeleteCostCenterOutput represents the output of cost center deletion.
type DeleteCostCenterOutput struct {
	Success bool
}

// DeleteCostCenterUseCase handles cost center deletion logic.
type DeleteCostCenterUseCase struct {
	costCenterRepo adapter.CostCenterRepository
	categoryRepo   adapter.CategoryRepository
}

// NewDeleteCostCenterUseCase creates a new DeleteCostCenterUseCase instance.
func NewDeleteCostCenterUseCase(
	costCenterRepo adapter.CostCenterRepository,
	categoryRepo adapter.CategoryRepository,
) *DeleteCostCenterUseCase {
	return &DeleteCostCenterUseCase{
		costCenterRepo: costCenterRepo,
		categoryRepo:   categoryRepo,
	}
}

// Execute deletes a cost center after verifying ownership. Cost centers that
// still have categories attached cannot be removed.
func (uc *DeleteCostCenterUseCase) Execute(ctx context.Context, input DeleteCostCenterInput) (*DeleteCostCenterOutput, error) {
	costCenter, err := uc.costCenterRepo.FindByID(ctx, input.CostCenterID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCostCenterNotFound) {
			return nil, domainerror.NewCostCenterError(
				domainerror.ErrCodeCostCenterNotFound,
				"cost center not found",
				domainerror.ErrCostCenterNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find cost center: %w", err)
	}

	if costCenter.UserID != input.UserID {
		return nil, domainerror.NewCostCenterError(
			domainerror.ErrCodeCostCenterNotFound,
			"cost center not found",
			domainerror.ErrCostCenterNotFound,
		)
	}

	count, err := uc.categoryRepo.CountByCostCenter(ctx, input.CostCenterID)
	if err != nil {
		return nil, fmt.Errorf("failed to count categories for cost center: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewCostCenterError(
			domainerror.ErrCodeCostCenterHasCategories,
			"cost center is linked to one or more categories",
			domainerror.ErrCostCenterHasCategories,
		)
	}

	if err := uc.costCenterRepo.Delete(ctx, input.CostCenterID); err != nil {
		return nil, fmt.Errorf("failed to delete cost center: %w", err)
	}

	return &DeleteCostCenterOutput{Success: true}, nil
}
