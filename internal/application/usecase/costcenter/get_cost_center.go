// Package costcenter contains cost center-related use cases.
package costcenter

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// GetCostCenterInput represents the input for fetching a single cost center.
type GetCostCenterInput struct {
	CostCenterID uuid.UUID
	UserID       uuid.UUID
}

// GetCostCenterOutput represents the output of fetching a single cost center.
type GetCostCenterOutput struct {
	CostCenter *entity.CostCenter
}

// GetCostCenterUseCase handles single cost center retrieval.
type GetCostCenterUseCase struct {
	costCenterRepo adapter.CostCenterRepository
}

// NewGetCostCenterUseCase creates a new GetCostCenterUseCase instance.
func NewGetCostCenterUseCase(costCenterRepo adapter.CostCenterRepository) *GetCostCenterUseCase {
	return &GetCostCenterUseCase{
		costCenterRepo: costCenterRepo,
	}
}

// Execute retrieves the cost center after verifying ownership.
func (uc *GetCostCenterUseCase) Execute(ctx context.Context, input GetCostCenterInput) (*GetCostCenterOutput, error) {
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

	return &GetCostCenterOutput{CostCenter: costCenter}, nil
}
