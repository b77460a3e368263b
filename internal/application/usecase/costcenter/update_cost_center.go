// Package costcenter contains cost center-related use cases.
package costcenter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// UpdateCostCenterInput represents the input for cost center update.
type UpdateCostCenterInput struct {
	CostCenterID uuid.UUID
	Name         string
	UserID       uuid.UUID
}

// UpdateCostCenterOutput represents the output of cost center update.
type UpdateCostCenterOutput struct {
	CostCenter *entity.CostCenter
}

// UpdateCostCenterUseCase handles cost center update logic.
type UpdateCostCenterUseCase struct {
	costCenterRepo adapter.CostCenterRepository
}

// NewUpdateCostCenterUseCase creates a new UpdateCostCenterUseCase instance.
func NewUpdateCostCenterUseCase(costCenterRepo adapter.CostCenterRepository) *UpdateCostCenterUseCase {
	return &UpdateCostCenterUseCase{
		costCenterRepo: costCenterRepo,
	}
}

// Execute performs the cost center update.
func (uc *UpdateCostCenterUseCase) Execute(ctx context.Context, input UpdateCostCenterInput) (*UpdateCostCenterOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCostCenterError(
			domainerror.ErrCodeMissingCostCenterName,
			"cost center name is required",
			nil,
		)
	}

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

	costCenter.Name = input.Name
	costCenter.UpdatedAt = time.Now().UTC()

	if err := uc.costCenterRepo.Update(ctx, costCenter); err != nil {
		return nil, fmt.Errorf("failed to update cost center: %w", err)
	}

	return &UpdateCostCenterOutput{CostCenter: costCenter}, nil
}
