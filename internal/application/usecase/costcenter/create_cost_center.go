// Package costcenter contains cost center-related use cases.
package costcenter

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// CreateCostCenterInput represents the input for cost center creation.
type CreateCostCenterInput struct {
	Name   string
	UserID uuid.UUID
}

// CreateCostCenterOutput represents the output of cost center creation.
type CreateCostCenterOutput struct {
	CostCenter *entity.CostCenter
}

// CreateCostCenterUseCase handles cost center creation logic.
type CreateCostCenterUseCase struct {
	costCenterRepo adapter.CostCenterRepository
}

// NewCreateCostCenterUseCase creates a new CreateCostCenterUseCase instance.
func NewCreateCostCenterUseCase(costCenterRepo adapter.CostCenterRepository) *CreateCostCenterUseCase {
	return &CreateCostCenterUseCase{
		costCenterRepo: costCenterRepo,
	}
}

// Execute performs the cost center creation.
func (uc *CreateCostCenterUseCase) Execute(ctx context.Context, input CreateCostCenterInput) (*CreateCostCenterOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewCostCenterError(
			domainerror.ErrCodeMissingCostCenterName,
			"cost center name is required",
			nil,
		)
	}

	costCenter := entity.NewCostCenter(input.Name, input.UserID)

	if err := uc.costCenterRepo.Create(ctx, costCenter); err != nil {
		return nil, fmt.Errorf("failed to create cost center: %w", err)
	}

	return &CreateCostCenterOutput{CostCenter: costCenter}, nil
}
