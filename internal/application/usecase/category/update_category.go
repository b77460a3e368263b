// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// UpdateCategoryInput represents the input for category update.
type UpdateCategoryInput struct {
	CategoryID   uuid.UUID
	Name         string
	Type         entity.CategoryType
	CostCenterID *uuid.UUID
	UserID       uuid.UUID
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category *entity.Category
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	costCenterRepo adapter.CostCenterRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	costCenterRepo adapter.CostCenterRepository,
) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo:   categoryRepo,
		costCenterRepo: costCenterRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	if category.UserID != input.UserID {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFound,
		)
	}

	// Validate category type
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// Cost center rules follow the target type.
	if input.Type == entity.CategoryTypeExpense && input.CostCenterID == nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCostCenterRequired,
			"expense categories require a cost center",
			domainerror.ErrCostCenterRequired,
		)
	}
	if input.Type == entity.CategoryTypeIncome && input.CostCenterID != nil {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCostCenterNotAllowed,
			"income categories must not reference a cost center",
			domainerror.ErrCostCenterNotAllowed,
		)
	}

	if input.CostCenterID != nil {
		costCenter, err := uc.costCenterRepo.FindByID(ctx, *input.CostCenterID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCostCenterNotFound) {
				return nil, domainerror.NewCategoryError(
					domainerror.ErrCodeCostCenterRequired,
					"cost center not found",
					domainerror.ErrCostCenterNotFound,
				)
			}
			return nil, fmt.Errorf("failed to find cost center: %w", err)
		}
		if costCenter.UserID != input.UserID {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCostCenterRequired,
				"cost center does not belong to user",
				domainerror.ErrNotAuthorizedToModifyCostCenter,
			)
		}
	}

	// Renames and type changes must not collide with another category.
	if input.Name != category.Name || input.Type != category.Type {
		exists, err := uc.categoryRepo.ExistsByNameTypeAndUser(ctx, input.Name, input.Type, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check category existence: %w", err)
		}
		if exists {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryExists,
				"a category with this name and type already exists",
				domainerror.ErrCategoryAlreadyExists,
			)
		}
	}

	category.Name = input.Name
	category.Type = input.Type
	category.CostCenterID = input.CostCenterID
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &UpdateCategoryOutput{Category: category}, nil
}
