// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name         string
	Type         entity.CategoryType
	CostCenterID *uuid.UUID
	UserID       uuid.UUID
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	costCenterRepo adapter.CostCenterRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	costCenterRepo adapter.CostCenterRepository,
) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo:   categoryRepo,
		costCenterRepo: costCenterRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	// Validate category type
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	// Expense categories require a cost center; income categories must not carry one.
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

	// The referenced cost center must exist and belong to the user.
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

	// Check (name, type) uniqueness for this user
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

	category := entity.NewCategory(input.Name, input.Type, input.CostCenterID, input.UserID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}
