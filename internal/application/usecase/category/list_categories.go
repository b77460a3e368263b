// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID       uuid.UUID
	Type         *entity.CategoryType
	CostCenterID *uuid.UUID
	Search       string
	Page         int
	Limit        int
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*entity.Category
	Total      int64
	Page       int
	Limit      int
}

// ListCategoriesUseCase handles category listing logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute retrieves the user's categories, optionally filtered by type,
// cost center and a name search.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}

	result, err := uc.categoryRepo.FindByFilter(ctx,
		adapter.CategoryFilter{
			UserID:       input.UserID,
			Type:         input.Type,
			CostCenterID: input.CostCenterID,
			Search:       input.Search,
		},
		adapter.Pagination{Page: input.Page, Limit: input.Limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return &ListCategoriesOutput{
		Categories: result.Categories,
		Total:      result.Total,
		Page:       result.Page,
		Limit:      result.Limit,
	}, nil
}
