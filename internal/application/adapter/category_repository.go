// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CategoryFilter defines filter options for listing categories.
type CategoryFilter struct {
	UserID       uuid.UUID
	Type         *entity.CategoryType
	CostCenterID *uuid.UUID
	Search       string
}

// CategoryListResult represents the result of listing categories.
type CategoryListResult struct {
	Categories []*entity.Category
	Total      int64
	Page       int
	Limit      int
}

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindByUser retrieves all categories owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// FindByFilter retrieves categories matching the filter with pagination.
	FindByFilter(ctx context.Context, filter CategoryFilter, pagination Pagination) (*CategoryListResult, error)

	// ExistsByNameTypeAndUser checks whether a category with the given name and
	// type already exists for the user.
	ExistsByNameTypeAndUser(ctx context.Context, name string, categoryType entity.CategoryType, userID uuid.UUID) (bool, error)

	// CountByCostCenter counts categories referencing a cost center.
	CountByCostCenter(ctx context.Context, costCenterID uuid.UUID) (int64, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
