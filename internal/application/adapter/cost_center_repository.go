// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// CostCenterListResult represents the result of listing cost centers.
type CostCenterListResult struct {
	CostCenters []*entity.CostCenter
	Total       int64
	Page        int
	Limit       int
}

// CostCenterRepository defines the interface for cost center persistence operations.
type CostCenterRepository interface {
	// Create creates a new cost center in the database.
	Create(ctx context.Context, costCenter *entity.CostCenter) error

	// FindByID retrieves a cost center by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CostCenter, error)

	// FindByUser retrieves cost centers owned by a user with pagination.
	FindByUser(ctx context.Context, userID uuid.UUID, search string, pagination Pagination) (*CostCenterListResult, error)

	// Update updates an existing cost center in the database.
	Update(ctx context.Context, costCenter *entity.CostCenter) error

	// Delete removes a cost center from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
