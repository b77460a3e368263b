// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/persistence/model"
)

// costCenterRepository implements the adapter.CostCenterRepository interface.
type costCenterRepository struct {
	db *gorm.DB
}

// NewCostCenterRepository creates a new cost center repository instance.
func NewCostCenterRepository(db *gorm.DB) adapter.CostCenterRepository {
	return &costCenterRepository{
		db: db,
	}
}

// Create creates a new cost center in the database.
func (r *costCenterRepository) Create(ctx context.Context, costCenter *entity.CostCenter) error {
	costCenterModel := model.CostCenterFromEntity(costCenter)
	result := r.db.WithContext(ctx).Create(costCenterModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a cost center by its ID.
func (r *costCenterRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CostCenter, error) {
	var costCenterModel model.CostCenterModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&costCenterModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCostCenterNotFound
		}
		return nil, result.Error
	}
	return costCenterModel.ToEntity(), nil
}

// FindByUser retrieves cost centers owned by a user with pagination.
func (r *costCenterRepository) FindByUser(ctx context.Context, userID uuid.UUID, search string, pagination adapter.Pagination) (*adapter.CostCenterListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CostCenterModel{}).
		Where("user_id = ?", userID)

	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var costCenterModels []model.CostCenterModel
	offset := (pagination.Page - 1) * pagination.Limit
	result := query.
		Order("name ASC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&costCenterModels)
	if result.Error != nil {
		return nil, result.Error
	}

	costCenters := make([]*entity.CostCenter, len(costCenterModels))
	for i, cm := range costCenterModels {
		costCenters[i] = cm.ToEntity()
	}

	return &adapter.CostCenterListResult{
		CostCenters: costCenters,
		Total:       total,
		Page:        pagination.Page,
		Limit:       pagination.Limit,
	}, nil
}

// Update updates an existing cost center in the database.
func (r *costCenterRepository) Update(ctx context.Context, costCenter *entity.CostCenter) error {
	costCenterModel := model.CostCenterFromEntity(costCenter)
	result := r.db.WithContext(ctx).Save(costCenterModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a cost center from the database.
func (r *costCenterRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CostCenterModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCostCenterNotFound
	}
	return nil
}
