// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/persistence/model"
)

// recurringEntryRepository implements the adapter.RecurringEntryRepository interface.
type recurringEntryRepository struct {
	db *gorm.DB
}

// NewRecurringEntryRepository creates a new recurring entry repository instance.
func NewRecurringEntryRepository(db *gorm.DB) adapter.RecurringEntryRepository {
	return &recurringEntryRepository{
		db: db,
	}
}

// Create creates a new recurring entry in the database.
func (r *recurringEntryRepository) Create(ctx context.Context, recurringEntry *entity.RecurringEntry) error {
	recurringEntryModel := model.RecurringEntryFromEntity(recurringEntry)
	result := r.db.WithContext(ctx).Create(recurringEntryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring entry by its ID.
func (r *recurringEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error) {
	var recurringEntryModel model.RecurringEntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringEntryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringEntryNotFound
		}
		return nil, result.Error
	}
	return recurringEntryModel.ToEntity(), nil
}

// FindByUser retrieves recurring entries owned by a user with pagination.
func (r *recurringEntryRepository) FindByUser(ctx context.Context, userID uuid.UUID, search string, pagination adapter.Pagination) (*adapter.RecurringEntryListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.RecurringEntryModel{}).
		Where("user_id = ?", userID)

	if search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var recurringEntryModels []model.RecurringEntryModel
	offset := (pagination.Page - 1) * pagination.Limit
	result := query.
		Order("next_run ASC").
		Limit(pagination.Limit).
		Offset(offset).
		Find(&recurringEntryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recurringEntries := make([]*entity.RecurringEntry, len(recurringEntryModels))
	for i, rm := range recurringEntryModels {
		recurringEntries[i] = rm.ToEntity()
	}

	return &adapter.RecurringEntryListResult{
		RecurringEntries: recurringEntries,
		Total:            total,
		Page:             pagination.Page,
		Limit:            pagination.Limit,
	}, nil
}

// FindDue retrieves every recurring entry whose next run is on or before the
// cutoff, across all users.
func (r *recurringEntryRepository) FindDue(ctx context.Context, cutoff time.Time) ([]*entity.RecurringEntry, error) {
	var recurringEntryModels []model.RecurringEntryModel
	result := r.db.WithContext(ctx).
		Where("next_run <= ?", cutoff).
		Order("next_run ASC").
		Find(&recurringEntryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	recurringEntries := make([]*entity.RecurringEntry, len(recurringEntryModels))
	for i, rm := range recurringEntryModels {
		recurringEntries[i] = rm.ToEntity()
	}
	return recurringEntries, nil
}

// Update updates an existing recurring entry in the database.
func (r *recurringEntryRepository) Update(ctx context.Context, recurringEntry *entity.RecurringEntry) error {
	recurringEntryModel := model.RecurringEntryFromEntity(recurringEntry)
	result := r.db.WithContext(ctx).Save(recurringEntryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a recurring entry from the database.
func (r *recurringEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.RecurringEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringEntryNotFound
	}
	return nil
}
