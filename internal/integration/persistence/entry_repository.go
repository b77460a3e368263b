// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
	"github.com/personal-ledger/backend/internal/integration/persistence/model"
)

// entrySortColumns maps exposed sort fields to table columns. Anything not
// listed is ignored rather than interpolated into the query.
var entrySortColumns = map[string]string{
	"amount":      "entries.amount",
	"description": "entries.description",
	"period":      "entries.period",
	"created_at":  "entries.created_at",
}

// entryRepository implements the adapter.EntryRepository interface.
type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new entry repository instance.
func NewEntryRepository(db *gorm.DB) adapter.EntryRepository {
	return &entryRepository{
		db: db,
	}
}

// Create creates a new entry in the database.
func (r *entryRepository) Create(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an entry by its ID.
func (r *entryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	var entryModel model.EntryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByIDWithCategory retrieves an entry together with its category.
func (r *entryRepository) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.EntryWithCategory, error) {
	entry, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", entry.CategoryID).First(&categoryModel)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.EntryWithCategory{
		Entry:    entry,
		Category: categoryModel.ToEntity(),
	}, nil
}

// FindByFilter retrieves entries matching the filter with pagination. The
// find and count run in a single transaction so the total matches the page.
func (r *entryRepository) FindByFilter(ctx context.Context, filter adapter.EntryFilter, pagination adapter.Pagination) (*adapter.EntryListResult, error) {
	var (
		entryModels    []model.EntryModel
		categoryModels []model.CategoryModel
		total          int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&model.EntryModel{}).Where("entries.user_id = ?", filter.UserID)

		if filter.Search != "" {
			query = query.Where("LOWER(entries.description) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
		}
		if filter.Period != nil {
			query = query.Where("entries.period = ?", filter.Period.String())
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		for _, sort := range filter.Sorts {
			column, ok := entrySortColumns[sort.Field]
			if !ok {
				continue
			}
			direction := "ASC"
			if sort.Order == adapter.SortDesc {
				direction = "DESC"
			}
			query = query.Order(fmt.Sprintf("%s %s", column, direction))
		}
		query = query.Order("entries.created_at DESC")

		offset := (pagination.Page - 1) * pagination.Limit
		if err := query.Limit(pagination.Limit).Offset(offset).Find(&entryModels).Error; err != nil {
			return err
		}

		if len(entryModels) == 0 {
			return nil
		}

		categoryIDs := make([]uuid.UUID, 0, len(entryModels))
		seen := make(map[uuid.UUID]struct{}, len(entryModels))
		for _, em := range entryModels {
			if _, ok := seen[em.CategoryID]; ok {
				continue
			}
			seen[em.CategoryID] = struct{}{}
			categoryIDs = append(categoryIDs, em.CategoryID)
		}

		return tx.Where("id IN ?", categoryIDs).Find(&categoryModels).Error
	})
	if err != nil {
		return nil, err
	}

	categoriesByID := make(map[uuid.UUID]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		category := categoryModels[i].ToEntity()
		categoriesByID[category.ID] = category
	}

	entries := make([]*entity.EntryWithCategory, len(entryModels))
	for i, em := range entryModels {
		entries[i] = &entity.EntryWithCategory{
			Entry:    em.ToEntity(),
			Category: categoriesByID[em.CategoryID],
		}
	}

	return &adapter.EntryListResult{
		Entries: entries,
		Total:   total,
		Page:    pagination.Page,
		Limit:   pagination.Limit,
	}, nil
}

// CountByCategory counts entries referencing a category.
func (r *entryRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("category_id = ?", categoryID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// ExistsForRecurringEntryAndPeriod checks whether an entry materialized from
// the given recurring entry already exists for the period.
func (r *entryRepository) ExistsForRecurringEntryAndPeriod(ctx context.Context, recurringEntryID uuid.UUID, period valueobject.Period) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.EntryModel{}).
		Where("recurring_entry_id = ? AND period = ?", recurringEntryID, period.String()).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Update updates an existing entry in the database.
func (r *entryRepository) Update(ctx context.Context, entry *entity.Entry) error {
	entryModel := model.EntryFromEntity(entry)
	result := r.db.WithContext(ctx).Save(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an entry from the database.
func (r *entryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.EntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}
