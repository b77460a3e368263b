// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/integration/persistence/model"
)

// paymentTypeRepository implements the adapter.PaymentTypeRepository interface.
type paymentTypeRepository struct {
	db *gorm.DB
}

// NewPaymentTypeRepository creates a new payment type repository instance.
func NewPaymentTypeRepository(db *gorm.DB) adapter.PaymentTypeRepository {
	return &paymentTypeRepository{
		db: db,
	}
}

// Create creates a new payment type in the database.
func (r *paymentTypeRepository) Create(ctx context.Context, paymentType *entity.PaymentType) error {
	paymentTypeModel := model.PaymentTypeFromEntity(paymentType)
	result := r.db.WithContext(ctx).Create(paymentTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a payment type by its ID.
func (r *paymentTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentType, error) {
	var paymentTypeModel model.PaymentTypeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&paymentTypeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPaymentTypeNotFound
		}
		return nil, result.Error
	}
	return paymentTypeModel.ToEntity(), nil
}

// FindByUser retrieves all payment types owned by a user.
func (r *paymentTypeRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentType, error) {
	var paymentTypeModels []model.PaymentTypeModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&paymentTypeModels)
	if result.Error != nil {
		return nil, result.Error
	}

	paymentTypes := make([]*entity.PaymentType, len(paymentTypeModels))
	for i, pm := range paymentTypeModels {
		paymentTypes[i] = pm.ToEntity()
	}
	return paymentTypes, nil
}

// Update updates an existing payment type in the database.
func (r *paymentTypeRepository) Update(ctx context.Context, paymentType *entity.PaymentType) error {
	paymentTypeModel := model.PaymentTypeFromEntity(paymentType)
	result := r.db.WithContext(ctx).Save(paymentTypeModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a payment type from the database. Entries referencing it
// keep their rows; the payment_type_id column is cleared so aggregations
// fall back to the "no payment type" bucket.
func (r *paymentTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.EntryModel{}).
			Where("payment_type_id = ?", id).
			Update("payment_type_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.PaymentTypeModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrPaymentTypeNotFound
		}
		return nil
	})
}
