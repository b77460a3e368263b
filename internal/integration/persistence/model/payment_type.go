// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// PaymentTypeModel represents the payment_types table in the database.
type PaymentTypeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the PaymentTypeModel.
func (PaymentTypeModel) TableName() string {
	return "payment_types"
}

// ToEntity converts a PaymentTypeModel to a domain PaymentType entity.
func (m *PaymentTypeModel) ToEntity() *entity.PaymentType {
	return &entity.PaymentType{
		ID:        m.ID,
		Name:      m.Name,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// PaymentTypeFromEntity creates a PaymentTypeModel from a domain PaymentType entity.
func PaymentTypeFromEntity(paymentType *entity.PaymentType) *PaymentTypeModel {
	return &PaymentTypeModel{
		ID:        paymentType.ID,
		Name:      paymentType.Name,
		UserID:    paymentType.UserID,
		CreatedAt: paymentType.CreatedAt,
		UpdatedAt: paymentType.UpdatedAt,
	}
}
