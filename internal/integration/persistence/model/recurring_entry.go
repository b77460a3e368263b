// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// RecurringEntryModel represents the recurring_entries table in the database.
type RecurringEntryModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description   string          `gorm:"type:varchar(255)"`
	Frequency     string          `gorm:"type:varchar(10);not null"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentTypeID *uuid.UUID      `gorm:"type:uuid;index"`
	NextRun       time.Time       `gorm:"not null;index"`
	LastRun       *time.Time
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName returns the table name for the RecurringEntryModel.
func (RecurringEntryModel) TableName() string {
	return "recurring_entries"
}

// ToEntity converts a RecurringEntryModel to a domain RecurringEntry entity.
func (m *RecurringEntryModel) ToEntity() *entity.RecurringEntry {
	return &entity.RecurringEntry{
		ID:            m.ID,
		Amount:        m.Amount,
		Description:   m.Description,
		Frequency:     valueobject.Frequency(m.Frequency),
		CategoryID:    m.CategoryID,
		PaymentTypeID: m.PaymentTypeID,
		NextRun:       m.NextRun,
		LastRun:       m.LastRun,
		UserID:        m.UserID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringEntryFromEntity creates a RecurringEntryModel from a domain RecurringEntry entity.
func RecurringEntryFromEntity(recurringEntry *entity.RecurringEntry) *RecurringEntryModel {
	return &RecurringEntryModel{
		ID:            recurringEntry.ID,
		Amount:        recurringEntry.Amount,
		Description:   recurringEntry.Description,
		Frequency:     string(recurringEntry.Frequency),
		CategoryID:    recurringEntry.CategoryID,
		PaymentTypeID: recurringEntry.PaymentTypeID,
		NextRun:       recurringEntry.NextRun,
		LastRun:       recurringEntry.LastRun,
		UserID:        recurringEntry.UserID,
		CreatedAt:     recurringEntry.CreatedAt,
		UpdatedAt:     recurringEntry.UpdatedAt,
	}
}
