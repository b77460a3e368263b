// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// EntryModel represents the entries table in the database. The period column
// carries the accounting month as a YYYY-MM string so range filters work
// with plain string comparison on every backend.
type EntryModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description      string          `gorm:"type:varchar(255)"`
	CategoryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PaymentTypeID    *uuid.UUID      `gorm:"type:uuid;index"`
	RecurringEntryID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_entries_recurring_period"`
	Period           string          `gorm:"type:varchar(7);not null;index;uniqueIndex:idx_entries_recurring_period"`
	UserID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the EntryModel.
func (EntryModel) TableName() string {
	return "entries"
}

// ToEntity converts an EntryModel to a domain Entry entity.
func (m *EntryModel) ToEntity() *entity.Entry {
	return &entity.Entry{
		ID:               m.ID,
		Amount:           m.Amount,
		Description:      m.Description,
		CategoryID:       m.CategoryID,
		PaymentTypeID:    m.PaymentTypeID,
		RecurringEntryID: m.RecurringEntryID,
		Period:           valueobject.Period(m.Period),
		UserID:           m.UserID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// EntryFromEntity creates an EntryModel from a domain Entry entity.
func EntryFromEntity(entry *entity.Entry) *EntryModel {
	return &EntryModel{
		ID:               entry.ID,
		Amount:           entry.Amount,
		Description:      entry.Description,
		CategoryID:       entry.CategoryID,
		PaymentTypeID:    entry.PaymentTypeID,
		RecurringEntryID: entry.RecurringEntryID,
		Period:           entry.Period.String(),
		UserID:           entry.UserID,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
}
