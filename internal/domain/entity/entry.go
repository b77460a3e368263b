// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// Entry represents a single monetary transaction recorded against an
// accounting month. The Period field carries the month the entry counts
// toward, which is independent of the record's creation timestamp.
type Entry struct {
	ID          uuid.UUID
	Amount      decimal.Decimal
	Description string
	CategoryID  uuid.UUID
	PaymentTypeID *uuid.UUID
	// RecurringEntryID links an entry back to the recurring template that
	// materialized it. At most one entry exists per (template, period).
	RecurringEntryID *uuid.UUID
	Period           valueobject.Period
	UserID           uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EntryWithCategory pairs an entry with its category for read paths that
// need the category type or name.
type EntryWithCategory struct {
	Entry    *Entry
	Category *Category
}

// NewEntry creates a new Entry entity.
func NewEntry(
	amount decimal.Decimal,
	description string,
	categoryID uuid.UUID,
	paymentTypeID *uuid.UUID,
	period valueobject.Period,
	userID uuid.UUID,
) *Entry {
	now := time.Now().UTC()

	return &Entry{
		ID:            uuid.New(),
		Amount:        amount,
		Description:   description,
		CategoryID:    categoryID,
		PaymentTypeID: paymentTypeID,
		Period:        period,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
