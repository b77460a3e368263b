// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// RecurringEntry is a template that the materializer turns into regular
// entries on a schedule. NextRun marks when it is next due; LastRun records
// the last materialization day. A recurring entry is "due" whenever NextRun
// is on or before the processing day.
type RecurringEntry struct {
	ID            uuid.UUID
	Amount        decimal.Decimal
	Description   string
	Frequency     valueobject.Frequency
	CategoryID    uuid.UUID
	PaymentTypeID *uuid.UUID
	NextRun       time.Time
	LastRun       *time.Time
	UserID        uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringEntry creates a new RecurringEntry entity.
func NewRecurringEntry(
	amount decimal.Decimal,
	description string,
	frequency valueobject.Frequency,
	categoryID uuid.UUID,
	paymentTypeID *uuid.UUID,
	nextRun time.Time,
	userID uuid.UUID,
) *RecurringEntry {
	now := time.Now().UTC()

	return &RecurringEntry{
		ID:            uuid.New(),
		Amount:        amount,
		Description:   description,
		Frequency:     frequency,
		CategoryID:    categoryID,
		PaymentTypeID: paymentTypeID,
		NextRun:       nextRun,
		UserID:        userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
