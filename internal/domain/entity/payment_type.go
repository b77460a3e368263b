// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NoPaymentTypeLabel is the bucket label used in aggregations for entries
// recorded without a payment type.
const NoPaymentTypeLabel = "no payment type"

// PaymentType represents a payment method such as "credit card" or "cash".
type PaymentType struct {
	ID        uuid.UUID
	Name      string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPaymentType creates a new PaymentType entity.
func NewPaymentType(name string, userID uuid.UUID) *PaymentType {
	now := time.Now().UTC()
	return &PaymentType{
		ID:        uuid.New(),
		Name:      name,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
