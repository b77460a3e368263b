// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// PaymentTypeRepository defines the interface for payment type persistence operations.
type PaymentTypeRepository interface {
	// Create creates a new payment type in the database.
	Create(ctx context.Context, paymentType *entity.PaymentType) error

	// FindByID retrieves a payment type by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentType, error)

	// FindByUser retrieves all payment types owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentType, error)

	// Update updates an existing payment type in the database.
	Update(ctx context.Context, paymentType *entity.PaymentType) error

	// Delete removes a payment type from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
