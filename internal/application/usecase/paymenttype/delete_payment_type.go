// Package paymenttype contains payment type-related use cases.
package paymenttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// DeletePaymentTypeInput represents the input for payment type deletion.
type DeletePaymentTypeInput struct {
	PaymentTypeID uuid.UUID
	UserID        uuid.UUID
}

// DeletePaymentTypeOutput represents the output of payment type deletion.
type DeletePaymentTypeOutput struct {
	Success bool
}

// DeletePaymentTypeUseCase handles payment type deletion logic.
type DeletePaymentTypeUseCase struct {
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewDeletePaymentTypeUseCase creates a new DeletePaymentTypeUseCase instance.
func NewDeletePaymentTypeUseCase(paymentTypeRepo adapter.PaymentTypeRepository) *DeletePaymentTypeUseCase {
	return &DeletePaymentTypeUseCase{
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute deletes a payment type after verifying ownership. Entries that
// reference the payment type keep their rows and fall back to the
// "no payment type" bucket in aggregations.
func (uc *DeletePaymentTypeUseCase) Execute(ctx context.Context, input DeletePaymentTypeInput) (*DeletePaymentTypeOutput, error) {
	paymentType, err := uc.paymentTypeRepo.FindByID(ctx, input.PaymentTypeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentTypeNotFound) {
			return nil, domainerror.NewPaymentTypeError(
				domainerror.ErrCodePaymentTypeNotFound,
				"payment type not found",
				domainerror.ErrPaymentTypeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find payment type: %w", err)
	}

	if paymentType.UserID != input.UserID {
		return nil, domainerror.NewPaymentTypeError(
			domainerror.ErrCodePaymentTypeNotFound,
			"payment type not found",
			domainerror.ErrPaymentTypeNotFound,
		)
	}

	if err := uc.paymentTypeRepo.Delete(ctx, input.PaymentTypeID); err != nil {
		return nil, fmt.Errorf("failed to delete payment type: %w", err)
	}

	return &DeletePaymentTypeOutput{Success: true}, nil
}
