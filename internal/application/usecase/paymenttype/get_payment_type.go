// Package paymenttype contains payment type-related use cases.
package paymenttype

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// GetPaymentTypeInput represents the input for retrieving a payment type.
type GetPaymentTypeInput struct {
	PaymentTypeID uuid.UUID
	UserID        uuid.UUID
}

// GetPaymentTypeOutput represents the output of retrieving a payment type.
type GetPaymentTypeOutput struct {
	PaymentType *entity.PaymentType
}

// GetPaymentTypeUseCase handles payment type retrieval logic.
type GetPaymentTypeUseCase struct {
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewGetPaymentTypeUseCase creates a new GetPaymentTypeUseCase instance.
func NewGetPaymentTypeUseCase(paymentTypeRepo adapter.PaymentTypeRepository) *GetPaymentTypeUseCase {
	return &GetPaymentTypeUseCase{
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute retrieves the payment type after verifying ownership.
func (uc *GetPaymentTypeUseCase) Execute(ctx context.Context, input GetPaymentTypeInput) (*GetPaymentTypeOutput, error) {
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

	return &GetPaymentTypeOutput{PaymentType: paymentType}, nil
}
