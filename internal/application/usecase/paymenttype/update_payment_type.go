// Package paymenttype contains payment type-related use cases.
package paymenttype

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// UpdatePaymentTypeInput represents the input for payment type update.
type UpdatePaymentTypeInput struct {
	PaymentTypeID uuid.UUID
	Name          string
	UserID        uuid.UUID
}

// UpdatePaymentTypeOutput represents the output of payment type update.
type UpdatePaymentTypeOutput struct {
	PaymentType *entity.PaymentType
}

// UpdatePaymentTypeUseCase handles payment type update logic.
type UpdatePaymentTypeUseCase struct {
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewUpdatePaymentTypeUseCase creates a new UpdatePaymentTypeUseCase instance.
func NewUpdatePaymentTypeUseCase(paymentTypeRepo adapter.PaymentTypeRepository) *UpdatePaymentTypeUseCase {
	return &UpdatePaymentTypeUseCase{
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute performs the payment type update.
func (uc *UpdatePaymentTypeUseCase) Execute(ctx context.Context, input UpdatePaymentTypeInput) (*UpdatePaymentTypeOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPaymentTypeError(
			domainerror.ErrCodeMissingPaymentTypeName,
			"payment type name is required",
			nil,
		)
	}

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

	paymentType.Name = input.Name
	paymentType.UpdatedAt = time.Now().UTC()

	if err := uc.paymentTypeRepo.Update(ctx, paymentType); err != nil {
		return nil, fmt.Errorf("failed to update payment type: %w", err)
	}

	return &UpdatePaymentTypeOutput{PaymentType: paymentType}, nil
}
