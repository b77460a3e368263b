// Package paymenttype contains payment type-related use cases.
package paymenttype

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// CreatePaymentTypeInput represents the input for payment type creation.
type CreatePaymentTypeInput struct {
	Name   string
	UserID uuid.UUID
}

// CreatePaymentTypeOutput represents the output of payment type creation.
type CreatePaymentTypeOutput struct {
	PaymentType *entity.PaymentType
}

// CreatePaymentTypeUseCase handles payment type creation logic.
type CreatePaymentTypeUseCase struct {
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewCreatePaymentTypeUseCase creates a new CreatePaymentTypeUseCase instance.
func NewCreatePaymentTypeUseCase(paymentTypeRepo adapter.PaymentTypeRepository) *CreatePaymentTypeUseCase {
	return &CreatePaymentTypeUseCase{
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute performs the payment type creation.
func (uc *CreatePaymentTypeUseCase) Execute(ctx context.Context, input CreatePaymentTypeInput) (*CreatePaymentTypeOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewPaymentTypeError(
			domainerror.ErrCodeMissingPaymentTypeName,
			"payment type name is required",
			nil,
		)
	}

	paymentType := entity.NewPaymentType(input.Name, input.UserID)

	if err := uc.paymentTypeRepo.Create(ctx, paymentType); err != nil {
		return nil, fmt.Errorf("failed to create payment type: %w", err)
	}

	return &CreatePaymentTypeOutput{PaymentType: paymentType}, nil
}
