// Package paymenttype contains payment type-related use cases.
package paymenttype

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
)

// ListPaymentTypesInput represents the input for listing payment types.
type ListPaymentTypesInput struct {
	UserID uuid.UUID
}

// ListPaymentTypesOutput represents the output of listing payment types.
type ListPaymentTypesOutput struct {
	PaymentTypes []*entity.PaymentType
}

// ListPaymentTypesUseCase handles payment type listing logic.
type ListPaymentTypesUseCase struct {
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewListPaymentTypesUseCase creates a new ListPaymentTypesUseCase instance.
func NewListPaymentTypesUseCase(paymentTypeRepo adapter.PaymentTypeRepository) *ListPaymentTypesUseCase {
	return &ListPaymentTypesUseCase{
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute retrieves the user's payment types.
func (uc *ListPaymentTypesUseCase) Execute(ctx context.Context, input ListPaymentTypesInput) (*ListPaymentTypesOutput, error) {
	paymentTypes, err := uc.paymentTypeRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}

	return &ListPaymentTypesOutput{PaymentTypes: paymentTypes}, nil
}
