// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// CreateRecurringEntryInput represents the input for recurring entry creation.
type CreateRecurringEntryInput struct {
	Amount        decimal.Decimal
	Description   string
	Frequency     string
	CategoryID    uuid.UUID
	PaymentTypeID *uuid.UUID
	NextRun       time.Time
	UserID        uuid.UUID
}

// CreateRecurringEntryOutput represents the output of recurring entry creation.
type CreateRecurringEntryOutput struct {
	RecurringEntry *entity.RecurringEntry
}

// CreateRecurringEntryUseCase handles recurring entry creation logic.
type CreateRecurringEntryUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
	categoryRepo       adapter.CategoryRepository
	paymentTypeRepo    adapter.PaymentTypeRepository
}

// NewCreateRecurringEntryUseCase creates a new CreateRecurringEntryUseCase instance.
func NewCreateRecurringEntryUseCase(
	recurringEntryRepo adapter.RecurringEntryRepository,
	categoryRepo adapter.CategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
) *CreateRecurringEntryUseCase {
	return &CreateRecurringEntryUseCase{
		recurringEntryRepo: recurringEntryRepo,
		categoryRepo:       categoryRepo,
		paymentTypeRepo:    paymentTypeRepo,
	}
}

// Execute performs the recurring entry creation. Templates for expense
// categories must carry a payment type.
func (uc *CreateRecurringEntryUseCase) Execute(ctx context.Context, input CreateRecurringEntryInput) (*CreateRecurringEntryOutput, error) {
	frequency := valueobject.Frequency(input.Frequency)
	if !frequency.Valid() {
		return nil, domainerror.NewRecurringEntryError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	category, err := uc.findOwnedCategory(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if category.Type == entity.CategoryTypeExpense && input.PaymentTypeID == nil {
		return nil, domainerror.NewRecurringEntryError(
			domainerror.ErrCodePaymentTypeRequired,
			"recurring entries for expense categories require a payment type",
			domainerror.ErrPaymentTypeRequired,
		)
	}

	if err := uc.verifyPaymentType(ctx, input.PaymentTypeID, input.UserID); err != nil {
		return nil, err
	}

	recurringEntry := entity.NewRecurringEntry(
		input.Amount,
		input.Description,
		frequency,
		input.CategoryID,
		input.PaymentTypeID,
		input.NextRun.UTC(),
		input.UserID,
	)

	if err := uc.recurringEntryRepo.Create(ctx, recurringEntry); err != nil {
		return nil, fmt.Errorf("failed to create recurring entry: %w", err)
	}

	return &CreateRecurringEntryOutput{RecurringEntry: recurringEntry}, nil
}

func (uc *CreateRecurringEntryUseCase) findOwnedCategory(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewRecurringEntryError(
				domainerror.ErrCodeRecurringCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, domainerror.NewRecurringEntryError(
			domainerror.ErrCodeRecurringCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}
	return category, nil
}

func (uc *CreateRecurringEntryUseCase) verifyPaymentType(ctx context.Context, paymentTypeID *uuid.UUID, userID uuid.UUID) error {
	if paymentTypeID == nil {
		return nil
	}
	paymentType, err := uc.paymentTypeRepo.FindByID(ctx, *paymentTypeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentTypeNotFound) {
			return domainerror.NewRecurringEntryError(
				domainerror.ErrCodeRecurringPaymentTypeNotFound,
				"payment type not found",
				domainerror.ErrPaymentTypeNotFound,
			)
		}
		return fmt.Errorf("failed to find payment type: %w", err)
	}
	if paymentType.UserID != userID {
		return domainerror.NewRecurringEntryError(
			domainerror.ErrCodeRecurringPaymentTypeNotFound,
			"payment type not found",
			domainerror.ErrPaymentTypeNotOwnedByUser,
		)
	}
	return nil
}
