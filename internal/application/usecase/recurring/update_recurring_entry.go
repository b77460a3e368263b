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

// UpdateRecurringEntryInput represents the input for recurring entry update.
type UpdateRecurringEntryInput struct {
	RecurringEntryID uuid.UUID
	Amount           decimal.Decimal
	Description      string
	Frequency        string
	CategoryID       uuid.UUID
	PaymentTypeID    *uuid.UUID
	NextRun          time.Time
	UserID           uuid.UUID
}

// UpdateRecurringEntryOutput represents the output of recurring entry update.
type UpdateRecurringEntryOutput struct {
	RecurringEntry *entity.RecurringEntry
}

// UpdateRecurringEntryUseCase handles recurring entry update logic.
type UpdateRecurringEntryUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
	categoryRepo       adapter.CategoryRepository
	paymentTypeRepo    adapter.PaymentTypeRepository
}

// NewUpdateRecurringEntryUseCase creates a new UpdateRecurringEntryUseCase instance.
func NewUpdateRecurringEntryUseCase(
	recurringEntryRepo adapter.RecurringEntryRepository,
	categoryRepo adapter.CategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
) *UpdateRecurringEntryUseCase {
	return &UpdateRecurringEntryUseCase{
		recurringEntryRepo: recurringEntryRepo,
		categoryRepo:       categoryRepo,
		paymentTypeRepo:    paymentTypeRepo,
	}
}

// Execute performs the recurring entry update, re-validating the frequency,
// the category and payment type ownership, and the expense payment type rule.
func (uc *UpdateRecurringEntryUseCase) Execute(ctx context.Context, input UpdateRecurringEntryInput) (*UpdateRecurringEntryOutput, error) {
	frequency := valueobject.Frequency(input.Frequency)
	if !frequency.Valid() {
		return nil, domainerror.NewRecurringEntryError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be daily, weekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}

	recurringEntry, err := uc.recurringEntryRepo.FindByID(ctx, input.RecurringEntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringEntryNotFound) {
			return nil, domainerror.NewRecurringEntryError(
				domainerror.ErrCodeRecurringEntryNotFound,
				"recurring entry not found",
				domainerror.ErrRecurringEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find recurring entry: %w", err)
	}

	if recurringEntry.UserID != input.UserID {
		return nil, domainerror.NewRecurringEntryError(
			domainerror.ErrCodeRecurringEntryNotFound,
			"recurring entry not found",
			domainerror.ErrRecurringEntryNotFound,
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

	recurringEntry.Amount = input.Amount
	recurringEntry.Description = input.Description
	recurringEntry.Frequency = frequency
	recurringEntry.CategoryID = input.CategoryID
	recurringEntry.PaymentTypeID = input.PaymentTypeID
	recurringEntry.NextRun = input.NextRun.UTC()
	recurringEntry.UpdatedAt = time.Now().UTC()

	if err := uc.recurringEntryRepo.Update(ctx, recurringEntry); err != nil {
		return nil, fmt.Errorf("failed to update recurring entry: %w", err)
	}

	return &UpdateRecurringEntryOutput{RecurringEntry: recurringEntry}, nil
}

func (uc *UpdateRecurringEntryUseCase) findOwnedCategory(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
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

func (uc *UpdateRecurringEntryUseCase) verifyPaymentType(ctx context.Context, paymentTypeID *uuid.UUID, userID uuid.UUID) error {
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
