// Package entry contains ledger entry-related use cases.
package entry

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

// UpdateEntryInput represents the input for entry update.
type UpdateEntryInput struct {
	EntryID       uuid.UUID
	Amount        decimal.Decimal
	Description   string
	CategoryID    uuid.UUID
	PaymentTypeID *uuid.UUID
	Period        string
	UserID        uuid.UUID
}

// UpdateEntryOutput represents the output of entry update.
type UpdateEntryOutput struct {
	Entry *entity.Entry
}

// UpdateEntryUseCase handles entry update logic.
type UpdateEntryUseCase struct {
	entryRepo       adapter.EntryRepository
	categoryRepo    adapter.CategoryRepository
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewUpdateEntryUseCase creates a new UpdateEntryUseCase instance.
func NewUpdateEntryUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
) *UpdateEntryUseCase {
	return &UpdateEntryUseCase{
		entryRepo:       entryRepo,
		categoryRepo:    categoryRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute performs the entry update. The new category, and payment type when
// present, must belong to the requesting user.
func (uc *UpdateEntryUseCase) Execute(ctx context.Context, input UpdateEntryInput) (*UpdateEntryOutput, error) {
	period, err := valueobject.ParsePeriod(input.Period)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be in YYYY-MM format",
			domainerror.ErrInvalidPeriod,
		)
	}

	entry, err := uc.entryRepo.FindByID(ctx, input.EntryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEntryNotFound) {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeEntryNotFound,
				"entry not found",
				domainerror.ErrEntryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	if entry.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	if err := uc.verifyCategory(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}
	if err := uc.verifyPaymentType(ctx, input.PaymentTypeID, input.UserID); err != nil {
		return nil, err
	}

	entry.Amount = input.Amount
	entry.Description = input.Description
	entry.CategoryID = input.CategoryID
	entry.PaymentTypeID = input.PaymentTypeID
	entry.Period = period
	entry.UpdatedAt = time.Now().UTC()

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &UpdateEntryOutput{Entry: entry}, nil
}

func (uc *UpdateEntryUseCase) verifyCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := uc.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotOwnedByUser,
		)
	}
	return nil
}

func (uc *UpdateEntryUseCase) verifyPaymentType(ctx context.Context, paymentTypeID *uuid.UUID, userID uuid.UUID) error {
	if paymentTypeID == nil {
		return nil
	}
	paymentType, err := uc.paymentTypeRepo.FindByID(ctx, *paymentTypeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentTypeNotFound) {
			return domainerror.NewEntryError(
				domainerror.ErrCodeEntryPaymentTypeNotFound,
				"payment type not found",
				domainerror.ErrPaymentTypeNotFound,
			)
		}
		return fmt.Errorf("failed to find payment type: %w", err)
	}
	if paymentType.UserID != userID {
		return domainerror.NewEntryError(
			domainerror.ErrCodeEntryPaymentTypeNotFound,
			"payment type not found",
			domainerror.ErrPaymentTypeNotOwnedByUser,
		)
	}
	return nil
}
