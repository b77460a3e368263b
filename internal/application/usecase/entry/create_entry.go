// Package entry contains ledger entry-related use cases.
package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// CreateEntryInput represents the input for entry creation.
type CreateEntryInput struct {
	Amount        decimal.Decimal
	Description   string
	CategoryID    uuid.UUID
	PaymentTypeID *uuid.UUID
	Period        string
	UserID        uuid.UUID
}

// CreateEntryOutput represents the output of entry creation.
type CreateEntryOutput struct {
	Entry *entity.Entry
}

// CreateEntryUseCase handles entry creation logic.
type CreateEntryUseCase struct {
	entryRepo       adapter.EntryRepository
	categoryRepo    adapter.CategoryRepository
	paymentTypeRepo adapter.PaymentTypeRepository
}

// NewCreateEntryUseCase creates a new CreateEntryUseCase instance.
func NewCreateEntryUseCase(
	entryRepo adapter.EntryRepository,
	categoryRepo adapter.CategoryRepository,
	paymentTypeRepo adapter.PaymentTypeRepository,
) *CreateEntryUseCase {
	return &CreateEntryUseCase{
		entryRepo:       entryRepo,
		categoryRepo:    categoryRepo,
		paymentTypeRepo: paymentTypeRepo,
	}
}

// Execute performs the entry creation. The referenced category, and payment
// type when present, must belong to the requesting user.
func (uc *CreateEntryUseCase) Execute(ctx context.Context, input CreateEntryInput) (*CreateEntryOutput, error) {
	period, err := valueobject.ParsePeriod(input.Period)
	if err != nil {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be in YYYY-MM format",
			domainerror.ErrInvalidPeriod,
		)
	}

	if err := uc.verifyCategory(ctx, input.CategoryID, input.UserID); err != nil {
		return nil, err
	}
	if err := uc.verifyPaymentType(ctx, input.PaymentTypeID, input.UserID); err != nil {
		return nil, err
	}

	entry := entity.NewEntry(
		input.Amount,
		input.Description,
		input.CategoryID,
		input.PaymentTypeID,
		period,
		input.UserID,
	)

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &CreateEntryOutput{Entry: entry}, nil
}

func (uc *CreateEntryUseCase) verifyCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
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

func (uc *CreateEntryUseCase) verifyPaymentType(ctx context.Context, paymentTypeID *uuid.UUID, userID uuid.UUID) error {
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
