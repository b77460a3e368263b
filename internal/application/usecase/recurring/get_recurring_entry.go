// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// GetRecurringEntryInput represents the input for retrieving a recurring entry.
type GetRecurringEntryInput struct {
	RecurringEntryID uuid.UUID
	UserID           uuid.UUID
}

// GetRecurringEntryOutput represents the output of retrieving a recurring entry.
type GetRecurringEntryOutput struct {
	RecurringEntry *entity.RecurringEntry
}

// GetRecurringEntryUseCase handles recurring entry retrieval logic.
type GetRecurringEntryUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
}

// NewGetRecurringEntryUseCase creates a new GetRecurringEntryUseCase instance.
func NewGetRecurringEntryUseCase(recurringEntryRepo adapter.RecurringEntryRepository) *GetRecurringEntryUseCase {
	return &GetRecurringEntryUseCase{
		recurringEntryRepo: recurringEntryRepo,
	}
}

// Execute retrieves the recurring entry after verifying ownership.
func (uc *GetRecurringEntryUseCase) Execute(ctx context.Context, input GetRecurringEntryInput) (*GetRecurringEntryOutput, error) {
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

	return &GetRecurringEntryOutput{RecurringEntry: recurringEntry}, nil
}
