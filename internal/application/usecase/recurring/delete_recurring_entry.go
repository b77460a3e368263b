// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// DeleteRecurringEntryInput represents the input for recurring entry deletion.
type DeleteRecurringEntryInput struct {
	RecurringEntryID uuid.UUID
	UserID           uuid.UUID
}

// DeleteRecurringEntryOutput represents the output of recurring entry deletion.
type DeleteRecurringEntryOutput struct {
	Success bool
}

// DeleteRecurringEntryUseCase handles recurring entry deletion logic.
type DeleteRecurringEntryUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
}

// NewDeleteRecurringEntryUseCase creates a new DeleteRecurringEntryUseCase instance.
func NewDeleteRecurringEntryUseCase(recurringEntryRepo adapter.RecurringEntryRepository) *DeleteRecurringEntryUseCase {
	return &DeleteRecurringEntryUseCase{
		recurringEntryRepo: recurringEntryRepo,
	}
}

// Execute deletes a recurring entry after verifying ownership. Entries already
// materialized from the template keep their link and are not touched.
func (uc *DeleteRecurringEntryUseCase) Execute(ctx context.Context, input DeleteRecurringEntryInput) (*DeleteRecurringEntryOutput, error) {
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

	if err := uc.recurringEntryRepo.Delete(ctx, input.RecurringEntryID); err != nil {
		return nil, fmt.Errorf("failed to delete recurring entry: %w", err)
	}

	return &DeleteRecurringEntryOutput{Success: true}, nil
}
