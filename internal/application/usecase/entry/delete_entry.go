// Package entry contains ledger entry-related use cases.
package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for entry deletion.
type DeleteEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// DeleteEntryOutput represents the output of entry deletion.
type DeleteEntryOutput struct {
	Success bool
}

// DeleteEntryUseCase handles entry deletion logic.
type DeleteEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(entryRepo adapter.EntryRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute deletes an entry after verifying ownership. Entry deletion is
// unrestricted, nothing references entries.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
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

	if err := uc.entryRepo.Delete(ctx, input.EntryID); err != nil {
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	return &DeleteEntryOutput{Success: true}, nil
}
