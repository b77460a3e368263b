// Package entry contains ledger entry-related use cases.
package entry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
)

// GetEntryInput represents the input for retrieving an entry.
type GetEntryInput struct {
	EntryID uuid.UUID
	UserID  uuid.UUID
}

// GetEntryOutput represents the output of retrieving an entry.
type GetEntryOutput struct {
	Entry *entity.EntryWithCategory
}

// GetEntryUseCase handles entry retrieval logic.
type GetEntryUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewGetEntryUseCase creates a new GetEntryUseCase instance.
func NewGetEntryUseCase(entryRepo adapter.EntryRepository) *GetEntryUseCase {
	return &GetEntryUseCase{
		entryRepo: entryRepo,
	}
}

// Execute retrieves the entry and its category after verifying ownership.
func (uc *GetEntryUseCase) Execute(ctx context.Context, input GetEntryInput) (*GetEntryOutput, error) {
	entry, err := uc.entryRepo.FindByIDWithCategory(ctx, input.EntryID)
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

	if entry.Entry.UserID != input.UserID {
		return nil, domainerror.NewEntryError(
			domainerror.ErrCodeEntryNotFound,
			"entry not found",
			domainerror.ErrEntryNotFound,
		)
	}

	return &GetEntryOutput{Entry: entry}, nil
}
