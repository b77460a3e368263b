// Package entry contains ledger entry-related use cases.
package entry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	domainerror "github.com/personal-ledger/backend/internal/domain/error"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// ListEntriesInput represents the input for listing entries.
type ListEntriesInput struct {
	UserID uuid.UUID
	Search string
	Period string
	Sorts  []adapter.Sort
	Page   int
	Limit  int
}

// ListEntriesOutput represents the output of listing entries.
type ListEntriesOutput struct {
	Entries []*entity.EntryWithCategory
	Total   int64
	Page    int
	Limit   int
}

// ListEntriesUseCase handles entry listing logic.
type ListEntriesUseCase struct {
	entryRepo adapter.EntryRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(entryRepo adapter.EntryRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
	}
}

// Execute retrieves the user's entries matching the optional search and
// period filters.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}

	filter := adapter.EntryFilter{
		UserID: input.UserID,
		Search: input.Search,
		Sorts:  input.Sorts,
	}

	if input.Period != "" {
		period, err := valueobject.ParsePeriod(input.Period)
		if err != nil {
			return nil, domainerror.NewEntryError(
				domainerror.ErrCodeInvalidPeriod,
				"period must be in YYYY-MM format",
				domainerror.ErrInvalidPeriod,
			)
		}
		filter.Period = &period
	}

	result, err := uc.entryRepo.FindByFilter(ctx, filter,
		adapter.Pagination{Page: input.Page, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	return &ListEntriesOutput{
		Entries: result.Entries,
		Total:   result.Total,
		Page:    result.Page,
		Limit:   result.Limit,
	}, nil
}
