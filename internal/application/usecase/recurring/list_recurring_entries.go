// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
)

// ListRecurringEntriesInput represents the input for listing recurring entries.
type ListRecurringEntriesInput struct {
	UserID uuid.UUID
	Search string
	Page   int
	Limit  int
}

// ListRecurringEntriesOutput represents the output of listing recurring entries.
type ListRecurringEntriesOutput struct {
	RecurringEntries []*entity.RecurringEntry
	Total            int64
	Page             int
	Limit            int
}

// ListRecurringEntriesUseCase handles recurring entry listing logic.
type ListRecurringEntriesUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
}

// NewListRecurringEntriesUseCase creates a new ListRecurringEntriesUseCase instance.
func NewListRecurringEntriesUseCase(recurringEntryRepo adapter.RecurringEntryRepository) *ListRecurringEntriesUseCase {
	return &ListRecurringEntriesUseCase{
		recurringEntryRepo: recurringEntryRepo,
	}
}

// Execute retrieves the user's recurring entries.
func (uc *ListRecurringEntriesUseCase) Execute(ctx context.Context, input ListRecurringEntriesInput) (*ListRecurringEntriesOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 10
	}

	result, err := uc.recurringEntryRepo.FindByUser(ctx, input.UserID, input.Search,
		adapter.Pagination{Page: input.Page, Limit: input.Limit})
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring entries: %w", err)
	}

	return &ListRecurringEntriesOutput{
		RecurringEntries: result.RecurringEntries,
		Total:            result.Total,
		Page:             result.Page,
		Limit:            result.Limit,
	}, nil
}
