// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// EntryFilter defines filter options for listing entries.
type EntryFilter struct {
	UserID uuid.UUID
	Search string // case-insensitive description match
	Period *valueobject.Period
	Sorts  []Sort
}

// EntryListResult represents the result of listing entries.
type EntryListResult struct {
	Entries []*entity.EntryWithCategory
	Total   int64
	Page    int
	Limit   int
}

// EntryRepository defines the interface for entry persistence operations.
type EntryRepository interface {
	// Create creates a new entry in the database.
	Create(ctx context.Context, entry *entity.Entry) error

	// FindByID retrieves an entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error)

	// FindByIDWithCategory retrieves an entry together with its category.
	FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.EntryWithCategory, error)

	// FindByFilter retrieves entries matching the filter with pagination. The
	// find and count run in a single transaction so the total matches the page.
	FindByFilter(ctx context.Context, filter EntryFilter, pagination Pagination) (*EntryListResult, error)

	// CountByCategory counts entries referencing a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)

	// ExistsForRecurringEntryAndPeriod checks whether an entry materialized
	// from the given recurring entry already exists for the period.
	ExistsForRecurringEntryAndPeriod(ctx context.Context, recurringEntryID uuid.UUID, period valueobject.Period) (bool, error)

	// Update updates an existing entry in the database.
	Update(ctx context.Context, entry *entity.Entry) error

	// Delete removes an entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
