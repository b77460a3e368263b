// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/domain/entity"
)

// RecurringEntryListResult represents the result of listing recurring entries.
type RecurringEntryListResult struct {
	RecurringEntries []*entity.RecurringEntry
	Total            int64
	Page             int
	Limit            int
}

// RecurringEntryRepository defines the interface for recurring entry persistence operations.
type RecurringEntryRepository interface {
	// Create creates a new recurring entry in the database.
	Create(ctx context.Context, recurringEntry *entity.RecurringEntry) error

	// FindByID retrieves a recurring entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error)

	// FindByUser retrieves recurring entries owned by a user with pagination.
	FindByUser(ctx context.Context, userID uuid.UUID, search string, pagination Pagination) (*RecurringEntryListResult, error)

	// FindDue retrieves every recurring entry whose next run is on or before
	// the cutoff, across all users.
	FindDue(ctx context.Context, cutoff time.Time) ([]*entity.RecurringEntry, error)

	// Update updates an existing recurring entry in the database.
	Update(ctx context.Context, recurringEntry *entity.RecurringEntry) error

	// Delete removes a recurring entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
