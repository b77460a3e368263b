// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

// ProcessDueOutput reports the outcome of one materialization pass.
type ProcessDueOutput struct {
	Processed int
	Created   int
	Skipped   int
	Failed    int
}

// ProcessDueUseCase materializes due recurring entries into ledger entries.
// A recurring entry is due when its next run is on or before the processing
// day (time of day zeroed, so a same-day template fires exactly once).
//
// Each due record is processed independently: a failure on one record is
// logged and counted but does not abort the pass. Because creating the entry
// and advancing next run are two separate writes, the create step is made
// idempotent by checking for an existing entry with the same template and
// period before writing.
type ProcessDueUseCase struct {
	recurringEntryRepo adapter.RecurringEntryRepository
	entryRepo          adapter.EntryRepository
	clock              adapter.Clock
}

// NewProcessDueUseCase creates a new ProcessDueUseCase instance.
func NewProcessDueUseCase(
	recurringEntryRepo adapter.RecurringEntryRepository,
	entryRepo adapter.EntryRepository,
	clock adapter.Clock,
) *ProcessDueUseCase {
	return &ProcessDueUseCase{
		recurringEntryRepo: recurringEntryRepo,
		entryRepo:          entryRepo,
		clock:              clock,
	}
}

// Execute runs one materialization pass over every due recurring entry.
func (uc *ProcessDueUseCase) Execute(ctx context.Context) (*ProcessDueOutput, error) {
	now := uc.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	period := valueobject.PeriodOf(today)

	due, err := uc.recurringEntryRepo.FindDue(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to find due recurring entries: %w", err)
	}

	output := &ProcessDueOutput{}
	if len(due) == 0 {
		return output, nil
	}

	slog.Info("Processing due recurring entries",
		"count", len(due),
		"period", period,
	)

	for _, recurringEntry := range due {
		select {
		case <-ctx.Done():
			return output, ctx.Err()
		default:
		}

		output.Processed++

		created, err := uc.processOne(ctx, recurringEntry, today, period)
		if err != nil {
			output.Failed++
			slog.Error("Failed to process recurring entry",
				"recurring_entry_id", recurringEntry.ID,
				"error", err,
			)
			continue
		}
		if created {
			output.Created++
		} else {
			output.Skipped++
		}
	}

	slog.Info("Recurring entry pass finished",
		"processed", output.Processed,
		"created", output.Created,
		"skipped", output.Skipped,
		"failed", output.Failed,
	)

	return output, nil
}

// processOne materializes a single recurring entry. It returns whether a new
// entry was created; false means an entry for this template and period
// already existed and only next run was advanced.
func (uc *ProcessDueUseCase) processOne(
	ctx context.Context,
	recurringEntry *entity.RecurringEntry,
	today time.Time,
	period valueobject.Period,
) (bool, error) {
	exists, err := uc.entryRepo.ExistsForRecurringEntryAndPeriod(ctx, recurringEntry.ID, period)
	if err != nil {
		return false, fmt.Errorf("failed to check for materialized entry: %w", err)
	}

	created := false
	if !exists {
		entry := entity.NewEntry(
			recurringEntry.Amount,
			recurringEntry.Description,
			recurringEntry.CategoryID,
			recurringEntry.PaymentTypeID,
			period,
			recurringEntry.UserID,
		)
		entry.RecurringEntryID = &recurringEntry.ID

		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return false, fmt.Errorf("failed to create entry: %w", err)
		}
		created = true
	}

	lastRun := today
	recurringEntry.NextRun = recurringEntry.Frequency.Next(recurringEntry.NextRun)
	recurringEntry.LastRun = &lastRun
	recurringEntry.UpdatedAt = time.Now().UTC()

	if err := uc.recurringEntryRepo.Update(ctx, recurringEntry); err != nil {
		return created, fmt.Errorf("failed to advance next run: %w", err)
	}

	return created, nil
}
