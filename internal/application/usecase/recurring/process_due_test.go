// Package recurring contains recurring entry use cases, including the
// scheduled materializer that turns due templates into ledger entries.
package recurring

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeRecurringEntryRepo is an in-memory RecurringEntryRepository for
// materializer tests. Only the methods the materializer touches are real;
// the rest panic to catch accidental use.
type fakeRecurringEntryRepo struct {
	records   map[uuid.UUID]*entity.RecurringEntry
	updateErr map[uuid.UUID]error
}

func newFakeRecurringEntryRepo(records ...*entity.RecurringEntry) *fakeRecurringEntryRepo {
	repo := &fakeRecurringEntryRepo{
		records:   make(map[uuid.UUID]*entity.RecurringEntry),
		updateErr: make(map[uuid.UUID]error),
	}
	for _, r := range records {
		repo.records[r.ID] = r
	}
	return repo
}

func (f *fakeRecurringEntryRepo) Create(ctx context.Context, r *entity.RecurringEntry) error {
	f.records[r.ID] = r
	return nil
}

func (f *fakeRecurringEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringEntry, error) {
	panic("not used")
}

func (f *fakeRecurringEntryRepo) FindByUser(ctx context.Context, userID uuid.UUID, search string, pagination adapter.Pagination) (*adapter.RecurringEntryListResult, error) {
	panic("not used")
}

func (f *fakeRecurringEntryRepo) FindDue(ctx context.Context, cutoff time.Time) ([]*entity.RecurringEntry, error) {
	var due []*entity.RecurringEntry
	for _, r := range f.records {
		if !r.NextRun.After(cutoff) {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeRecurringEntryRepo) Update(ctx context.Context, r *entity.RecurringEntry) error {
	if err := f.updateErr[r.ID]; err != nil {
		return err
	}
	f.records[r.ID] = r
	return nil
}

func (f *fakeRecurringEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.records, id)
	return nil
}

// fakeEntryRepo records created entries and answers the idempotence check
// from what it has seen.
type fakeEntryRepo struct {
	created   []*entity.Entry
	createErr error
}

func (f *fakeEntryRepo) Create(ctx context.Context, e *entity.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, e)
	return nil
}

func (f *fakeEntryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entry, error) {
	panic("not used")
}

func (f *fakeEntryRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.EntryWithCategory, error) {
	panic("not used")
}

func (f *fakeEntryRepo) FindByFilter(ctx context.Context, filter adapter.EntryFilter, pagination adapter.Pagination) (*adapter.EntryListResult, error) {
	panic("not used")
}

func (f *fakeEntryRepo) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	panic("not used")
}

func (f *fakeEntryRepo) ExistsForRecurringEntryAndPeriod(ctx context.Context, recurringEntryID uuid.UUID, period valueobject.Period) (bool, error) {
	for _, e := range f.created {
		if e.RecurringEntryID != nil && *e.RecurringEntryID == recurringEntryID && e.Period == period {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEntryRepo) Update(ctx context.Context, e *entity.Entry) error {
	panic("not used")
}

func (f *fakeEntryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	panic("not used")
}

func newRecurringEntry(frequency valueobject.Frequency, nextRun time.Time) *entity.RecurringEntry {
	paymentTypeID := uuid.New()
	return entity.NewRecurringEntry(
		decimal.NewFromFloat(99.90),
		"gym membership",
		frequency,
		uuid.New(),
		&paymentTypeID,
		nextRun,
		uuid.New(),
	)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestProcessDue_MaterializesDueEntry(t *testing.T) {
	recurringEntry := newRecurringEntry(valueobject.FrequencyMonthly, date(2024, time.January, 31))
	recurringRepo := newFakeRecurringEntryRepo(recurringEntry)
	entryRepo := &fakeEntryRepo{}

	uc := NewProcessDueUseCase(recurringRepo, entryRepo, fixedClock{now: date(2024, time.February, 1).Add(15 * time.Hour)})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Processed != 1 || output.Created != 1 || output.Skipped != 0 || output.Failed != 0 {
		t.Fatalf("unexpected report: %+v", output)
	}

	if len(entryRepo.created) != 1 {
		t.Fatalf("expected 1 created entry, got %d", len(entryRepo.created))
	}

	entry := entryRepo.created[0]
	if entry.Period != valueobject.Period("2024-02") {
		t.Errorf("expected period 2024-02, got %s", entry.Period)
	}
	if entry.RecurringEntryID == nil || *entry.RecurringEntryID != recurringEntry.ID {
		t.Error("expected entry to link back to the recurring entry")
	}
	if !entry.Amount.Equal(recurringEntry.Amount) {
		t.Errorf("expected amount %s, got %s", recurringEntry.Amount, entry.Amount)
	}
	if entry.UserID != recurringEntry.UserID {
		t.Error("expected entry to belong to the template owner")
	}

	// next_run advances from the template's own next_run, clamped to the
	// last valid day of the target month.
	wantNextRun := date(2024, time.February, 29)
	if !recurringEntry.NextRun.Equal(wantNextRun) {
		t.Errorf("expected next run %s, got %s", wantNextRun, recurringEntry.NextRun)
	}
	if recurringEntry.LastRun == nil || !recurringEntry.LastRun.Equal(date(2024, time.February, 1)) {
		t.Errorf("expected last run 2024-02-01, got %v", recurringEntry.LastRun)
	}
}

func TestProcessDue_SameDayTemplateFires(t *testing.T) {
	// Due check zeroes time of day, so a template due today fires even when
	// the pass runs before the template's timestamp.
	recurringEntry := newRecurringEntry(valueobject.FrequencyDaily, date(2024, time.March, 10))
	recurringRepo := newFakeRecurringEntryRepo(recurringEntry)
	entryRepo := &fakeEntryRepo{}

	uc := NewProcessDueUseCase(recurringRepo, entryRepo, fixedClock{now: date(2024, time.March, 10).Add(2 * time.Hour)})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Created != 1 {
		t.Fatalf("expected 1 created entry, got %d", output.Created)
	}
}

func TestProcessDue_PendingTemplateDoesNotFire(t *testing.T) {
	recurringEntry := newRecurringEntry(valueobject.FrequencyMonthly, date(2024, time.March, 11))
	recurringRepo := newFakeRecurringEntryRepo(recurringEntry)
	entryRepo := &fakeEntryRepo{}

	uc := NewProcessDueUseCase(recurringRepo, entryRepo, fixedClock{now: date(2024, time.March, 10)})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Processed != 0 || len(entryRepo.created) != 0 {
		t.Fatalf("expected no processing, got %+v", output)
	}
}

func TestProcessDue_SecondRunSameDayIsIdempotent(t *testing.T) {
	recurringEntry := newRecurringEntry(valueobject.FrequencyMonthly, date(2024, time.January, 31))
	recurringRepo := newFakeRecurringEntryRepo(recurringEntry)
	entryRepo := &fakeEntryRepo{}

	// First run creates the entry but fails to advance next_run, leaving the
	// template due again.
	recurringRepo.updateErr[recurringEntry.ID] = errors.New("write timeout")

	clock := fixedClock{now: date(2024, time.February, 1)}
	uc := NewProcessDueUseCase(recurringRepo, entryRepo, clock)

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Failed != 1 || len(entryRepo.created) != 1 {
		t.Fatalf("expected failed advance after create, got %+v", output)
	}

	// Second run the same day must not duplicate the entry for the period.
	recurringRepo.updateErr[recurringEntry.ID] = nil

	output, err = uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Created != 0 || output.Skipped != 1 {
		t.Fatalf("expected skip on second run, got %+v", output)
	}
	if len(entryRepo.created) != 1 {
		t.Fatalf("expected 1 entry total, got %d", len(entryRepo.created))
	}
}

func TestProcessDue_FailureOnOneRecordDoesNotAbortBatch(t *testing.T) {
	failing := newRecurringEntry(valueobject.FrequencyWeekly, date(2024, time.April, 1))
	healthy := newRecurringEntry(valueobject.FrequencyWeekly, date(2024, time.April, 1))
	recurringRepo := newFakeRecurringEntryRepo(failing, healthy)
	recurringRepo.updateErr[failing.ID] = errors.New("connection reset")
	entryRepo := &fakeEntryRepo{}

	uc := NewProcessDueUseCase(recurringRepo, entryRepo, fixedClock{now: date(2024, time.April, 2)})

	output, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Processed != 2 {
		t.Fatalf("expected 2 processed, got %d", output.Processed)
	}
	if output.Failed != 1 || output.Created != 1 {
		t.Fatalf("expected one failure and one success, got %+v", output)
	}
	if !healthy.NextRun.Equal(date(2024, time.April, 8)) {
		t.Errorf("expected healthy next run 2024-04-08, got %s", healthy.NextRun)
	}
}

func TestProcessDue_YearlyAdvanceClampsLeapDay(t *testing.T) {
	recurringEntry := newRecurringEntry(valueobject.FrequencyYearly, date(2024, time.February, 29))
	recurringRepo := newFakeRecurringEntryRepo(recurringEntry)
	entryRepo := &fakeEntryRepo{}

	uc := NewProcessDueUseCase(recurringRepo, entryRepo, fixedClock{now: date(2024, time.February, 29)})

	if _, err := uc.Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantNextRun := date(2025, time.February, 28)
	if !recurringEntry.NextRun.Equal(wantNextRun) {
		t.Errorf("expected next run %s, got %s", wantNextRun, recurringEntry.NextRun)
	}
}
