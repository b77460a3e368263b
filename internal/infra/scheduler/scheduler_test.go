package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/application/usecase/recurring"
	"github.com/personal-ledger/backend/internal/domain/entity"
	"github.com/personal-ledger/backend/internal/domain/valueobject"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type countingRecurringRepo struct {
	findDueCalls atomic.Int64
}

func (r *countingRecurringRepo) Create(context.Context, *entity.RecurringEntry) error {
	panic("not used")
}

func (r *countingRecurringRepo) FindByID(context.Context, uuid.UUID) (*entity.RecurringEntry, error) {
	panic("not used")
}

func (r *countingRecurringRepo) FindByUser(context.Context, uuid.UUID, string, adapter.Pagination) (*adapter.RecurringEntryListResult, error) {
	panic("not used")
}

func (r *countingRecurringRepo) FindDue(context.Context, time.Time) ([]*entity.RecurringEntry, error) {
	r.findDueCalls.Add(1)
	return nil, nil
}

func (r *countingRecurringRepo) Update(context.Context, *entity.RecurringEntry) error {
	panic("not used")
}

func (r *countingRecurringRepo) Delete(context.Context, uuid.UUID) error {
	panic("not used")
}

type noopEntryRepo struct{}

func (noopEntryRepo) Create(context.Context, *entity.Entry) error { panic("not used") }

func (noopEntryRepo) FindByID(context.Context, uuid.UUID) (*entity.Entry, error) {
	panic("not used")
}

func (noopEntryRepo) FindByIDWithCategory(context.Context, uuid.UUID) (*entity.EntryWithCategory, error) {
	panic("not used")
}

func (noopEntryRepo) FindByFilter(context.Context, adapter.EntryFilter, adapter.Pagination) (*adapter.EntryListResult, error) {
	panic("not used")
}

func (noopEntryRepo) CountByCategory(context.Context, uuid.UUID) (int64, error) {
	panic("not used")
}

func (noopEntryRepo) ExistsForRecurringEntryAndPeriod(context.Context, uuid.UUID, valueobject.Period) (bool, error) {
	panic("not used")
}

func (noopEntryRepo) Update(context.Context, *entity.Entry) error { panic("not used") }

func (noopEntryRepo) Delete(context.Context, uuid.UUID) error { panic("not used") }

func TestUntilNextRun(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{
			name: "BeforeTodaysRun",
			now:  time.Date(2024, 3, 10, 0, 1, 0, 0, time.UTC),
			want: 4 * time.Minute,
		},
		{
			name: "AfterTodaysRun",
			now:  time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			want: 12*time.Hour + 5*time.Minute,
		},
		{
			name: "ExactlyAtRunTime",
			now:  time.Date(2024, 3, 10, 0, 5, 0, 0, time.UTC),
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler(nil, fixedClock{now: tt.now}, DefaultConfig())
			if got := s.untilNextRun(); got != tt.want {
				t.Errorf("untilNextRun() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStartRunsImmediatelyAndStopsOnCancel(t *testing.T) {
	recurringRepo := &countingRecurringRepo{}
	useCase := recurring.NewProcessDueUseCase(recurringRepo, noopEntryRepo{}, adapter.SystemClock{})

	s := NewScheduler(useCase, adapter.SystemClock{}, DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for recurringRepo.findDueCalls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("scheduler never ran the initial pass")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancellation")
	}
}
