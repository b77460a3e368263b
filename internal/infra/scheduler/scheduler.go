// Package scheduler runs the daily recurring entry materialization job.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/personal-ledger/backend/internal/application/adapter"
	"github.com/personal-ledger/backend/internal/application/usecase/recurring"
)

// Scheduler triggers the recurring entry materializer once per day, shortly
// after midnight UTC. A manual trigger through the jobs endpoint runs the
// same use case; the unique entry constraint keeps overlapping runs from
// duplicating entries.
type Scheduler struct {
	processDue *recurring.ProcessDueUseCase
	clock      adapter.Clock
	runAt      time.Duration
}

// Config holds configuration for the scheduler.
type Config struct {
	// RunAt is the offset past midnight UTC at which the daily run fires.
	RunAt time.Duration
}

// DefaultConfig returns the default scheduler configuration.
func DefaultConfig() Config {
	return Config{
		RunAt: 5 * time.Minute,
	}
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(processDue *recurring.ProcessDueUseCase, clock adapter.Clock, config Config) *Scheduler {
	return &Scheduler{
		processDue: processDue,
		clock:      clock,
		runAt:      config.RunAt,
	}
}

// Start begins the scheduler loop. It runs one pass immediately to catch up
// on anything missed while the process was down, then blocks until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	slog.Info("Recurring entry scheduler started", "run_at_offset", s.runAt)

	s.run(ctx)

	for {
		wait := s.untilNextRun()
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			slog.Info("Recurring entry scheduler shutting down")
			return
		case <-timer.C:
			s.run(ctx)
		}
	}
}

// run executes one materialization pass.
func (s *Scheduler) run(ctx context.Context) {
	output, err := s.processDue.Execute(ctx)
	if err != nil {
		slog.Error("Recurring entry materialization failed", "error", err)
		return
	}

	slog.Info("Recurring entry materialization finished",
		"processed", output.Processed,
		"created", output.Created,
		"skipped", output.Skipped,
		"failed", output.Failed,
	)
}

// untilNextRun computes the duration until the next scheduled run.
func (s *Scheduler) untilNextRun() time.Duration {
	now := s.clock.Now().UTC()
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Add(s.runAt)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
