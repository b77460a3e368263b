// Package valueobject defines domain value objects shared across features.
package valueobject

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestFrequencyValid(t *testing.T) {
	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly} {
		if !f.Valid() {
			t.Errorf("expected %q to be valid", f)
		}
	}
	if Frequency("hourly").Valid() {
		t.Error("expected 'hourly' to be invalid")
	}
	if Frequency("").Valid() {
		t.Error("expected empty frequency to be invalid")
	}
}

func TestFrequencyNext(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		from      time.Time
		expected  time.Time
	}{
		{name: "daily", frequency: FrequencyDaily, from: date(2024, time.March, 15), expected: date(2024, time.March, 16)},
		{name: "daily across month end", frequency: FrequencyDaily, from: date(2024, time.January, 31), expected: date(2024, time.February, 1)},
		{name: "weekly", frequency: FrequencyWeekly, from: date(2024, time.March, 15), expected: date(2024, time.March, 22)},
		{name: "weekly across year end", frequency: FrequencyWeekly, from: date(2023, time.December, 28), expected: date(2024, time.January, 4)},
		{name: "monthly plain", frequency: FrequencyMonthly, from: date(2024, time.March, 15), expected: date(2024, time.April, 15)},
		{name: "monthly jan 31 clamps to leap feb", frequency: FrequencyMonthly, from: date(2024, time.January, 31), expected: date(2024, time.February, 29)},
		{name: "monthly jan 31 clamps to non-leap feb", frequency: FrequencyMonthly, from: date(2023, time.January, 31), expected: date(2023, time.February, 28)},
		{name: "monthly may 31 clamps to june 30", frequency: FrequencyMonthly, from: date(2024, time.May, 31), expected: date(2024, time.June, 30)},
		{name: "monthly december wraps year", frequency: FrequencyMonthly, from: date(2024, time.December, 10), expected: date(2025, time.January, 10)},
		{name: "yearly plain", frequency: FrequencyYearly, from: date(2024, time.March, 15), expected: date(2025, time.March, 15)},
		{name: "yearly feb 29 clamps to feb 28", frequency: FrequencyYearly, from: date(2024, time.February, 29), expected: date(2025, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.frequency.Next(tt.from)
			if !got.Equal(tt.expected) {
				t.Errorf("%s.Next(%v) = %v, expected %v", tt.frequency, tt.from, got, tt.expected)
			}
		})
	}
}

// Next must always move strictly forward or the materializer would loop on
// the same due entry forever.
func TestFrequencyNextAlwaysAdvances(t *testing.T) {
	frequencies := []Frequency{FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly}

	// Walk four years of start days, including both leap and non-leap Februaries.
	for _, f := range frequencies {
		current := date(2023, time.January, 1)
		end := date(2027, time.January, 1)
		for current.Before(end) {
			next := f.Next(current)
			if !next.After(current) {
				t.Fatalf("%s.Next(%v) = %v did not advance", f, current, next)
			}
			current = current.AddDate(0, 0, 1)
		}
	}
}

func TestFrequencyNextPreservesTimeOfDay(t *testing.T) {
	from := time.Date(2024, time.January, 31, 9, 30, 15, 0, time.UTC)
	next := FrequencyMonthly.Next(from)
	if next.Hour() != 9 || next.Minute() != 30 || next.Second() != 15 {
		t.Errorf("time of day changed: %v", next)
	}
}
