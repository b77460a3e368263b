// Package valueobject defines domain value objects shared across features.
package valueobject

import "time"

// Frequency is the recurrence interval of a recurring entry.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Valid reports whether the frequency is one of the known values.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Next computes the occurrence that follows t. Monthly and yearly steps keep
// the original day-of-month and clamp it to the last valid day of the target
// month (Jan 31 -> Feb 28/29, Feb 29 -> Feb 28 on non-leap years), so a step
// never spills into the month after the intended one. The result is always
// strictly after t.
func (f Frequency) Next(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return addMonthClamped(t, 1)
	case FrequencyYearly:
		return addYearClamped(t, 1)
	}
	return t.AddDate(0, 0, 1)
}

// addMonthClamped adds calendar months, clamping the day-of-month to the
// target month's length instead of letting time.AddDate roll it over.
func addMonthClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	month += time.Month(months)
	// normalize month overflow (e.g. December + 1)
	year += int(month-1) / 12
	month = (month-1)%12 + 1

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// addYearClamped adds calendar years, clamping Feb 29 to Feb 28 when the
// target year is not a leap year.
func addYearClamped(t time.Time, years int) time.Time {
	year, month, day := t.Date()
	year += years

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in the given month.
func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
