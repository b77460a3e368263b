// Package valueobject defines domain value objects shared across features.
package valueobject

import (
	"fmt"
	"regexp"
	"time"
)

// Period is an accounting month in "YYYY-MM" form. It identifies the month
// an entry counts toward, independent of when the record was created.
type Period string

// periodPattern validates the YYYY-MM form with a zero-padded month.
var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// NewPeriod builds a Period from a year and month.
func NewPeriod(year int, month time.Month) Period {
	return Period(fmt.Sprintf("%04d-%02d", year, int(month)))
}

// ParsePeriod validates and converts a raw string into a Period.
func ParsePeriod(raw string) (Period, error) {
	if !periodPattern.MatchString(raw) {
		return "", fmt.Errorf("invalid period %q: expected YYYY-MM", raw)
	}
	return Period(raw), nil
}

// PeriodOf returns the accounting month a timestamp falls in.
func PeriodOf(t time.Time) Period {
	return NewPeriod(t.Year(), t.Month())
}

// String returns the period in YYYY-MM form.
func (p Period) String() string {
	return string(p)
}

// Year returns the calendar year of the period.
func (p Period) Year() int {
	var year int
	var month int
	fmt.Sscanf(string(p), "%d-%d", &year, &month)
	return year
}

// Month returns the calendar month of the period.
func (p Period) Month() time.Month {
	var year int
	var month int
	fmt.Sscanf(string(p), "%d-%d", &year, &month)
	return time.Month(month)
}

// Previous returns the preceding accounting month, wrapping January back to
// December of the prior year.
func (p Period) Previous() Period {
	year, month := p.Year(), p.Month()
	if month == time.January {
		return NewPeriod(year-1, time.December)
	}
	return NewPeriod(year, month-1)
}

// MonthBounds returns the inclusive boundary timestamps of a calendar month:
// the first instant of day one and 23:59:59 of the last real day. Month
// lengths and leap years follow the calendar.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Bounds returns the boundary timestamps of the period's month.
func (p Period) Bounds() (time.Time, time.Time) {
	return MonthBounds(p.Year(), p.Month())
}
