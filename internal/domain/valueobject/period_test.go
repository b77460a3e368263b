// Package valueobject defines domain value objects shared across features.
package valueobject

import (
	"testing"
	"time"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "valid january", raw: "2024-01", wantErr: false},
		{name: "valid december", raw: "2024-12", wantErr: false},
		{name: "month zero", raw: "2024-00", wantErr: true},
		{name: "month thirteen", raw: "2024-13", wantErr: true},
		{name: "unpadded month", raw: "2024-1", wantErr: true},
		{name: "missing month", raw: "2024", wantErr: true},
		{name: "full date", raw: "2024-01-15", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePeriod(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParsePeriod(%q) expected error, got %q", tt.raw, p)
				}
				return
			}
			if err != nil {
				t.Errorf("ParsePeriod(%q) unexpected error: %v", tt.raw, err)
			}
			if p.String() != tt.raw {
				t.Errorf("expected %q, got %q", tt.raw, p)
			}
		})
	}
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2024, time.March, 7, 15, 30, 0, 0, time.UTC))
	if p != "2024-03" {
		t.Errorf("expected 2024-03, got %q", p)
	}
}

func TestPeriodPrevious(t *testing.T) {
	tests := []struct {
		period   Period
		expected Period
	}{
		{period: "2024-03", expected: "2024-02"},
		{period: "2024-01", expected: "2023-12"},
		{period: "2024-12", expected: "2024-11"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			if got := tt.period.Previous(); got != tt.expected {
				t.Errorf("Previous(%q) = %q, expected %q", tt.period, got, tt.expected)
			}
		})
	}
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		lastDay int
	}{
		{name: "january", year: 2024, month: time.January, lastDay: 31},
		{name: "february leap year", year: 2024, month: time.February, lastDay: 29},
		{name: "february non-leap year", year: 2023, month: time.February, lastDay: 28},
		{name: "february century non-leap", year: 2100, month: time.February, lastDay: 28},
		{name: "april", year: 2024, month: time.April, lastDay: 30},
		{name: "december", year: 2024, month: time.December, lastDay: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)

			if !start.Before(end) {
				t.Errorf("start %v is not before end %v", start, end)
			}
			if start.Day() != 1 || start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 {
				t.Errorf("start is not the first instant of the month: %v", start)
			}
			if end.Day() != tt.lastDay {
				t.Errorf("end day = %d, expected %d", end.Day(), tt.lastDay)
			}
			if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
				t.Errorf("end is not 23:59:59: %v", end)
			}
			if start.Month() != tt.month || end.Month() != tt.month {
				t.Errorf("bounds left the month: %v .. %v", start, end)
			}
		})
	}
}

func TestPeriodBounds(t *testing.T) {
	start, end := Period("2024-02").Bounds()
	if start.Year() != 2024 || start.Month() != time.February || start.Day() != 1 {
		t.Errorf("unexpected start %v", start)
	}
	if end.Day() != 29 {
		t.Errorf("expected leap-year end day 29, got %d", end.Day())
	}
}
