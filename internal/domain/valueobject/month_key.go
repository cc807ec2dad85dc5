// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

import (
	"fmt"
	"time"
)

// monthKeyLayout is the canonical wire format for month keys ("2006-01").
const monthKeyLayout = "2006-01"

// MonthKey identifies a calendar month. It is the partition key for all
// instance generation and aggregation.
type MonthKey struct {
	year  int
	month time.Month
}

// NewMonthKey creates a MonthKey from a year and month number.
func NewMonthKey(year int, month time.Month) MonthKey {
	return MonthKey{year: year, month: month}
}

// ParseMonthKey parses a canonical "YYYY-MM" key. This is the only place
// malformed keys are rejected; every other MonthKey operation assumes a
// valid key.
func ParseMonthKey(s string) (MonthKey, error) {
	t, err := time.Parse(monthKeyLayout, s)
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return MonthKey{year: t.Year(), month: t.Month()}, nil
}

// MonthKeyOf returns the MonthKey containing the given instant.
func MonthKeyOf(t time.Time) MonthKey {
	return MonthKey{year: t.Year(), month: t.Month()}
}

// String returns the canonical "YYYY-MM" representation.
func (k MonthKey) String() string {
	return fmt.Sprintf("%04d-%02d", k.year, int(k.month))
}

// MarshalText implements encoding.TextMarshaler so keys serialize as
// "YYYY-MM" in JSON payloads and cache entries.
func (k MonthKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *MonthKey) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Year returns the four-digit year.
func (k MonthKey) Year() int {
	return k.year
}

// Month returns the month number (1-12).
func (k MonthKey) Month() time.Month {
	return k.month
}

// Previous returns the preceding month, rolling across year boundaries.
func (k MonthKey) Previous() MonthKey {
	if k.month == time.January {
		return MonthKey{year: k.year - 1, month: time.December}
	}
	return MonthKey{year: k.year, month: k.month - 1}
}

// Next returns the following month, rolling across year boundaries.
func (k MonthKey) Next() MonthKey {
	if k.month == time.December {
		return MonthKey{year: k.year + 1, month: time.January}
	}
	return MonthKey{year: k.year, month: k.month + 1}
}

// DaysInMonth returns the number of days in the month, accounting for
// leap years. Day 0 of the next month normalizes to the last day of
// this month.
func (k MonthKey) DaysInMonth() int {
	return time.Date(k.year, k.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay clamps a day-of-month anchor to the month's actual length,
// so a template anchored at day 31 falls on day 28/29/30 in shorter months.
func (k MonthKey) ClampDay(day int) int {
	if max := k.DaysInMonth(); day > max {
		return max
	}
	return day
}

// FirstDay returns midnight UTC on the first day of the month.
func (k MonthKey) FirstDay() time.Time {
	return time.Date(k.year, k.month, 1, 0, 0, 0, 0, time.UTC)
}

// LastDay returns midnight UTC on the last day of the month.
func (k MonthKey) LastDay() time.Time {
	return time.Date(k.year, k.month, k.DaysInMonth(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the given instant falls within the month.
func (k MonthKey) Contains(t time.Time) bool {
	return t.Year() == k.year && t.Month() == k.month
}

// IsCurrent reports whether the key denotes the month containing now.
// The caller supplies now so tests can simulate arbitrary dates.
func (k MonthKey) IsCurrent(now time.Time) bool {
	return k.Contains(now)
}

// Before reports whether k is strictly earlier than other.
func (k MonthKey) Before(other MonthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// After reports whether k is strictly later than other.
func (k MonthKey) After(other MonthKey) bool {
	return other.Before(k)
}
