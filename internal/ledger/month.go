// Package ledger groups transactions into calendar months and computes
// per-month aggregates. All functions are pure; callers supply the full
// transaction sequence and a reference time.
package ledger

import (
	"time"
)

// Month is a calendar month key in YYYY-MM form. Because dates are stored
// ISO-ordered, month membership is a prefix match on the date.
type Month string

const monthLayout = "2006-01"

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month(t.Format(monthLayout))
}

// ParseMonth parses a YYYY-MM key.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return "", err
	}
	return MonthOf(t), nil
}

// Time returns midnight on the first day of the month.
func (m Month) Time() time.Time {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return time.Time{}
	}
	return t
}

// Prev returns the previous calendar month. Walking through the first of
// the month keeps the arithmetic correct across 28-31 day months and year
// boundaries.
func (m Month) Prev() Month {
	return MonthOf(m.Time().AddDate(0, -1, 0))
}

// Next returns the following calendar month.
func (m Month) Next() Month {
	return MonthOf(m.Time().AddDate(0, 1, 0))
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	first := m.Time()
	return first.AddDate(0, 1, -first.Day()).Day()
}

// Name returns a display name like "November 2024".
func (m Month) Name() string {
	t := m.Time()
	if t.IsZero() {
		return string(m)
	}
	return t.Format("January 2006")
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return MonthOf(t) == m
}

// LastN returns the n months ending at the month containing now, newest
// first. n <= 0 yields an empty slice.
func LastN(now time.Time, n int) []Month {
	if n <= 0 {
		return nil
	}
	months := make([]Month, 0, n)
	m := MonthOf(now)
	for i := 0; i < n; i++ {
		months = append(months, m)
		m = m.Prev()
	}
	return months
}

// MonthsBetween counts whole calendar months from a to b, never less than
// zero. Partial months round down.
func MonthsBetween(a, b time.Time) int {
	if b.Before(a) {
		return 0
	}
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
