package model

import "fmt"

// Period is the budget accounting period.
type Period string

const (
	// PeriodMonthly budgets reset each calendar month.
	PeriodMonthly Period = "monthly"
	// PeriodWeekly budgets are stored but currently evaluated against
	// monthly spend, matching the original file format.
	PeriodWeekly Period = "weekly"
)

// Valid reports whether the period is one of the closed set.
func (p Period) Valid() bool {
	switch p {
	case PeriodMonthly, PeriodWeekly:
		return true
	}
	return false
}

// Budget is a per-category spending limit. At most one budget exists per
// category; setting a budget for an existing category replaces its limit.
type Budget struct {
	Category string
	Limit    int64
	Period   Period
}

// Validate checks the budget invariants.
func (b *Budget) Validate() error {
	if !ValidCategory(KindExpense, b.Category) {
		return fmt.Errorf("%w: unknown expense category %q", ErrInvalidBudget, b.Category)
	}
	if b.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive", ErrInvalidBudget)
	}
	if !b.Period.Valid() {
		return fmt.Errorf("%w: unknown period %q", ErrInvalidBudget, b.Period)
	}
	return nil
}
