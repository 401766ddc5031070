// Package model defines the persisted record types shared across the application.
package model

import (
	"fmt"
	"time"
)

// Kind indicates whether a transaction moves money out or in.
type Kind string

const (
	// KindExpense represents money leaving the ledger.
	KindExpense Kind = "expense"
	// KindIncome represents money entering the ledger.
	KindIncome Kind = "income"
)

// Valid reports whether the kind is one of the closed set.
func (k Kind) Valid() bool {
	switch k {
	case KindExpense, KindIncome:
		return true
	}
	return false
}

// ExpenseCategories are the allowed categories for expense transactions.
var ExpenseCategories = []string{
	"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Other",
}

// IncomeCategories are the allowed sources for income transactions.
var IncomeCategories = []string{
	"Salary", "Freelance", "Business", "Investment", "Gift", "Other",
}

// Transaction is a single dated money movement. Amounts are integers in
// minor currency units (hundredths) to avoid floating-point drift.
// Transactions have no independent ID; they are identified by position in
// the stored sequence.
type Transaction struct {
	Date        time.Time
	Kind        Kind
	Category    string
	Amount      int64
	Description string
}

// Validate checks the transaction invariants: positive amount, valid kind,
// and a category drawn from the set matching the kind.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if !t.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, t.Kind)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if !ValidCategory(t.Kind, t.Category) {
		return fmt.Errorf("%w: unknown %s category %q", ErrInvalidTransaction, t.Kind, t.Category)
	}
	return nil
}

// ValidCategory reports whether category belongs to the enumerated set for kind.
func ValidCategory(kind Kind, category string) bool {
	set := ExpenseCategories
	if kind == KindIncome {
		set = IncomeCategories
	}
	for _, c := range set {
		if c == category {
			return true
		}
	}
	return false
}
