package advisor

import (
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/ledger"
)

// Impact is the projected effect of a hypothetical change.
type Impact struct {
	Scenario string
	Monthly  int64
	Annual   int64
}

// ReduceCategory projects the savings from cutting one category's
// current-month spending by the given percentage.
func ReduceCategory(summary ledger.Summary, category string, percent float64) Impact {
	monthly := int64(float64(summary.ByCategory[category]) * percent / 100)
	return Impact{
		Scenario: "reduce " + category + " spending",
		Monthly:  monthly,
		Annual:   monthly * 12,
	}
}

// IncreaseIncome projects the new savings rate if monthly income grew by
// the given amount while expenses stayed flat.
func IncreaseIncome(summary ledger.Summary, extra int64) (newRate float64, annual int64) {
	newIncome := summary.Income + extra
	return analysis.SavingsRate(newIncome, summary.Expense), extra * 12
}

// ExtraSavingsMonths estimates how many months of an extra monthly
// contribution would complete the given remaining amount. A non-positive
// contribution yields ok=false.
func ExtraSavingsMonths(remaining, extraMonthly int64) (months int64, ok bool) {
	if extraMonthly <= 0 || remaining <= 0 {
		return 0, false
	}
	months = remaining / extraMonthly
	if remaining%extraMonthly != 0 {
		months++
	}
	return months, true
}
