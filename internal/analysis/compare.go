package analysis

import "github.com/tallyfin/tally/internal/ledger"

// Comparison summarizes how the current month stacks up against the
// previous one.
type Comparison struct {
	CurrentIncome   int64
	PreviousIncome  int64
	IncomeChange    float64
	CurrentExpense  int64
	PreviousExpense int64
	ExpenseChange   float64
	CurrentSavings  int64
	PreviousSavings int64
	SavingsChange   float64
}

// Compare builds a month-over-month comparison from two summaries. Change
// percentages use a zero baseline convention of 0: a metric with no
// previous-month value reports no change rather than an infinite one.
// Savings change additionally requires a positive previous savings, since
// a percentage against a negative baseline is not meaningful.
func Compare(current, previous ledger.Summary) Comparison {
	c := Comparison{
		CurrentIncome:   current.Income,
		PreviousIncome:  previous.Income,
		CurrentExpense:  current.Expense,
		PreviousExpense: previous.Expense,
		CurrentSavings:  current.Savings(),
		PreviousSavings: previous.Savings(),
	}

	if c.PreviousIncome > 0 {
		c.IncomeChange = float64(c.CurrentIncome-c.PreviousIncome) / float64(c.PreviousIncome) * 100
	}
	if c.PreviousExpense > 0 {
		c.ExpenseChange = float64(c.CurrentExpense-c.PreviousExpense) / float64(c.PreviousExpense) * 100
	}
	if c.PreviousSavings > 0 {
		c.SavingsChange = float64(c.CurrentSavings-c.PreviousSavings) / float64(c.PreviousSavings) * 100
	}

	return c
}

// AverageIncome returns the mean monthly income over the given summaries.
func AverageIncome(summaries []ledger.Summary) int64 {
	if len(summaries) == 0 {
		return 0
	}
	var total int64
	for _, s := range summaries {
		total += s.Income
	}
	return total / int64(len(summaries))
}

// AverageSavings returns the mean monthly savings over the given summaries.
func AverageSavings(summaries []ledger.Summary) int64 {
	if len(summaries) == 0 {
		return 0
	}
	var total int64
	for _, s := range summaries {
		total += s.Savings()
	}
	return total / int64(len(summaries))
}

// ProjectedAnnualSavings extrapolates one month's savings to a year.
func ProjectedAnnualSavings(s ledger.Summary) int64 {
	return s.Savings() * 12
}
