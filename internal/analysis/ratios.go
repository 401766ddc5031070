// Package analysis converts raw monthly sums into percentages, deltas,
// trend classifications, and stability scores. Every operation resolves
// degenerate arithmetic (zero denominators) to a defined value rather than
// an error.
package analysis

// Percentage returns part as a percentage of whole. A zero whole yields 0.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// Change returns the percentage change from previous to current. Both zero
// yields 0; a zero previous with a non-zero current yields 100.
func Change(current, previous int64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return float64(current-previous) / float64(previous) * 100
}

// SavingsRate returns savings (income - expense) as a percentage of income.
// Zero income yields 0.
func SavingsRate(income, expense int64) float64 {
	if income == 0 {
		return 0
	}
	return float64(income-expense) / float64(income) * 100
}
