package analysis

import "math"

// IncomeStability scores how steady a monthly income series is, from 0
// (erratic) to 100 (perfectly stable). The score is derived from the
// population coefficient of variation: max(0, 100 - cv*100), capped at 100.
// Fewer than two samples or a zero mean score 100: with no variation to
// measure, income is treated as maximally stable by convention.
func IncomeStability(incomes []int64) float64 {
	if len(incomes) < 2 {
		return 100
	}

	var sum int64
	for _, v := range incomes {
		sum += v
	}
	mean := float64(sum) / float64(len(incomes))
	if mean == 0 {
		return 100
	}

	var variance float64
	for _, v := range incomes {
		d := float64(v) - mean
		variance += d * d
	}
	variance /= float64(len(incomes))

	cv := math.Sqrt(variance) / mean

	score := 100 - cv*100
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
