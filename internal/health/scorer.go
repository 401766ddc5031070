// Package health combines savings rate, budget adherence, balance sign,
// and spending consistency into a single bounded score with a qualitative
// rating. All thresholds are closed-form constants.
package health

import (
	"github.com/tallyfin/tally/internal/budget"
)

// Component maximums.
const (
	MaxSavings     = 30
	MaxBudget      = 25
	MaxBalance     = 25
	MaxConsistency = 20
)

// neutralBudgetScore is the partial credit given when no budgets are set.
const neutralBudgetScore = 15

// Rating is the qualitative band for a total score.
type Rating int

const (
	// RatingPoor is a total below 40.
	RatingPoor Rating = iota
	// RatingFair is a total of at least 40.
	RatingFair
	// RatingGood is a total of at least 60.
	RatingGood
	// RatingExcellent is a total of at least 80.
	RatingExcellent
)

// String returns the display label for the rating.
func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "Excellent"
	case RatingGood:
		return "Good"
	case RatingFair:
		return "Fair"
	default:
		return "Poor"
	}
}

// RatingFor maps a total score to its band.
func RatingFor(total int) Rating {
	switch {
	case total >= 80:
		return RatingExcellent
	case total >= 60:
		return RatingGood
	case total >= 40:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Score is the composite health score with its component breakdown.
type Score struct {
	Savings     int
	Budget      int
	Balance     int
	Consistency int
	Total       int
	Rating      Rating
}

// Inputs are the signals the scorer consumes, all derived from the current
// month.
type Inputs struct {
	SavingsRate    float64
	BudgetStatuses []budget.Status
	MonthlySavings int64
	SpikeCount     int
}

// Compute derives the composite score from the month's signals.
func Compute(in Inputs) Score {
	s := Score{
		Savings:     savingsScore(in.SavingsRate),
		Budget:      budgetScore(in.BudgetStatuses),
		Balance:     balanceScore(in.MonthlySavings),
		Consistency: consistencyScore(in.SpikeCount),
	}
	s.Total = s.Savings + s.Budget + s.Balance + s.Consistency
	s.Rating = RatingFor(s.Total)
	return s
}

// savingsScore rewards the month's savings rate. Boundaries are inclusive:
// exactly 20% earns the full 30 points.
func savingsScore(rate float64) int {
	switch {
	case rate >= 20:
		return MaxSavings
	case rate >= 15:
		return 22
	case rate >= 10:
		return 15
	case rate >= 5:
		return 8
	default:
		return 0
	}
}

// budgetScore rewards the share of budgets still under their limit. With
// no budgets set there is nothing to adhere to, so partial credit applies.
func budgetScore(statuses []budget.Status) int {
	if len(statuses) == 0 {
		return neutralBudgetScore
	}

	ok := 0
	for _, s := range statuses {
		if s.Utilization < 100 {
			ok++
		}
	}
	share := float64(ok) / float64(len(statuses)) * 100

	switch {
	case share == 100:
		return MaxBudget
	case share >= 75:
		return 18
	case share >= 50:
		return 12
	case share >= 25:
		return 6
	default:
		return 0
	}
}

// balanceScore rewards the sign of the month's savings.
func balanceScore(savings int64) int {
	switch {
	case savings > 0:
		return MaxBalance
	case savings == 0:
		return 15
	default:
		return 0
	}
}

// consistencyScore penalizes spending spikes.
func consistencyScore(spikes int) int {
	switch spikes {
	case 0:
		return MaxConsistency
	case 1:
		return 15
	case 2:
		return 10
	default:
		return 5
	}
}
