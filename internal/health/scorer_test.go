package health

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyfin/tally/internal/budget"
)

func TestComputeEmptyMonth(t *testing.T) {
	// No transactions, no budgets: 0 savings + 15 neutral budget +
	// 15 zero balance + 20 consistency = 50.
	score := Compute(Inputs{})

	assert.Equal(t, 0, score.Savings)
	assert.Equal(t, 15, score.Budget)
	assert.Equal(t, 15, score.Balance)
	assert.Equal(t, 20, score.Consistency)
	assert.Equal(t, 50, score.Total)
	assert.Equal(t, RatingFair, score.Rating)
}

func TestSavingsScoreBoundaries(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want int
	}{
		{name: "exactly 20 earns full points", rate: 20, want: 30},
		{name: "just under 20", rate: 19.9, want: 22},
		{name: "exactly 15", rate: 15, want: 22},
		{name: "exactly 10", rate: 10, want: 15},
		{name: "exactly 5", rate: 5, want: 8},
		{name: "below 5", rate: 4.9, want: 0},
		{name: "negative", rate: -10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Compute(Inputs{SavingsRate: tt.rate})
			assert.Equal(t, tt.want, score.Savings)
		})
	}
}

func TestBudgetScore(t *testing.T) {
	within := budget.Status{Category: "Food", Utilization: 50}
	over := budget.Status{Category: "Bills", Utilization: 120}

	tests := []struct {
		name     string
		statuses []budget.Status
		want     int
	}{
		{name: "no budgets gives partial credit", statuses: nil, want: 15},
		{name: "all within limit", statuses: []budget.Status{within, within}, want: 25},
		{name: "three of four within", statuses: []budget.Status{within, within, within, over}, want: 18},
		{name: "half within", statuses: []budget.Status{within, over}, want: 12},
		{name: "one of four within", statuses: []budget.Status{within, over, over, over}, want: 6},
		{name: "all over", statuses: []budget.Status{over, over}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Compute(Inputs{BudgetStatuses: tt.statuses})
			assert.Equal(t, tt.want, score.Budget)
		})
	}
}

func TestBalanceScore(t *testing.T) {
	assert.Equal(t, 25, Compute(Inputs{MonthlySavings: 1}).Balance)
	assert.Equal(t, 15, Compute(Inputs{MonthlySavings: 0}).Balance)
	assert.Equal(t, 0, Compute(Inputs{MonthlySavings: -1}).Balance)
}

func TestConsistencyScore(t *testing.T) {
	assert.Equal(t, 20, Compute(Inputs{SpikeCount: 0}).Consistency)
	assert.Equal(t, 15, Compute(Inputs{SpikeCount: 1}).Consistency)
	assert.Equal(t, 10, Compute(Inputs{SpikeCount: 2}).Consistency)
	assert.Equal(t, 5, Compute(Inputs{SpikeCount: 3}).Consistency)
	assert.Equal(t, 5, Compute(Inputs{SpikeCount: 9}).Consistency)
}

func TestRatingBands(t *testing.T) {
	assert.Equal(t, RatingExcellent, RatingFor(80))
	assert.Equal(t, RatingGood, RatingFor(79))
	assert.Equal(t, RatingGood, RatingFor(60))
	assert.Equal(t, RatingFair, RatingFor(59))
	assert.Equal(t, RatingFair, RatingFor(40))
	assert.Equal(t, RatingPoor, RatingFor(39))
	assert.Equal(t, "Excellent", RatingExcellent.String())
	assert.Equal(t, "Poor", RatingPoor.String())
}

func TestComputePerfectMonth(t *testing.T) {
	score := Compute(Inputs{
		SavingsRate:    25,
		BudgetStatuses: []budget.Status{{Category: "Food", Utilization: 40}},
		MonthlySavings: 100000,
		SpikeCount:     0,
	})

	assert.Equal(t, 100, score.Total)
	assert.Equal(t, RatingExcellent, score.Rating)
}
