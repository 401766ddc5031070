package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func monthlyBudget(category string, limit int64) model.Budget {
	return model.Budget{Category: category, Limit: limit, Period: model.PeriodMonthly}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name        string
		utilization float64
		want        Tier
	}{
		{name: "zero", utilization: 0, want: TierOK},
		{name: "just under warning", utilization: 69.9, want: TierOK},
		{name: "warning boundary inclusive", utilization: 70, want: TierWarning},
		{name: "just under over", utilization: 99.9, want: TierWarning},
		{name: "over boundary inclusive", utilization: 100, want: TierOver},
		{name: "far over", utilization: 250, want: TierOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.utilization))
		})
	}
}

func TestTieringMonotoneInSpent(t *testing.T) {
	b := monthlyBudget("Food", 100000)

	prev := TierOK
	for spent := int64(0); spent <= 200000; spent += 5000 {
		tier := Evaluate(b, spent).Tier
		assert.GreaterOrEqual(t, int(tier), int(prev), "tier regressed at spent=%d", spent)
		prev = tier
	}
}

func TestEvaluate(t *testing.T) {
	s := Evaluate(monthlyBudget("Food", 100000), 75000)

	assert.Equal(t, "Food", s.Category)
	assert.Equal(t, int64(25000), s.Remaining)
	assert.InDelta(t, 75.0, s.Utilization, 0.0001)
	assert.Equal(t, TierWarning, s.Tier)
}

func TestEvaluateOverspend(t *testing.T) {
	s := Evaluate(monthlyBudget("Food", 100000), 130000)

	// Remaining goes negative and utilization is unclamped.
	assert.Equal(t, int64(-30000), s.Remaining)
	assert.InDelta(t, 130.0, s.Utilization, 0.0001)
	assert.Equal(t, TierOver, s.Tier)
}

func TestEvaluateZeroLimit(t *testing.T) {
	// A zero limit never divides; utilization resolves to zero.
	s := Evaluate(model.Budget{Category: "Food", Limit: 0, Period: model.PeriodMonthly}, 50000)
	assert.Zero(t, s.Utilization)
	assert.Equal(t, TierOK, s.Tier)
}

func TestEvaluateAllSortedByUtilization(t *testing.T) {
	budgets := []model.Budget{
		monthlyBudget("Food", 100000),
		monthlyBudget("Transport", 50000),
		monthlyBudget("Bills", 80000),
	}
	summary := ledger.Summary{
		Month: "2024-06",
		ByCategory: map[string]int64{
			"Food":      50000, // 50%
			"Transport": 60000, // 120%
			"Bills":     64000, // 80%
		},
		BySource: map[string]int64{},
	}

	statuses := EvaluateAll(budgets, summary)
	require.Len(t, statuses, 3)
	assert.Equal(t, "Transport", statuses[0].Category)
	assert.Equal(t, "Bills", statuses[1].Category)
	assert.Equal(t, "Food", statuses[2].Category)

	assert.Len(t, Over(statuses), 1)
	assert.Len(t, Warning(statuses), 1)
	assert.Len(t, Healthy(statuses), 1)
}

func TestOverallUtilization(t *testing.T) {
	statuses := []Status{
		{Category: "Food", Limit: 100000, Spent: 50000},
		{Category: "Bills", Limit: 100000, Spent: 100000},
	}

	assert.Equal(t, int64(200000), TotalLimit(statuses))
	assert.Equal(t, int64(150000), TotalSpent(statuses))
	assert.InDelta(t, 75.0, OverallUtilization(statuses), 0.0001)

	assert.Zero(t, OverallUtilization(nil))
}
