// Package budget joins stored budgets to current-month spending and
// derives utilization, remaining amounts, and status tiers.
package budget

import (
	"sort"

	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

// Tier classifies a budget by utilization.
type Tier int

const (
	// TierOK is utilization below 70%.
	TierOK Tier = iota
	// TierWarning is utilization from 70% up to but excluding 100%.
	TierWarning
	// TierOver is utilization at or above 100%.
	TierOver
)

// String returns the display label for the tier.
func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "Warning"
	case TierOver:
		return "Over Budget"
	default:
		return "OK"
	}
}

// Utilization thresholds for the tiers.
const (
	warningThreshold = 70
	overThreshold    = 100
)

// TierFor maps a utilization percentage to its tier.
func TierFor(utilization float64) Tier {
	switch {
	case utilization >= overThreshold:
		return TierOver
	case utilization >= warningThreshold:
		return TierWarning
	default:
		return TierOK
	}
}

// Status is the evaluated state of one budget for the current month.
// Remaining may be negative; Utilization is unclamped and can exceed 100.
type Status struct {
	Category    string
	Period      model.Period
	Limit       int64
	Spent       int64
	Remaining   int64
	Utilization float64
	Tier        Tier
}

// Evaluate computes the status of a single budget given the amount spent in
// its category this month. A zero limit yields zero utilization.
func Evaluate(b model.Budget, spent int64) Status {
	utilization := analysis.Percentage(spent, b.Limit)
	return Status{
		Category:    b.Category,
		Period:      b.Period,
		Limit:       b.Limit,
		Spent:       spent,
		Remaining:   b.Limit - spent,
		Utilization: utilization,
		Tier:        TierFor(utilization),
	}
}

// EvaluateAll evaluates every budget against the month summary. Weekly
// budgets are evaluated against monthly spend like all others. The result
// is sorted by utilization, highest first.
func EvaluateAll(budgets []model.Budget, summary ledger.Summary) []Status {
	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		statuses = append(statuses, Evaluate(b, summary.ByCategory[b.Category]))
	}
	sort.SliceStable(statuses, func(i, j int) bool {
		return statuses[i].Utilization > statuses[j].Utilization
	})
	return statuses
}

// Over returns the statuses at or above 100% utilization.
func Over(statuses []Status) []Status {
	return filterTier(statuses, TierOver)
}

// Warning returns the statuses in the 70-100% band.
func Warning(statuses []Status) []Status {
	return filterTier(statuses, TierWarning)
}

// Healthy returns the statuses below 70% utilization.
func Healthy(statuses []Status) []Status {
	return filterTier(statuses, TierOK)
}

func filterTier(statuses []Status, tier Tier) []Status {
	var out []Status
	for _, s := range statuses {
		if s.Tier == tier {
			out = append(out, s)
		}
	}
	return out
}

// TotalLimit sums all budget limits.
func TotalLimit(statuses []Status) int64 {
	var total int64
	for _, s := range statuses {
		total += s.Limit
	}
	return total
}

// TotalSpent sums current-month spending across budgeted categories.
func TotalSpent(statuses []Status) int64 {
	var total int64
	for _, s := range statuses {
		total += s.Spent
	}
	return total
}

// OverallUtilization returns total spent as a percentage of total limit
// across all budgets. No budgets, or a zero total limit, yields 0.
func OverallUtilization(statuses []Status) float64 {
	return analysis.Percentage(TotalSpent(statuses), TotalLimit(statuses))
}
