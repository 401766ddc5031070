package budget

import (
	"sort"

	"github.com/tallyfin/tally/internal/ledger"
)

// Suggestion proposes a budget limit change for one category.
type Suggestion struct {
	Category string
	Current  int64
	Proposed int64
	Reason   string
}

// Multipliers for proposed limits.
const (
	raiseFactor      = 1.2 // over-budget limits grow 20%
	trimBufferFactor = 1.3 // trimmed limits keep a 30% buffer over spend
	newBudgetFactor  = 1.2 // new budgets start at spend plus 20%
)

// Recommend proposes limit adjustments from the evaluated statuses and the
// month's spending: raises for exceeded budgets, trims for limits less than
// half used, and starter limits for categories with spending but no budget.
func Recommend(statuses []Status, summary ledger.Summary) []Suggestion {
	var suggestions []Suggestion

	budgeted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		budgeted[s.Category] = true

		switch {
		case s.Tier == TierOver:
			suggestions = append(suggestions, Suggestion{
				Category: s.Category,
				Current:  s.Limit,
				Proposed: int64(float64(s.Limit) * raiseFactor),
				Reason:   "limit exceeded; consider raising it",
			})
		case s.Utilization < 50 && s.Spent > 0:
			suggestions = append(suggestions, Suggestion{
				Category: s.Category,
				Current:  s.Limit,
				Proposed: int64(float64(s.Spent) * trimBufferFactor),
				Reason:   "less than half used; the surplus could go to savings",
			})
		}
	}

	unbudgeted := make([]string, 0)
	for cat := range summary.ByCategory {
		if !budgeted[cat] {
			unbudgeted = append(unbudgeted, cat)
		}
	}
	sort.Strings(unbudgeted)
	for _, cat := range unbudgeted {
		spent := summary.ByCategory[cat]
		suggestions = append(suggestions, Suggestion{
			Category: cat,
			Current:  0,
			Proposed: int64(float64(spent) * newBudgetFactor),
			Reason:   "spending without a budget; set one to track it",
		})
	}

	return suggestions
}
