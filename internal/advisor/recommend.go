package advisor

import (
	"fmt"

	"github.com/tallyfin/tally/internal/budget"
	"github.com/tallyfin/tally/internal/cli"
)

// Recommendations produces plain-language suggestions from the snapshot,
// grouped in generation order: spending, savings, budgets, overall health.
func Recommendations(s Snapshot) []string {
	var recs []string

	for _, b := range s.BudgetStatuses {
		switch {
		case b.Tier == budget.TierOver:
			overage := b.Spent - b.Limit
			recs = append(recs, fmt.Sprintf("Reduce %s spending by %s to meet budget", b.Category, cli.FormatAmount(overage)))
		case b.Utilization >= 80:
			recs = append(recs, fmt.Sprintf("Watch %s spending - %.0f%% of budget used", b.Category, b.Utilization))
		}
	}

	switch {
	case s.SavingsRate < 0:
		recs = append(recs, "Urgently reduce expenses - you're spending more than you earn")
	case s.SavingsRate < 10:
		recs = append(recs, fmt.Sprintf("Try to save at least 10%% of income (currently %.1f%%)", s.SavingsRate))
	case s.SavingsRate < 20:
		recs = append(recs, fmt.Sprintf("Good progress, aim for a 20%% savings rate (currently %.1f%%)", s.SavingsRate))
	default:
		recs = append(recs, "Excellent savings rate, consider investing the surplus")
	}

	if len(s.BudgetStatuses) == 0 {
		recs = append(recs, "Set budgets for better financial control and tracking")
	} else if len(budget.Over(s.BudgetStatuses))*2 > len(s.BudgetStatuses) {
		recs = append(recs, "Review budget allocations - more than half are exceeded")
	}

	switch {
	case s.Health.Total < 40:
		recs = append(recs, "Focus on reducing expenses and increasing savings to improve financial health")
	case s.Health.Total < 60:
		recs = append(recs, "Work on budget adherence to improve your health score")
	case s.Health.Total < 80:
		recs = append(recs, "Maintain current habits and look for optimization opportunities")
	default:
		recs = append(recs, "Outstanding financial health, consider increasing investment contributions")
	}

	return recs
}
