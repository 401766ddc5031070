package advisor

import (
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/ledger"
)

// Opportunity flags a category taking an outsized share of the month's
// spending, with the savings a modest cut would yield.
type Opportunity struct {
	Category       string
	Spent          int64
	ShareOfTotal   float64
	CutPercent     int
	MonthlySavings int64
	AnnualSavings  int64
}

const (
	// opportunityShare is the share of total spend above which a category
	// is flagged.
	opportunityShare = 25
	// suggestedCut is the reduction proposed for flagged categories.
	suggestedCut = 15
)

// Opportunities finds categories consuming more than a quarter of the
// month's spending and quantifies a 15% reduction. No spending means no
// opportunities.
func Opportunities(summary ledger.Summary) []Opportunity {
	if summary.Expense == 0 {
		return nil
	}

	var out []Opportunity
	for _, ca := range summary.TopCategories(0) {
		share := analysis.Percentage(ca.Amount, summary.Expense)
		if share <= opportunityShare {
			continue
		}
		monthly := ca.Amount * suggestedCut / 100
		out = append(out, Opportunity{
			Category:       ca.Category,
			Spent:          ca.Amount,
			ShareOfTotal:   share,
			CutPercent:     suggestedCut,
			MonthlySavings: monthly,
			AnnualSavings:  monthly * 12,
		})
	}
	return out
}
