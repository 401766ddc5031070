package ledger

import (
	"sort"
	"time"

	"github.com/tallyfin/tally/internal/model"
)

// Summary holds the aggregates for a single calendar month. An empty month
// produces zero totals and empty (non-nil) maps, never an error.
type Summary struct {
	ByCategory map[string]int64
	BySource   map[string]int64
	Month      Month
	Income     int64
	Expense    int64
}

// CategoryAmount pairs a category with its summed amount.
type CategoryAmount struct {
	Category string
	Amount   int64
}

// Summarize aggregates the transactions falling in month m: total income,
// total expense, expense broken down by category, and income broken down
// by source.
func Summarize(txns []model.Transaction, m Month) Summary {
	s := Summary{
		Month:      m,
		ByCategory: make(map[string]int64),
		BySource:   make(map[string]int64),
	}

	for _, t := range txns {
		if !m.Contains(t.Date) {
			continue
		}
		switch t.Kind {
		case model.KindExpense:
			s.Expense += t.Amount
			s.ByCategory[t.Category] += t.Amount
		case model.KindIncome:
			s.Income += t.Amount
			s.BySource[t.Category] += t.Amount
		}
	}

	return s
}

// SummarizeLastN returns summaries for the n months ending at the month
// containing now, newest first.
func SummarizeLastN(txns []model.Transaction, now time.Time, n int) []Summary {
	months := LastN(now, n)
	summaries := make([]Summary, 0, len(months))
	for _, m := range months {
		summaries = append(summaries, Summarize(txns, m))
	}
	return summaries
}

// Savings returns income minus expense for the month. May be negative.
func (s Summary) Savings() int64 {
	return s.Income - s.Expense
}

// TopCategories returns the n largest expense categories, highest first.
// Ties break alphabetically so the ordering is deterministic.
func (s Summary) TopCategories(n int) []CategoryAmount {
	ranked := make([]CategoryAmount, 0, len(s.ByCategory))
	for cat, amt := range s.ByCategory {
		ranked = append(ranked, CategoryAmount{Category: cat, Amount: amt})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// DailyAverage returns the burn rate: total expense divided by the number
// of days in the month.
func (s Summary) DailyAverage() int64 {
	days := s.Month.Days()
	if days == 0 {
		return 0
	}
	return s.Expense / int64(days)
}
