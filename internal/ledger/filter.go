package ledger

import (
	"strings"
	"time"

	"github.com/tallyfin/tally/internal/model"
)

// FilterMonth returns the transactions dated inside the given month.
func FilterMonth(txns []model.Transaction, m Month) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// FilterKind returns the transactions of the given kind.
func FilterKind(txns []model.Transaction, kind model.Kind) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// FilterCategory returns the transactions in the given category.
func FilterCategory(txns []model.Transaction, category string) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterDateRange returns transactions with start <= date <= end.
func FilterDateRange(txns []model.Transaction, start, end time.Time) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out
}

// FilterLastNDays returns transactions dated within the n days before now.
func FilterLastNDays(txns []model.Transaction, now time.Time, n int) []model.Transaction {
	cutoff := now.AddDate(0, 0, -n)
	var out []model.Transaction
	for _, t := range txns {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}

// SearchDescription returns transactions whose description contains the
// keyword, case-insensitively.
func SearchDescription(txns []model.Transaction, keyword string) []model.Transaction {
	needle := strings.ToLower(keyword)
	var out []model.Transaction
	for _, t := range txns {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}
