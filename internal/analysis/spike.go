package analysis

import (
	"sort"

	"github.com/tallyfin/tally/internal/model"
)

// spikeFactor is the multiple of the mean expense above which a single
// transaction counts as a spike.
const spikeFactor = 2.0

// DetectSpikes finds unusually large transactions among the given expense
// transactions (typically one month's worth). A spike is any transaction
// whose amount exceeds twice the mean amount, mean included. The result is
// sorted descending by amount. No expenses means no spikes.
func DetectSpikes(expenses []model.Transaction) []model.Transaction {
	if len(expenses) == 0 {
		return nil
	}

	var total int64
	for _, t := range expenses {
		total += t.Amount
	}
	threshold := float64(total) / float64(len(expenses)) * spikeFactor

	var spikes []model.Transaction
	for _, t := range expenses {
		if float64(t.Amount) > threshold {
			spikes = append(spikes, t)
		}
	}

	sort.SliceStable(spikes, func(i, j int) bool {
		return spikes[i].Amount > spikes[j].Amount
	})

	return spikes
}
