package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyfin/tally/internal/model"
)

func expenseOf(amount int64) model.Transaction {
	return model.Transaction{
		Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		Kind:     model.KindExpense,
		Category: "Food",
		Amount:   amount,
	}
}

func TestDetectSpikes(t *testing.T) {
	// Mean of [100000, 20000, 20000, 20000, 20000] is 36000; the threshold
	// is 72000, so only the 100000 transaction is a spike.
	expenses := []model.Transaction{
		expenseOf(100000),
		expenseOf(20000),
		expenseOf(20000),
		expenseOf(20000),
		expenseOf(20000),
	}

	spikes := DetectSpikes(expenses)
	require.Len(t, spikes, 1)
	assert.Equal(t, int64(100000), spikes[0].Amount)
}

func TestDetectSpikesNone(t *testing.T) {
	assert.Empty(t, DetectSpikes(nil))

	// Uniform spending never spikes: each amount equals the mean.
	expenses := []model.Transaction{expenseOf(5000), expenseOf(5000), expenseOf(5000)}
	assert.Empty(t, DetectSpikes(expenses))

	// A single transaction is its own mean.
	assert.Empty(t, DetectSpikes([]model.Transaction{expenseOf(999999)}))
}

func TestDetectSpikesSortedDescending(t *testing.T) {
	expenses := []model.Transaction{
		expenseOf(80000),
		expenseOf(1000),
		expenseOf(1000),
		expenseOf(1000),
		expenseOf(90000),
		expenseOf(1000),
		expenseOf(1000),
	}

	spikes := DetectSpikes(expenses)
	require.Len(t, spikes, 2)
	assert.Equal(t, int64(90000), spikes[0].Amount)
	assert.Equal(t, int64(80000), spikes[1].Amount)
}
