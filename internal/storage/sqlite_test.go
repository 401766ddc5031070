package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testDate(d int) time.Time {
	return time.Date(2024, time.June, d, 0, 0, 0, 0, time.UTC)
}

func testTransaction(d int, amount int64) model.Transaction {
	return model.Transaction{
		Date:        testDate(d),
		Kind:        model.KindExpense,
		Category:    "Food",
		Amount:      amount,
		Description: "test",
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.AppendTransaction(ctx, testTransaction(1, 1000)))
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(2, 2000)))
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(3, 3000)))

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 3)

	// Insertion order is preserved.
	assert.Equal(t, int64(1000), txns[0].Amount)
	assert.Equal(t, int64(2000), txns[1].Amount)
	assert.Equal(t, int64(3000), txns[2].Amount)
	assert.Equal(t, model.KindExpense, txns[0].Kind)
	assert.Equal(t, "Food", txns[0].Category)

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAppendTransactionValidates(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	bad := testTransaction(1, -50)
	err := store.AppendTransaction(ctx, bad)
	assert.ErrorIs(t, err, model.ErrInvalidTransaction)
}

func TestUpdateAndDeleteByPosition(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	require.NoError(t, store.AppendTransaction(ctx, testTransaction(1, 1000)))
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(2, 2000)))

	updated := testTransaction(2, 2500)
	updated.Category = "Transport"
	require.NoError(t, store.UpdateTransaction(ctx, 2, updated))

	txns, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Transport", txns[1].Category)
	assert.Equal(t, int64(2500), txns[1].Amount)

	require.NoError(t, store.DeleteTransaction(ctx, 1))
	txns, err = store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, int64(2500), txns[0].Amount)

	// Positions past the end are not found.
	err = store.DeleteTransaction(ctx, 5)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestAppendTransactionsBatch(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	batch := []model.Transaction{
		testTransaction(1, 100),
		testTransaction(2, 200),
	}
	require.NoError(t, store.AppendTransactions(ctx, batch))

	count, err := store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// One invalid transaction fails the whole batch.
	batch = append(batch, testTransaction(3, 0))
	err = store.AppendTransactions(ctx, batch)
	require.Error(t, err)

	count, err = store.CountTransactions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestEarliestTransactionDate(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	_, err := store.EarliestTransactionDate(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	require.NoError(t, store.AppendTransaction(ctx, testTransaction(20, 100)))
	require.NoError(t, store.AppendTransaction(ctx, testTransaction(5, 200)))

	earliest, err := store.EarliestTransactionDate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, earliest.Day())
}

func TestBudgetCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	b := model.Budget{Category: "Food", Limit: 100000, Period: model.PeriodMonthly}
	require.NoError(t, store.UpsertBudget(ctx, b))

	// Upsert replaces the existing limit.
	b.Limit = 150000
	require.NoError(t, store.UpsertBudget(ctx, b))

	got, err := store.GetBudget(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), got.Limit)
	assert.Equal(t, model.PeriodMonthly, got.Period)

	budgets, err := store.ListBudgets(ctx)
	require.NoError(t, err)
	assert.Len(t, budgets, 1)

	require.NoError(t, store.DeleteBudget(ctx, "Food"))
	_, err = store.GetBudget(ctx, "Food")
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = store.DeleteBudget(ctx, "Food")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGoalCRUD(t *testing.T) {
	ctx := context.Background()
	store := newTestStorage(t)

	g := model.Goal{
		Name:     "Emergency Fund",
		Type:     "Emergency Fund",
		Target:   100000,
		Deadline: testDate(30),
		Created:  testDate(1),
	}
	require.NoError(t, store.CreateGoal(ctx, g))

	// Names are unique case-insensitively.
	dup := g
	dup.Name = "EMERGENCY fund"
	err := store.CreateGoal(ctx, dup)
	assert.ErrorIs(t, err, ErrDuplicateGoal)

	got, err := store.GetGoal(ctx, "emergency fund")
	require.NoError(t, err)
	assert.Equal(t, "Emergency Fund", got.Name)

	updated, err := store.AddGoalProgress(ctx, "Emergency Fund", 40000)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), updated.Current)

	// Progress clamps at the target.
	updated, err = store.AddGoalProgress(ctx, "Emergency Fund", 999999)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), updated.Current)

	goals, err := store.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, int64(100000), goals[0].Current)

	require.NoError(t, store.DeleteGoal(ctx, "Emergency FUND"))
	_, err = store.GetGoal(ctx, "Emergency Fund")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestValidation(t *testing.T) {
	store := newTestStorage(t)

	//nolint:staticcheck // Deliberately testing nil context handling
	_, err := store.ListTransactions(nil)
	assert.ErrorIs(t, err, ErrNilContext)

	_, err = store.GetGoal(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
