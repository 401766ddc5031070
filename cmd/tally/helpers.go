package main

import (
	"context"
	"time"

	"github.com/spf13/viper"
	"github.com/tallyfin/tally/internal/advisor"
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/budget"
	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/config"
	"github.com/tallyfin/tally/internal/goal"
	"github.com/tallyfin/tally/internal/health"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
	"github.com/tallyfin/tally/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(_ context.Context) (*storage.SQLiteStorage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/tally/tally.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, common.NewUserError("failed to open the tally database", err)
	}
	return store, nil
}

// buildSnapshot assembles one consistent advisor snapshot from the stored
// ledger, budgets and goals.
func buildSnapshot(ctx context.Context, store *storage.SQLiteStorage, now time.Time) (advisor.Snapshot, error) {
	txns, err := store.ListTransactions(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}
	budgets, err := store.ListBudgets(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}
	goals, err := store.ListGoals(ctx)
	if err != nil {
		return advisor.Snapshot{}, err
	}

	current := ledger.Summarize(txns, ledger.MonthOf(now))
	previous := ledger.Summarize(txns, ledger.MonthOf(now).Prev())
	statuses := budget.EvaluateAll(budgets, current)
	savingsRate := analysis.SavingsRate(current.Income, current.Expense)

	monthExpenses := ledger.FilterKind(ledger.FilterMonth(txns, current.Month), model.KindExpense)
	spikes := analysis.DetectSpikes(monthExpenses)

	score := health.Compute(health.Inputs{
		SavingsRate:    savingsRate,
		BudgetStatuses: statuses,
		MonthlySavings: current.Savings(),
		SpikeCount:     len(spikes),
	})

	return advisor.Snapshot{
		Now:            now,
		Transactions:   txns,
		Current:        current,
		Previous:       previous,
		BudgetStatuses: statuses,
		GoalStatuses:   goal.ProjectAll(goals, now, current.Savings()),
		Health:         score,
		SavingsRate:    savingsRate,
	}, nil
}
