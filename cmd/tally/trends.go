package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func trendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Analyze spending and income trends",
		Long: `Analyze the last N months: overall spending direction, per-category
trends, spending spikes this month, and income stability.`,
		RunE: runTrends,
	}
	cmd.Flags().Int("months", 6, "number of months to analyze")
	return cmd
}

func runTrends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	months, _ := cmd.Flags().GetInt("months")
	if months < 2 {
		return fmt.Errorf("need at least 2 months to analyze trends")
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	// SummarizeLastN returns newest first; trends read oldest first.
	summaries := ledger.SummarizeLastN(txns, now, months)
	oldestFirst := make([]ledger.Summary, len(summaries))
	for i, s := range summaries {
		oldestFirst[len(summaries)-1-i] = s
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("Trends over the last %d months", months))) //nolint:forbidigo // User-facing output

	table := cli.NewTable("Month", "Income", "Expenses", "Savings")
	expenseSeries := make([]int64, 0, len(oldestFirst))
	incomeSeries := make([]int64, 0, len(oldestFirst))
	for _, s := range oldestFirst {
		table.AddRow(s.Month.Name(), cli.FormatAmount(s.Income), cli.FormatAmount(s.Expense), cli.FormatAmount(s.Savings()))
		expenseSeries = append(expenseSeries, s.Expense)
		incomeSeries = append(incomeSeries, s.Income)
	}
	fmt.Print(table.Render()) //nolint:forbidigo // User-facing output

	fmt.Printf("\nSpending trend: %s\n", analysis.ClassifyTrend(expenseSeries)) //nolint:forbidigo // User-facing output
	fmt.Printf("Income trend:   %s\n", analysis.ClassifyTrend(incomeSeries))    //nolint:forbidigo // User-facing output
	fmt.Printf("Income stability: %.0f/100\n", analysis.IncomeStability(incomeSeries)) //nolint:forbidigo // User-facing output
	fmt.Printf("Average income:  %s   Average savings: %s\n", //nolint:forbidigo // User-facing output
		cli.FormatAmount(analysis.AverageIncome(oldestFirst)),
		cli.FormatAmount(analysis.AverageSavings(oldestFirst)))

	// Per-category direction across the window.
	categoryTrends(oldestFirst)

	// Spikes in the current month.
	current := ledger.MonthOf(now)
	spikes := analysis.DetectSpikes(ledger.FilterKind(ledger.FilterMonth(txns, current), model.KindExpense))
	if len(spikes) > 0 {
		fmt.Println(cli.FormatTitle("Spending spikes this month")) //nolint:forbidigo // User-facing output
		for _, t := range spikes {
			fmt.Printf("  %s %s %s (%s)\n", cli.WarningIcon, t.Date.Format("2006-01-02"), cli.FormatAmount(t.Amount), t.Category) //nolint:forbidigo // User-facing output
		}
	}

	return nil
}

func categoryTrends(oldestFirst []ledger.Summary) {
	perCategory := make(map[string][]int64)
	for _, cat := range model.ExpenseCategories {
		series := make([]int64, 0, len(oldestFirst))
		active := false
		for _, s := range oldestFirst {
			amt := s.ByCategory[cat]
			if amt > 0 {
				active = true
			}
			series = append(series, amt)
		}
		if active {
			perCategory[cat] = series
		}
	}
	if len(perCategory) == 0 {
		return
	}

	fmt.Println(cli.FormatTitle("Category trends")) //nolint:forbidigo // User-facing output
	for _, cat := range model.ExpenseCategories {
		series, ok := perCategory[cat]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s %s\n", cat, analysis.ClassifyTrend(series)) //nolint:forbidigo // User-facing output
	}
}
