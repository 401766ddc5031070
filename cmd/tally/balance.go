package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/ledger"
)

func balanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the monthly balance",
		RunE:  runBalance,
	}
	cmd.Flags().String("month", "", "month to show (YYYY-MM, default: current)")
	return cmd
}

func runBalance(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	month := ledger.MonthOf(time.Now())
	if monthStr, _ := cmd.Flags().GetString("month"); monthStr != "" {
		var err error
		if month, err = ledger.ParseMonth(monthStr); err != nil {
			return fmt.Errorf("invalid month %q: %w", monthStr, err)
		}
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

	summary := ledger.Summarize(txns, month)
	savings := summary.Savings()
	rate := analysis.SavingsRate(summary.Income, summary.Expense)

	var content string
	content += fmt.Sprintf("Income:   %s\n", cli.FormatAmount(summary.Income))
	content += fmt.Sprintf("Expenses: %s\n", cli.FormatAmount(summary.Expense))
	content += fmt.Sprintf("Savings:  %s (%s)\n", cli.FormatAmount(savings), cli.FormatPercent(rate))
	content += fmt.Sprintf("Daily burn rate: %s", cli.FormatAmount(summary.DailyAverage()))

	fmt.Println(cli.RenderBox(month.Name(), content)) //nolint:forbidigo // User-facing output

	top := summary.TopCategories(5)
	if len(top) > 0 {
		fmt.Println(cli.FormatTitle("Top spending categories")) //nolint:forbidigo // User-facing output
		table := cli.NewTable("Category", "Amount", "Share")
		for _, ca := range top {
			table.AddRow(ca.Category, cli.FormatAmount(ca.Amount), cli.FormatPercent(analysis.Percentage(ca.Amount, summary.Expense)))
		}
		fmt.Print(table.Render()) //nolint:forbidigo // User-facing output
	}
	return nil
}
