package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `List recorded transactions, newest filters first.

Filters combine: --days 30 --kind expense --category Food shows only
Food expenses from the last 30 days.`,
		RunE: runList,
	}
	cmd.Flags().Int("days", 0, "only transactions from the last N days")
	cmd.Flags().String("kind", "", "filter by kind (expense, income)")
	cmd.Flags().String("category", "", "filter by category")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().String("search", "", "search descriptions")
	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		return err
	}

	if days, _ := cmd.Flags().GetInt("days"); days > 0 {
		txns = ledger.FilterLastNDays(txns, time.Now(), days)
	}
	if kindStr, _ := cmd.Flags().GetString("kind"); kindStr != "" {
		kind := model.Kind(kindStr)
		if !kind.Valid() {
			return fmt.Errorf("invalid kind %q (expense, income)", kindStr)
		}
		txns = ledger.FilterKind(txns, kind)
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		txns = ledger.FilterCategory(txns, category)
	}
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")
	if fromStr != "" || toStr != "" {
		start := time.Time{}
		end := time.Now()
		if fromStr != "" {
			if start, err = time.Parse("2006-01-02", fromStr); err != nil {
				return fmt.Errorf("invalid from date %q: %w", fromStr, err)
			}
		}
		if toStr != "" {
			if end, err = time.Parse("2006-01-02", toStr); err != nil {
				return fmt.Errorf("invalid to date %q: %w", toStr, err)
			}
		}
		txns = ledger.FilterDateRange(txns, start, end)
	}
	if search, _ := cmd.Flags().GetString("search"); search != "" {
		txns = ledger.SearchDescription(txns, search)
	}

	if len(txns) == 0 {
		fmt.Println(cli.FormatInfo("No transactions match")) //nolint:forbidigo // User-facing output
		return nil
	}

	table := cli.NewTable("#", "Date", "Kind", "Category", "Amount", "Description")
	for i, t := range txns {
		table.AddRow(
			fmt.Sprintf("%d", i+1),
			t.Date.Format("2006-01-02"),
			string(t.Kind),
			t.Category,
			cli.FormatAmount(t.Amount),
			t.Description,
		)
	}
	fmt.Print(table.Render()) //nolint:forbidigo // User-facing output
	return nil
}
