package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/advisor"
	"github.com/tallyfin/tally/internal/analysis"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/ledger"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly financial report",
		Long: `Show the full monthly report: income, expenses, savings, category
breakdown, month-over-month comparison, budget status, health score and
recommendations.`,
		RunE: runReport,
	}
	cmd.Flags().String("month", "", "month to report on (YYYY-MM, default: current)")
	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	now := time.Now()
	if monthStr, _ := cmd.Flags().GetString("month"); monthStr != "" {
		m, err := ledger.ParseMonth(monthStr)
		if err != nil {
			return fmt.Errorf("invalid month %q: %w", monthStr, err)
		}
		// Anchor the snapshot mid-month so the reported month is m.
		now = m.Time().AddDate(0, 0, 14)
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	snap, err := buildSnapshot(ctx, store, now)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatTitle("Monthly Report: " + snap.Current.Month.Name())) //nolint:forbidigo // User-facing output

	// Totals and comparison
	comparison := analysis.Compare(snap.Current, snap.Previous)
	table := cli.NewTable("", "This month", "Last month", "Change")
	table.AddRow("Income",
		cli.FormatAmount(comparison.CurrentIncome),
		cli.FormatAmount(comparison.PreviousIncome),
		signedPercent(comparison.IncomeChange))
	table.AddRow("Expenses",
		cli.FormatAmount(comparison.CurrentExpense),
		cli.FormatAmount(comparison.PreviousExpense),
		signedPercent(comparison.ExpenseChange))
	table.AddRow("Savings",
		cli.FormatAmount(comparison.CurrentSavings),
		cli.FormatAmount(comparison.PreviousSavings),
		signedPercent(comparison.SavingsChange))
	fmt.Print(table.Render()) //nolint:forbidigo // User-facing output

	fmt.Printf("\nSavings rate: %s   Projected annual savings: %s\n", //nolint:forbidigo // User-facing output
		cli.FormatPercent(snap.SavingsRate),
		cli.FormatAmount(analysis.ProjectedAnnualSavings(snap.Current)))

	// Category breakdown
	top := snap.Current.TopCategories(0)
	if len(top) > 0 {
		fmt.Println(cli.FormatTitle("Spending by category")) //nolint:forbidigo // User-facing output
		catTable := cli.NewTable("Category", "Amount", "Share")
		for _, ca := range top {
			catTable.AddRow(ca.Category, cli.FormatAmount(ca.Amount),
				cli.FormatPercent(analysis.Percentage(ca.Amount, snap.Current.Expense)))
		}
		fmt.Print(catTable.Render()) //nolint:forbidigo // User-facing output
	}

	// Budgets
	if len(snap.BudgetStatuses) > 0 {
		fmt.Println(cli.FormatTitle("Budgets")) //nolint:forbidigo // User-facing output
		budTable := cli.NewTable("Category", "Used", "Status")
		for _, s := range snap.BudgetStatuses {
			budTable.AddRow(s.Category, cli.FormatPercent(s.Utilization), tierLabel(s.Tier))
		}
		fmt.Print(budTable.Render()) //nolint:forbidigo // User-facing output
	}

	// Health
	fmt.Println(cli.FormatTitle("Financial health"))                          //nolint:forbidigo // User-facing output
	fmt.Printf("Score: %d/100 (%s)\n", snap.Health.Total, snap.Health.Rating) //nolint:forbidigo // User-facing output

	// Recommendations
	recs := advisor.Recommendations(snap)
	if len(recs) > 0 {
		fmt.Println(cli.FormatTitle("Recommendations")) //nolint:forbidigo // User-facing output
		for _, r := range recs {
			fmt.Println("  • " + r) //nolint:forbidigo // User-facing output
		}
	}

	// Savings opportunities
	opps := advisor.Opportunities(snap.Current)
	if len(opps) > 0 {
		fmt.Println(cli.FormatTitle("Savings opportunities")) //nolint:forbidigo // User-facing output
		for _, o := range opps {
			fmt.Printf("  • %s takes %s of spending; a %d%% cut saves %s/month (%s/year)\n", //nolint:forbidigo // User-facing output
				o.Category, cli.FormatPercent(o.ShareOfTotal), o.CutPercent,
				cli.FormatAmount(o.MonthlySavings), cli.FormatAmount(o.AnnualSavings))
		}
	}

	return nil
}

func signedPercent(p float64) string {
	if p > 0 {
		return fmt.Sprintf("+%.1f%%", p)
	}
	return fmt.Sprintf("%.1f%%", p)
}
