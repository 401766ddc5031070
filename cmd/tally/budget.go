package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/budget"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage category budgets",
	}
	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetStatusCmd())
	cmd.AddCommand(budgetDeleteCmd())
	cmd.AddCommand(budgetRecommendCmd())
	return cmd
}

func budgetSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Create or update a category budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			limit, err := cli.ParseAmount(args[1])
			if err != nil {
				return err
			}
			periodStr, _ := cmd.Flags().GetString("period")

			b := model.Budget{
				Category: args[0],
				Limit:    limit,
				Period:   model.Period(periodStr),
			}
			if err := b.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.UpsertBudget(ctx, b); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget set: %s %s per %s", b.Category, cli.FormatAmount(b.Limit), b.Period))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
	cmd.Flags().String("period", string(model.PeriodMonthly), "budget period (monthly, weekly)")
	return cmd
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all budgets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			if len(budgets) == 0 {
				fmt.Println(cli.FormatInfo("No budgets set")) //nolint:forbidigo // User-facing output
				return nil
			}

			table := cli.NewTable("Category", "Limit", "Period")
			for _, b := range budgets {
				table.AddRow(b.Category, cli.FormatAmount(b.Limit), string(b.Period))
			}
			fmt.Print(table.Render()) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func budgetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show budget utilization for the current month",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}

			summary := ledger.Summarize(txns, ledger.MonthOf(time.Now()))
			statuses := budget.EvaluateAll(budgets, summary)
			if len(statuses) == 0 {
				fmt.Println(cli.FormatInfo("No budgets set")) //nolint:forbidigo // User-facing output
				return nil
			}

			table := cli.NewTable("Category", "Spent", "Limit", "Used", "Status", "")
			for _, s := range statuses {
				table.AddRow(
					s.Category,
					cli.FormatAmount(s.Spent),
					cli.FormatAmount(s.Limit),
					cli.FormatPercent(s.Utilization),
					tierLabel(s.Tier),
					cli.ProgressBar(s.Utilization, 20),
				)
			}
			fmt.Print(table.Render()) //nolint:forbidigo // User-facing output

			fmt.Printf("\nOverall: %s of %s (%s)\n", //nolint:forbidigo // User-facing output
				cli.FormatAmount(budget.TotalSpent(statuses)),
				cli.FormatAmount(budget.TotalLimit(statuses)),
				cli.FormatPercent(budget.OverallUtilization(statuses)),
			)
			return nil
		},
	}
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete a category budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.DeleteBudget(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget deleted: %s", args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func budgetRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Suggest budget adjustments from this month's spending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			budgets, err := store.ListBudgets(ctx)
			if err != nil {
				return err
			}
			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}

			summary := ledger.Summarize(txns, ledger.MonthOf(time.Now()))
			statuses := budget.EvaluateAll(budgets, summary)
			suggestions := budget.Recommend(statuses, summary)
			if len(suggestions) == 0 {
				fmt.Println(cli.FormatSuccess("Budgets look well calibrated")) //nolint:forbidigo // User-facing output
				return nil
			}

			table := cli.NewTable("Category", "Current", "Proposed", "Reason")
			for _, s := range suggestions {
				current := "-"
				if s.Current > 0 {
					current = cli.FormatAmount(s.Current)
				}
				table.AddRow(s.Category, current, cli.FormatAmount(s.Proposed), s.Reason)
			}
			fmt.Print(table.Render()) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func tierLabel(t budget.Tier) string {
	switch t {
	case budget.TierOver:
		return cli.ErrorStyle.Render(t.String())
	case budget.TierWarning:
		return cli.WarningStyle.Render(t.String())
	default:
		return cli.SuccessStyle.Render(t.String())
	}
}

func closeStorage(store interface{ Close() error }) {
	if err := store.Close(); err != nil {
		common.LogError(err, "failed to close storage", nil)
	}
}
