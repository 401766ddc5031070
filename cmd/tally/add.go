package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
	}
	cmd.AddCommand(addKindCmd(model.KindExpense))
	cmd.AddCommand(addKindCmd(model.KindIncome))
	return cmd
}

func addKindCmd(kind model.Kind) *cobra.Command {
	categories := model.ExpenseCategories
	if kind == model.KindIncome {
		categories = model.IncomeCategories
	}

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <category> <amount> [description]", kind),
		Short: fmt.Sprintf("Record an %s", kind),
		Long: fmt.Sprintf(`Record an %s transaction.

Categories: %s
Amounts are in major units, e.g. 12.50.`, kind, strings.Join(categories, ", ")),
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, kind, args)
		},
	}
	cmd.Flags().String("date", "", "transaction date (YYYY-MM-DD, default: today)")
	return cmd
}

func runAdd(cmd *cobra.Command, kind model.Kind, args []string) error {
	ctx := cmd.Context()

	amount, err := cli.ParseAmount(args[1])
	if err != nil {
		return err
	}

	date := time.Now()
	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
	}

	description := ""
	if len(args) == 3 {
		description = args[2]
	}

	txn := model.Transaction{
		Date:        date,
		Kind:        kind,
		Category:    args[0],
		Amount:      amount,
		Description: description,
	}
	if err := txn.Validate(); err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	if err := store.AppendTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to record transaction: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s: %s (%s)", kind, cli.FormatAmount(amount), txn.Category))) //nolint:forbidigo // User-facing output
	return nil
}
