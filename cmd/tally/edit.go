package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/common"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <position>",
		Short: "Edit a transaction by its list position",
		Long: `Edit the transaction at the given position (as shown by "tally list").
Only the flags you pass change; other fields keep their values.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}
	cmd.Flags().String("date", "", "new date (YYYY-MM-DD)")
	cmd.Flags().String("category", "", "new category")
	cmd.Flags().String("amount", "", "new amount in major units")
	cmd.Flags().String("description", "", "new description")
	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <position>",
		Short: "Delete a transaction by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q: %w", args[0], err)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.DeleteTransaction(ctx, position); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted transaction %d", position))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[0], err)
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
	if position < 1 || position > len(txns) {
		return fmt.Errorf("%w: transaction %d", common.ErrNotFound, position)
	}
	txn := txns[position-1]

	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		if txn.Date, err = time.Parse("2006-01-02", dateStr); err != nil {
			return fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
	}
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		txn.Category = category
	}
	if amountStr, _ := cmd.Flags().GetString("amount"); amountStr != "" {
		if txn.Amount, err = cli.ParseAmount(amountStr); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("description") {
		txn.Description, _ = cmd.Flags().GetString("description")
	}

	if err := txn.Validate(); err != nil {
		return err
	}
	if err := store.UpdateTransaction(ctx, position, txn); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated transaction %d: %s %s (%s)", position, txn.Kind, cli.FormatAmount(txn.Amount), txn.Category))) //nolint:forbidigo // User-facing output
	return nil
}
