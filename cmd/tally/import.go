package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from pipe-delimited files",
		Long: `Import transactions from a pipe-delimited file
(date|kind|category|amount|description, amounts in minor units).

Malformed lines are skipped with a warning. Budgets and goals can be
imported alongside with --budgets and --goals.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	cmd.Flags().String("budgets", "", "budget file (category|limit|period)")
	cmd.Flags().String("goals", "", "goal file (name|target|current|deadline|created|type)")
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open transaction file: %w", err)
	}
	txns, err := storage.DecodeTransactions(f)
	_ = f.Close()
	if err != nil {
		return err
	}

	if len(txns) > 0 {
		bar := progressbar.Default(int64(len(txns)), "importing transactions")
		for _, txn := range txns {
			if err := store.AppendTransaction(ctx, txn); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
		_ = bar.Finish()
	}
	imported := len(txns)

	if budgetFile, _ := cmd.Flags().GetString("budgets"); budgetFile != "" {
		n, err := importBudgets(cmd, store, budgetFile)
		if err != nil {
			return err
		}
		imported += n
	}
	if goalFile, _ := cmd.Flags().GetString("goals"); goalFile != "" {
		n, err := importGoals(cmd, store, goalFile)
		if err != nil {
			return err
		}
		imported += n
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d records", imported))) //nolint:forbidigo // User-facing output
	return nil
}

func importBudgets(cmd *cobra.Command, store *storage.SQLiteStorage, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open budget file: %w", err)
	}
	budgets, err := storage.DecodeBudgets(f)
	_ = f.Close()
	if err != nil {
		return 0, err
	}

	for _, b := range budgets {
		if err := store.UpsertBudget(cmd.Context(), b); err != nil {
			return 0, err
		}
	}
	return len(budgets), nil
}

func importGoals(cmd *cobra.Command, store *storage.SQLiteStorage, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open goal file: %w", err)
	}
	goals, err := storage.DecodeGoals(f)
	_ = f.Close()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, g := range goals {
		if err := store.CreateGoal(cmd.Context(), g); err != nil {
			// Re-imports hit existing goals; skip rather than abort.
			slog.Warn("skipping goal", "name", g.Name, "error", err)
			continue
		}
		count++
	}
	return count, nil
}
