package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/model"
	"github.com/tallyfin/tally/internal/storage"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export transactions",
		Long: `Export all transactions to a file. Formats:

  text  pipe-delimited, re-importable (default)
  csv   spreadsheet-friendly, amounts in major units
  json  structured records`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	cmd.Flags().String("format", "text", "output format (text, csv, json)")
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format, _ := cmd.Flags().GetString("format")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	txns, err := store.ListTransactions(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "text":
		err = exportText(f, txns)
	case "csv":
		err = exportCSV(f, txns)
	case "json":
		err = exportJSON(f, txns)
	default:
		return fmt.Errorf("invalid format %q (text, csv, json)", format)
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(txns), args[0]))) //nolint:forbidigo // User-facing output
	return nil
}

func exportText(f *os.File, txns []model.Transaction) error {
	for _, txn := range txns {
		if _, err := fmt.Fprintln(f, storage.EncodeTransaction(txn)); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

func exportCSV(f *os.File, txns []model.Transaction) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"date", "kind", "category", "amount", "description"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, txn := range txns {
		record := []string{
			txn.Date.Format("2006-01-02"),
			string(txn.Kind),
			txn.Category,
			strconv.FormatFloat(float64(txn.Amount)/100, 'f', 2, 64),
			txn.Description,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

func exportJSON(f *os.File, txns []model.Transaction) error {
	type record struct {
		Date        string `json:"date"`
		Kind        string `json:"kind"`
		Category    string `json:"category"`
		Amount      int64  `json:"amount"`
		Description string `json:"description,omitempty"`
	}

	records := make([]record, 0, len(txns))
	for _, txn := range txns {
		records = append(records, record{
			Date:        txn.Date.Format("2006-01-02"),
			Kind:        string(txn.Kind),
			Category:    txn.Category,
			Amount:      txn.Amount,
			Description: txn.Description,
		})
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
