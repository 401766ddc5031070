package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/model"
)

// AppendTransaction saves a new transaction.
func (s *SQLiteStorage) AppendTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (date, kind, category, amount, description)
		VALUES (?, ?, ?, ?, ?)
	`, txn.Date, string(txn.Kind), txn.Category, txn.Amount, txn.Description)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// AppendTransactions saves multiple transactions in one database transaction.
func (s *SQLiteStorage) AppendTransactions(ctx context.Context, txns []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for i := range txns {
		if err := validateTransaction(&txns[i]); err != nil {
			return fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO transactions (date, kind, category, amount, description)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range txns {
		if _, err := stmt.ExecContext(ctx, txn.Date, string(txn.Kind), txn.Category, txn.Amount, txn.Description); err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
	}
	return tx.Commit()
}

// ListTransactions returns every transaction in insertion order.
func (s *SQLiteStorage) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT date, kind, category, amount, description
		FROM transactions
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		var (
			txn  model.Transaction
			kind string
		)
		if err := rows.Scan(&txn.Date, &kind, &txn.Category, &txn.Amount, &txn.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Kind = model.Kind(kind)
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txns, nil
}

// UpdateTransaction replaces the transaction at the given position
// (1-based, insertion order).
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, position int, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(&txn); err != nil {
		return err
	}

	id, err := s.idAtPosition(ctx, position)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE transactions SET date = ?, kind = ?, category = ?, amount = ?, description = ?
		WHERE id = ?
	`, txn.Date, string(txn.Kind), txn.Category, txn.Amount, txn.Description, id)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

// DeleteTransaction removes the transaction at the given position
// (1-based, insertion order).
func (s *SQLiteStorage) DeleteTransaction(ctx context.Context, position int) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	id, err := s.idAtPosition(ctx, position)
	if err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// CountTransactions returns the total number of stored transactions.
func (s *SQLiteStorage) CountTransactions(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// EarliestTransactionDate returns the date of the oldest transaction, or
// common.ErrNotFound when the ledger is empty.
func (s *SQLiteStorage) EarliestTransactionDate(ctx context.Context) (time.Time, error) {
	if err := validateContext(ctx); err != nil {
		return time.Time{}, err
	}

	var date sql.NullTime
	err := s.db.QueryRowContext(ctx, `SELECT MIN(date) FROM transactions`).Scan(&date)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to query earliest transaction: %w", err)
	}
	if !date.Valid {
		return time.Time{}, fmt.Errorf("%w: no transactions", common.ErrNotFound)
	}
	return date.Time, nil
}

func (s *SQLiteStorage) idAtPosition(ctx context.Context, position int) (int64, error) {
	if position < 1 {
		return 0, fmt.Errorf("%w: position %d", ErrInvalidIndex, position)
	}

	var id int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM transactions ORDER BY id LIMIT 1 OFFSET ?
	`, position-1).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("%w: transaction %d", common.ErrNotFound, position)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve transaction position: %w", err)
	}
	return id, nil
}
