package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/model"
)

// UpsertBudget creates or replaces the budget for a category.
func (s *SQLiteStorage) UpsertBudget(ctx context.Context, b model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(&b); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budgets (category, limit_amount, period)
		VALUES (?, ?, ?)
		ON CONFLICT(category) DO UPDATE SET
			limit_amount = excluded.limit_amount,
			period = excluded.period,
			updated_at = CURRENT_TIMESTAMP
	`, b.Category, b.Limit, string(b.Period))
	if err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// ListBudgets returns all budgets ordered by category.
func (s *SQLiteStorage) ListBudgets(ctx context.Context) ([]model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT category, limit_amount, period
		FROM budgets
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var budgets []model.Budget
	for rows.Next() {
		var (
			b      model.Budget
			period string
		)
		if err := rows.Scan(&b.Category, &b.Limit, &period); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		b.Period = model.Period(period)
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

// GetBudget returns the budget for a category, or common.ErrNotFound.
func (s *SQLiteStorage) GetBudget(ctx context.Context, category string) (*model.Budget, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(category, "category"); err != nil {
		return nil, err
	}

	var (
		b      model.Budget
		period string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT category, limit_amount, period FROM budgets WHERE category = ?
	`, category).Scan(&b.Category, &b.Limit, &period)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: budget for %s", common.ErrNotFound, category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query budget: %w", err)
	}
	b.Period = model.Period(period)
	return &b, nil
}

// DeleteBudget removes the budget for a category.
func (s *SQLiteStorage) DeleteBudget(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE category = ?`, category)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: budget for %s", common.ErrNotFound, category)
	}
	return nil
}
