package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tallyfin/tally/internal/common"
	"github.com/tallyfin/tally/internal/model"
)

// CreateGoal saves a new goal. Goal names are unique, case-insensitively.
func (s *SQLiteStorage) CreateGoal(ctx context.Context, g model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(&g); err != nil {
		return err
	}

	var existing int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM goals WHERE name = ? COLLATE NOCASE
	`, g.Name).Scan(&existing)
	if err != nil {
		return fmt.Errorf("failed to check for existing goal: %w", err)
	}
	if existing > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateGoal, g.Name)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO goals (name, goal_type, target, current, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, g.Name, g.Type, g.Target, g.Current, g.Deadline, g.Created)
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}
	return nil
}

// ListGoals returns all goals in creation order.
func (s *SQLiteStorage) ListGoals(ctx context.Context) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, goal_type, target, current, deadline, created_at
		FROM goals
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var g model.Goal
		if err := rows.Scan(&g.Name, &g.Type, &g.Target, &g.Current, &g.Deadline, &g.Created); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}
	return goals, nil
}

// GetGoal returns the goal with the given name (case-insensitive), or
// common.ErrNotFound.
func (s *SQLiteStorage) GetGoal(ctx context.Context, name string) (*model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(name, "name"); err != nil {
		return nil, err
	}

	var g model.Goal
	err := s.db.QueryRowContext(ctx, `
		SELECT name, goal_type, target, current, deadline, created_at
		FROM goals WHERE name = ? COLLATE NOCASE
	`, name).Scan(&g.Name, &g.Type, &g.Target, &g.Current, &g.Deadline, &g.Created)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: goal %s", common.ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal: %w", err)
	}
	return &g, nil
}

// AddGoalProgress adds to a goal's saved amount, clamped to its target.
// It returns the updated goal.
func (s *SQLiteStorage) AddGoalProgress(ctx context.Context, name string, amount int64) (*model.Goal, error) {
	g, err := s.GetGoal(ctx, name)
	if err != nil {
		return nil, err
	}

	g.AddProgress(amount)

	_, err = s.db.ExecContext(ctx, `
		UPDATE goals SET current = ? WHERE name = ? COLLATE NOCASE
	`, g.Current, name)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal progress: %w", err)
	}
	return g, nil
}

// DeleteGoal removes the goal with the given name (case-insensitive).
func (s *SQLiteStorage) DeleteGoal(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE name = ? COLLATE NOCASE`, name)
	if err != nil {
		return fmt.Errorf("failed to delete goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: goal %s", common.ErrNotFound, name)
	}
	return nil
}
