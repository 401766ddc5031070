package model

import (
	"fmt"
	"strings"
	"time"
)

// GoalTypes are the recognized goal-type labels.
var GoalTypes = []string{
	"Emergency Fund",
	"Vacation Savings",
	"Debt Payoff",
	"House Down Payment",
	"Education Fund",
	"General Savings",
	"Custom Goal",
}

// Goal is a named savings target with a deadline. Names are unique
// case-insensitively. Current is clamped to Target on every increment.
type Goal struct {
	Deadline time.Time
	Created  time.Time
	Name     string
	Type     string
	Target   int64
	Current  int64
}

// Validate checks the goal invariants.
func (g *Goal) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidGoal)
	}
	if g.Target <= 0 {
		return fmt.Errorf("%w: target must be positive", ErrInvalidGoal)
	}
	if g.Current < 0 || g.Current > g.Target {
		return fmt.Errorf("%w: current must be within [0, target]", ErrInvalidGoal)
	}
	if g.Deadline.IsZero() || g.Created.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidGoal)
	}
	return nil
}

// AddProgress increments the saved amount, clamping at the target.
func (g *Goal) AddProgress(amount int64) {
	g.Current += amount
	if g.Current > g.Target {
		g.Current = g.Target
	}
}

// Remaining returns the amount still needed to reach the target.
func (g *Goal) Remaining() int64 {
	if g.Current >= g.Target {
		return 0
	}
	return g.Target - g.Current
}

// SameName reports whether name refers to this goal, ignoring case.
func (g *Goal) SameName(name string) bool {
	return strings.EqualFold(g.Name, name)
}
