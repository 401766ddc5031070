// Package goal projects savings-goal progress: completion percentage,
// required monthly contribution, on-track determination, and an expected
// completion month extrapolated from the current savings rate.
package goal

import (
	"time"

	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

// Status is the projected state of one goal at a point in time.
type Status struct {
	Goal            model.Goal
	Progress        float64
	DaysToDeadline  int
	RequiredMonthly int64
	OnTrack         bool
	Completed       bool
	// Expected is the month the goal is projected to complete at the
	// current savings rate. HasExpected is false when the rate is zero or
	// negative and no projection exists.
	Expected    ledger.Month
	HasExpected bool
}

// Progress returns goal completion as a percentage, capped at 100. A zero
// target counts as already complete.
func Progress(g model.Goal) float64 {
	if g.Target == 0 {
		return 100
	}
	p := float64(g.Current) / float64(g.Target) * 100
	if p > 100 {
		return 100
	}
	return p
}

// DaysToDeadline returns whole days from now until the deadline, negative
// once the deadline has passed.
func DaysToDeadline(g model.Goal, now time.Time) int {
	return int(g.Deadline.Sub(now).Hours() / 24)
}

// RequiredMonthly returns the contribution needed each remaining calendar
// month to hit the target by the deadline. A passed deadline leaves at
// least one month, so the result is the full remaining amount.
func RequiredMonthly(g model.Goal, now time.Time) int64 {
	remaining := g.Remaining()
	if remaining == 0 {
		return 0
	}
	months := ledger.MonthsBetween(now, g.Deadline)
	if months < 1 {
		months = 1
	}
	return remaining / int64(months)
}

// OnTrack compares actual progress against the straight-line progress
// expected from time elapsed since the goal was created.
func OnTrack(g model.Goal, now time.Time) bool {
	progress := Progress(g)

	monthsTotal := ledger.MonthsBetween(g.Created, g.Deadline)
	if monthsTotal == 0 {
		return progress >= 100
	}

	monthsElapsed := ledger.MonthsBetween(g.Created, now)
	expected := float64(monthsElapsed) / float64(monthsTotal) * 100
	return progress >= expected
}

// Project builds the full status for a goal. monthlySavings is the current
// month's overall savings; a non-positive rate leaves the expected
// completion month undefined.
func Project(g model.Goal, now time.Time, monthlySavings int64) Status {
	st := Status{
		Goal:            g,
		Progress:        Progress(g),
		DaysToDeadline:  DaysToDeadline(g, now),
		RequiredMonthly: RequiredMonthly(g, now),
		OnTrack:         OnTrack(g, now),
	}

	remaining := g.Remaining()
	if remaining == 0 {
		st.Completed = true
		return st
	}

	if monthlySavings > 0 {
		months := remaining / monthlySavings
		if remaining%monthlySavings != 0 {
			months++
		}
		st.Expected = ledger.MonthOf(now.AddDate(0, int(months), 0))
		st.HasExpected = true
	}

	return st
}

// ProjectAll projects every goal against the same clock and savings rate.
func ProjectAll(goals []model.Goal, now time.Time, monthlySavings int64) []Status {
	statuses := make([]Status, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, Project(g, now, monthlySavings))
	}
	return statuses
}
