// Package advisor scans the engine's derived outputs and emits
// prioritized, human-readable alerts and recommendations. It holds no
// state of its own; every function is a pure scan over a Snapshot.
package advisor

import (
	"fmt"
	"sort"
	"time"

	"github.com/tallyfin/tally/internal/budget"
	"github.com/tallyfin/tally/internal/goal"
	"github.com/tallyfin/tally/internal/health"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

// Priority orders alerts from critical to celebratory.
type Priority int

const (
	// PriorityCritical needs immediate attention.
	PriorityCritical Priority = 1
	// PriorityWarning should be looked at soon.
	PriorityWarning Priority = 2
	// PriorityInfo is informational.
	PriorityInfo Priority = 3
	// PrioritySuccess celebrates something achieved.
	PrioritySuccess Priority = 4
)

// Alert is one prioritized signal.
type Alert struct {
	Source   string
	Message  string
	Priority Priority
}

// Snapshot is everything the advisor scans: the current and previous month
// aggregates plus the evaluated budget and goal tables. The caller derives
// these from one consistent read of the ledger.
type Snapshot struct {
	Now            time.Time
	Transactions   []model.Transaction
	Current        ledger.Summary
	Previous       ledger.Summary
	BudgetStatuses []budget.Status
	GoalStatuses   []goal.Status
	Health         health.Score
	SavingsRate    float64
}

// largeShare is the fraction of monthly income above which a single
// expense triggers an alert.
const largeShare = 0.20

// spreeCount is the number of same-category expenses on one calendar day
// that counts as a spending spree.
const spreeCount = 3

// Alerts scans the snapshot and returns all active alerts, sorted
// ascending by priority. The sort is stable, so alerts of equal priority
// keep generation order.
func Alerts(s Snapshot) []Alert {
	var alerts []Alert

	alerts = append(alerts, budgetAlerts(s.BudgetStatuses)...)
	alerts = append(alerts, largeTransactionAlerts(s)...)
	alerts = append(alerts, spreeAlerts(s)...)
	alerts = append(alerts, savingsAlerts(s)...)
	alerts = append(alerts, goalAlerts(s.GoalStatuses)...)

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority < alerts[j].Priority
	})

	return alerts
}

func budgetAlerts(statuses []budget.Status) []Alert {
	var alerts []Alert
	for _, b := range statuses {
		switch {
		case b.Utilization > 100:
			alerts = append(alerts, Alert{
				Source:   "budget",
				Priority: PriorityCritical,
				Message:  fmt.Sprintf("%s budget exceeded (%.0f%% used)", b.Category, b.Utilization),
			})
		case b.Utilization >= 90:
			alerts = append(alerts, Alert{
				Source:   "budget",
				Priority: PriorityCritical,
				Message:  fmt.Sprintf("%s at %.0f%% of budget", b.Category, b.Utilization),
			})
		case b.Utilization >= 80:
			alerts = append(alerts, Alert{
				Source:   "budget",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("%s at %.0f%% of budget - watch closely", b.Category, b.Utilization),
			})
		}
	}
	return alerts
}

func largeTransactionAlerts(s Snapshot) []Alert {
	if s.Current.Income == 0 {
		return nil
	}
	threshold := float64(s.Current.Income) * largeShare

	var alerts []Alert
	expenses := ledger.FilterKind(ledger.FilterMonth(s.Transactions, s.Current.Month), model.KindExpense)
	for _, t := range expenses {
		if float64(t.Amount) > threshold {
			alerts = append(alerts, Alert{
				Source:   "transaction",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("Large transaction: %s exceeds 20%% of monthly income", t.Description),
			})
		}
	}
	return alerts
}

func spreeAlerts(s Snapshot) []Alert {
	expenses := ledger.FilterKind(ledger.FilterMonth(s.Transactions, s.Current.Month), model.KindExpense)

	type dayCategory struct {
		day      string
		category string
	}
	counts := make(map[dayCategory]int)
	var order []dayCategory
	for _, t := range expenses {
		key := dayCategory{day: t.Date.Format("2006-01-02"), category: t.Category}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	var alerts []Alert
	for _, key := range order {
		if counts[key] >= spreeCount {
			alerts = append(alerts, Alert{
				Source:   "spree",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("%d %s transactions on %s - spending spree", counts[key], key.category, key.day),
			})
		}
	}
	return alerts
}

func savingsAlerts(s Snapshot) []Alert {
	savings := s.Current.Savings()
	switch {
	case savings < 0:
		return []Alert{{
			Source:   "savings",
			Priority: PriorityCritical,
			Message:  "Spending exceeds income this month",
		}}
	case s.SavingsRate < 5:
		return []Alert{{
			Source:   "savings",
			Priority: PriorityWarning,
			Message:  fmt.Sprintf("Low savings rate: %.1f%% (target: 20%%)", s.SavingsRate),
		}}
	}
	return nil
}

func goalAlerts(statuses []goal.Status) []Alert {
	var alerts []Alert
	for _, g := range statuses {
		if g.Completed || g.Progress >= 100 {
			alerts = append(alerts, Alert{
				Source:   "goal",
				Priority: PrioritySuccess,
				Message:  fmt.Sprintf("Goal %q completed", g.Goal.Name),
			})
			continue
		}

		if g.DaysToDeadline < 0 {
			alerts = append(alerts, Alert{
				Source:   "goal",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("Goal %q deadline passed %d days ago", g.Goal.Name, -g.DaysToDeadline),
			})
			continue
		}

		if g.DaysToDeadline > 0 && g.DaysToDeadline <= 30 {
			alerts = append(alerts, Alert{
				Source:   "goal",
				Priority: PriorityInfo,
				Message:  fmt.Sprintf("Goal %q deadline in %d days", g.Goal.Name, g.DaysToDeadline),
			})
		}

		if !g.OnTrack && g.DaysToDeadline > 0 {
			alerts = append(alerts, Alert{
				Source:   "goal",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("Goal %q behind schedule (%.0f%% complete)", g.Goal.Name, g.Progress),
			})
		}
	}
	return alerts
}
