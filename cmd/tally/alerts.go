package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/advisor"
	"github.com/tallyfin/tally/internal/cli"
)

func alertsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show active financial alerts",
		Long: `Scan the current month for conditions that need attention: exceeded
budgets, unusually large transactions, spending sprees, low savings and
goal deadlines. Alerts are ordered by priority, most urgent first.`,
		RunE: runAlerts,
	}
}

func runAlerts(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	snap, err := buildSnapshot(ctx, store, time.Now())
	if err != nil {
		return err
	}

	alerts := advisor.Alerts(snap)
	if len(alerts) == 0 {
		fmt.Println(cli.FormatSuccess("No alerts - everything looks healthy")) //nolint:forbidigo // User-facing output
		return nil
	}

	fmt.Println(cli.FormatTitle(cli.BellIcon + " Alerts")) //nolint:forbidigo // User-facing output
	for _, a := range alerts {
		fmt.Println(formatAlert(a)) //nolint:forbidigo // User-facing output
	}
	return nil
}

func formatAlert(a advisor.Alert) string {
	switch a.Priority {
	case advisor.PriorityCritical:
		return cli.FormatError(a.Message)
	case advisor.PriorityWarning:
		return cli.FormatWarning(a.Message)
	case advisor.PrioritySuccess:
		return cli.FormatSuccess(a.Message)
	default:
		return cli.FormatInfo(a.Message)
	}
}
