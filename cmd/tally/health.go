package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/health"
)

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Show the financial health score",
		Long: `Score the current month's finances out of 100:

  savings rate      up to 30 points
  budget adherence  up to 25 points
  positive balance  up to 25 points
  spending consistency up to 20 points`,
		RunE: runHealth,
	}
}

func runHealth(cmd *cobra.Command, _ []string) error {
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

	score := snap.Health
	content := fmt.Sprintf("Savings rate:     %2d/%d\n", score.Savings, health.MaxSavings)
	content += fmt.Sprintf("Budget adherence: %2d/%d\n", score.Budget, health.MaxBudget)
	content += fmt.Sprintf("Positive balance: %2d/%d\n", score.Balance, health.MaxBalance)
	content += fmt.Sprintf("Consistency:      %2d/%d\n\n", score.Consistency, health.MaxConsistency)
	content += fmt.Sprintf("Total: %d/100 — %s", score.Total, ratingLabel(score.Rating))

	fmt.Println(cli.RenderBox(cli.ChartIcon+" Financial Health", content)) //nolint:forbidigo // User-facing output
	return nil
}

func ratingLabel(r health.Rating) string {
	switch r {
	case health.RatingExcellent, health.RatingGood:
		return cli.SuccessStyle.Render(r.String())
	case health.RatingFair:
		return cli.WarningStyle.Render(r.String())
	default:
		return cli.ErrorStyle.Render(r.String())
	}
}
