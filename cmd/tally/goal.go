package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/cli"
	"github.com/tallyfin/tally/internal/goal"
	"github.com/tallyfin/tally/internal/ledger"
	"github.com/tallyfin/tally/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage savings goals",
	}
	cmd.AddCommand(goalCreateCmd())
	cmd.AddCommand(goalListCmd())
	cmd.AddCommand(goalAddCmd())
	cmd.AddCommand(goalDeleteCmd())
	return cmd
}

func goalCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name> <target> <deadline>",
		Short: "Create a savings goal",
		Long: fmt.Sprintf(`Create a savings goal with a target amount and a deadline (YYYY-MM-DD).

Goal types: %s`, strings.Join(model.GoalTypes, ", ")),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			target, err := cli.ParseAmount(args[1])
			if err != nil {
				return err
			}
			deadline, err := time.Parse("2006-01-02", args[2])
			if err != nil {
				return fmt.Errorf("invalid deadline %q: %w", args[2], err)
			}
			goalType, _ := cmd.Flags().GetString("type")

			g := model.Goal{
				Name:     args[0],
				Type:     goalType,
				Target:   target,
				Deadline: deadline,
				Created:  time.Now(),
			}
			if err := g.Validate(); err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.CreateGoal(ctx, g); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal created: %s, %s by %s", g.Name, cli.FormatAmount(g.Target), deadline.Format("2006-01-02")))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
	cmd.Flags().String("type", "General Savings", "goal type")
	return cmd
}

func goalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with their projections",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			goals, err := store.ListGoals(ctx)
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println(cli.FormatInfo("No goals set")) //nolint:forbidigo // User-facing output
				return nil
			}

			txns, err := store.ListTransactions(ctx)
			if err != nil {
				return err
			}
			now := time.Now()
			summary := ledger.Summarize(txns, ledger.MonthOf(now))
			statuses := goal.ProjectAll(goals, now, summary.Savings())

			table := cli.NewTable("Goal", "Saved", "Target", "Progress", "Deadline", "Monthly needed", "Status")
			for _, s := range statuses {
				table.AddRow(
					s.Goal.Name,
					cli.FormatAmount(s.Goal.Current),
					cli.FormatAmount(s.Goal.Target),
					cli.FormatPercent(s.Progress),
					s.Goal.Deadline.Format("2006-01-02"),
					cli.FormatAmount(s.RequiredMonthly),
					goalStatusLabel(s),
				)
			}
			fmt.Print(table.Render()) //nolint:forbidigo // User-facing output

			for _, s := range statuses {
				if s.HasExpected && !s.Completed {
					fmt.Printf("%s %q expected to complete in %s at the current savings rate\n", //nolint:forbidigo // User-facing output
						cli.TargetIcon, s.Goal.Name, s.Expected.Name())
				}
			}
			return nil
		},
	}
}

func goalAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Add progress toward a goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			amount, err := cli.ParseAmount(args[1])
			if err != nil {
				return err
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			g, err := store.AddGoalProgress(ctx, args[0], amount)
			if err != nil {
				return err
			}

			progress := goal.Progress(*g)
			msg := fmt.Sprintf("%s: %s of %s (%s)", g.Name, cli.FormatAmount(g.Current), cli.FormatAmount(g.Target), cli.FormatPercent(progress))
			if g.Remaining() == 0 {
				fmt.Println(cli.FormatSuccess("Goal completed! " + msg)) //nolint:forbidigo // User-facing output
			} else {
				fmt.Println(cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
			}
			return nil
		},
	}
}

func goalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(store)

			if err := store.DeleteGoal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Goal deleted: %s", args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func goalStatusLabel(s goal.Status) string {
	switch {
	case s.Completed:
		return cli.SuccessStyle.Render("Completed")
	case s.OnTrack:
		return cli.SuccessStyle.Render("On track")
	default:
		return cli.WarningStyle.Render("Behind")
	}
}
