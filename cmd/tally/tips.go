package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/tallyfin/tally/internal/advisor"
	"github.com/tallyfin/tally/internal/cli"
)

func tipsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tips",
		Short: "Show a financial tip",
		RunE:  runTips,
	}
	cmd.Flags().Int64("seed", 0, "random seed for tip selection (0: time-based)")
	cmd.Flags().Bool("all", false, "show every tip")
	return cmd
}

func runTips(cmd *cobra.Command, _ []string) error {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := advisor.NewTipSource(rand.New(rand.NewSource(seed))) //nolint:gosec // Tips need no cryptographic randomness

	if all, _ := cmd.Flags().GetBool("all"); all {
		for i, tip := range source.All() {
			fmt.Printf("%2d. %s\n", i+1, tip) //nolint:forbidigo // User-facing output
		}
		return nil
	}

	fmt.Println(cli.FormatInfo(source.Pick())) //nolint:forbidigo // User-facing output
	return nil
}
