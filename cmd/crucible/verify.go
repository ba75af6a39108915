package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbackas/advent-of-code/crucible"
)

// verifyCmd solves every mode and replays each route against its policy.
var verifyCmd = &cobra.Command{
	Use:   "verify [input]",
	Short: "Solve, then re-check every route against its movement rules",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	g, err := readGrid(cmd, args)
	if err != nil {
		return err
	}
	modes, err := selectModes()
	if err != nil {
		return err
	}

	ctx, stop := interruptContext(cmd)
	defer stop()

	reports, err := solve(ctx, g, modes)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range reports {
		cost, err := crucible.VerifyPath(g, r.Mode.Policy, r.Solution.Path)
		if err != nil {
			return fmt.Errorf("mode %s: %w", r.Mode.Name, err)
		}
		if cost != r.Solution.Cost {
			return fmt.Errorf("mode %s: %w: replayed cost %d, reported %d", r.Mode.Name, crucible.ErrIllegalPath, cost, r.Solution.Cost)
		}
		fmt.Fprintf(out, "%s: %d verified (%d steps)\n", r.Mode.Name, cost, len(r.Solution.Path)-1)
	}
	return nil
}
