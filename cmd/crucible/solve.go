package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cbackas/advent-of-code/crucible"
	"github.com/cbackas/advent-of-code/dijkstra"
	"github.com/cbackas/advent-of-code/gridgraph"
	"github.com/cbackas/advent-of-code/movement"
)

var (
	modeName     string
	minRun       int
	maxRun       int
	stopAnywhere bool
	showPath     bool
	sequential   bool
)

// solveCmd prints the minimum heat loss for each selected mode.
var solveCmd = &cobra.Command{
	Use:   "solve [input]",
	Short: "Print the minimum heat loss per mode",
	Long: `Reads a digit grid from the input file ("-" for stdin, default from config)
and prints one "<mode>: <heat loss>" line per mode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
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
		fmt.Fprintf(out, "%s: %d\n", r.Mode.Name, r.Solution.Cost)
		if showPath {
			fmt.Fprint(out, crucible.Render(g, r.Solution.Path))
		}
	}
	return nil
}

// solve runs the modes concurrently unless config or --sequential says otherwise.
func solve(ctx context.Context, g *gridgraph.Grid, modes []crucible.Mode) ([]crucible.Report, error) {
	opts := []dijkstra.Option{dijkstra.WithLogger(logger)}

	var (
		reports []crucible.Report
		err     error
	)
	if cfg.Parallel && !sequential {
		reports, err = crucible.SolveModes(ctx, g, modes, opts...)
	} else {
		for _, m := range modes {
			if err = ctx.Err(); err != nil {
				break
			}
			var sol crucible.Solution
			sol, err = crucible.MinHeatLoss(g, m.Policy, opts...)
			if err != nil {
				err = fmt.Errorf("mode %s: %w", m.Name, err)
				break
			}
			reports = append(reports, crucible.Report{Mode: m, Solution: sol})
		}
	}
	if err != nil {
		return nil, err
	}

	for _, r := range reports {
		logger.Info("solved",
			zap.String("mode", r.Mode.Name),
			zap.Stringer("policy", r.Mode.Policy),
			zap.Uint64("heat_loss", r.Solution.Cost),
			zap.Int("path_len", len(r.Solution.Path)),
			zap.Int("expanded", r.Solution.Stats.Expanded),
		)
	}
	return reports, nil
}

// interruptContext derives a context from the command's that is cancelled on Ctrl-C.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

// selectModes applies --mode, --min-run/--max-run and --stop-anywhere to the
// configured modes.
func selectModes() ([]crucible.Mode, error) {
	var modes []crucible.Mode
	if minRun != 0 || maxRun != 0 {
		p, err := movement.NewPolicy(minRun, maxRun)
		if err != nil {
			return nil, err
		}
		modes = []crucible.Mode{{Name: "custom", Policy: p}}
	} else {
		all, err := cfg.CrucibleModes()
		if err != nil {
			return nil, err
		}
		for _, m := range all {
			if modeName == "" || modeName == "all" || modeName == m.Name {
				modes = append(modes, m)
			}
		}
		if len(modes) == 0 {
			return nil, fmt.Errorf("unknown mode %q", modeName)
		}
	}

	if stopAnywhere {
		for i := range modes {
			modes[i].Policy.Stop = movement.StopAnywhere
		}
	}
	return modes, nil
}

// readGrid parses the grid named by args[0], or by the config when no
// argument is given. "-" reads the command's stdin.
func readGrid(cmd *cobra.Command, args []string) (*gridgraph.Grid, error) {
	path := cfg.Input
	if len(args) > 0 {
		path = args[0]
	}

	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	g, err := gridgraph.Parse(r)
	if err != nil {
		return nil, err
	}
	rows, cols := g.Dimensions()
	logger.Debug("grid loaded", zap.String("input", path), zap.Int("rows", rows), zap.Int("cols", cols))
	return g, nil
}
