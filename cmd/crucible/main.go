// Command crucible computes the minimum heat loss of a crucible pushed across
// a digit grid of city blocks, for one or more straight-line policies.
//
//	crucible solve input.txt            # part1 and part2
//	crucible solve --mode part2 --path input.txt
//	crucible solve --min-run 2 --max-run 5 input.txt
//	crucible verify input.txt           # solve, then replay every path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cbackas/advent-of-code/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	envFile    string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Minimum heat loss through a city-block grid",
	Long: `crucible finds the cheapest route from the top-left to the bottom-right
block of a digit grid, where each digit is the heat lost entering that block
and the crucible must respect a minimum and maximum straight-line run.

Settings come from a YAML file (--config), an optional .env file, and
CRUCIBLE_INPUT / CRUCIBLE_LOG_LEVEL / CRUCIBLE_PARALLEL, later sources winning.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath, envFile)
		if err != nil {
			return err
		}

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging, including search statistics")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "crucible.yaml", "YAML config file (ignored if missing)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file (ignored if missing)")

	solveCmd.Flags().StringVar(&modeName, "mode", "all", "mode to run by name, or \"all\"")
	solveCmd.Flags().IntVar(&minRun, "min-run", 0, "custom minimum run (requires --max-run)")
	solveCmd.Flags().IntVar(&maxRun, "max-run", 0, "custom maximum run (requires --min-run)")
	solveCmd.Flags().BoolVar(&stopAnywhere, "stop-anywhere", false, "accept the goal at any run length")
	solveCmd.Flags().BoolVar(&showPath, "path", false, "draw each route over the grid")
	solveCmd.Flags().BoolVar(&sequential, "sequential", false, "solve modes one after another")

	verifyCmd.Flags().StringVar(&modeName, "mode", "all", "mode to run by name, or \"all\"")

	rootCmd.AddCommand(solveCmd, verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if logger != nil {
			logger.Error("crucible failed", zap.Error(err))
			_ = logger.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
