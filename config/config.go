// Package config loads solver settings from a YAML file, optional .env files
// and CRUCIBLE_* environment variables, in that order of precedence (later
// wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cbackas/advent-of-code/crucible"
	"github.com/cbackas/advent-of-code/movement"
)

// Environment variables read by Load.
const (
	EnvInput    = "CRUCIBLE_INPUT"
	EnvLogLevel = "CRUCIBLE_LOG_LEVEL"
	EnvParallel = "CRUCIBLE_PARALLEL"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds all solver settings.
type Config struct {
	// Input is the grid file path; "-" reads stdin.
	Input string `yaml:"input"`
	// Parallel runs the modes concurrently.
	Parallel bool `yaml:"parallel"`
	// Modes are solved in order and reported by name.
	Modes []ModeConfig `yaml:"modes"`
	// Logging configures the zap logger of the CLI.
	Logging LoggingConfig `yaml:"logging"`
}

// ModeConfig describes one crucible policy.
type ModeConfig struct {
	Name     string `yaml:"name"`
	MinRun   int    `yaml:"min_run"`
	MaxRun   int    `yaml:"max_run"`
	StopRule string `yaml:"stop_rule"` // "min-run" (default) or "anywhere"
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the two puzzle modes, stdin input and info logging.
func DefaultConfig() *Config {
	return &Config{
		Input:    "-",
		Parallel: true,
		Modes: []ModeConfig{
			{Name: "part1", MinRun: 1, MaxRun: 3},
			{Name: "part2", MinRun: 4, MaxRun: 10},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over DefaultConfig, loads any existing
// dotenv files into the process environment, then applies environment
// overrides. An empty or missing path yields the defaults.
func Load(path string, dotenv ...string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := loadDotEnv(dotenv); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadDotEnv loads the dotenv files that exist; missing files are skipped.
func loadDotEnv(files []string) error {
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("config: load dotenv: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvParallel); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalid, EnvParallel, v)
		}
		c.Parallel = b
	}
	return nil
}

// Validate checks the log level and every mode.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if len(c.Modes) == 0 {
		return fmt.Errorf("%w: no modes configured", ErrInvalid)
	}
	seen := make(map[string]bool, len(c.Modes))
	for _, m := range c.Modes {
		if m.Name == "" {
			return fmt.Errorf("%w: mode without a name", ErrInvalid)
		}
		if seen[m.Name] {
			return fmt.Errorf("%w: duplicate mode %q", ErrInvalid, m.Name)
		}
		seen[m.Name] = true
		if _, err := m.Mode(); err != nil {
			return err
		}
	}
	return nil
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return lvl, nil
}

// CrucibleModes converts every ModeConfig.
func (c *Config) CrucibleModes() ([]crucible.Mode, error) {
	out := make([]crucible.Mode, 0, len(c.Modes))
	for _, m := range c.Modes {
		mode, err := m.Mode()
		if err != nil {
			return nil, err
		}
		out = append(out, mode)
	}
	return out, nil
}

// Mode builds the crucible.Mode described by m.
func (m ModeConfig) Mode() (crucible.Mode, error) {
	rule, err := ParseStopRule(m.StopRule)
	if err != nil {
		return crucible.Mode{}, fmt.Errorf("mode %q: %w", m.Name, err)
	}
	p, err := movement.NewPolicy(m.MinRun, m.MaxRun, movement.WithStopRule(rule))
	if err != nil {
		return crucible.Mode{}, fmt.Errorf("%w: mode %q: %v", ErrInvalid, m.Name, err)
	}
	return crucible.Mode{Name: m.Name, Policy: p}, nil
}

// ParseStopRule maps "", "min-run" and "anywhere" to a movement.StopRule.
func ParseStopRule(s string) (movement.StopRule, error) {
	switch s {
	case "", "min-run":
		return movement.StopAtMinRun, nil
	case "anywhere":
		return movement.StopAnywhere, nil
	default:
		return movement.StopAtMinRun, fmt.Errorf("%w: unknown stop rule %q", ErrInvalid, s)
	}
}
