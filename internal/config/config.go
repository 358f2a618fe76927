// Package config handles command-line and environment configuration for
// the coincalc application.
//
// Resolution chain (highest priority first):
//  1. CLI flags (--amounts, --algo, ...)
//  2. Environment variables (COINCALC_AMOUNTS, etc.)
//  3. Static defaults in this file
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/Jozeph555/coincalc/internal/errors"
)

// Default configuration values.
const (
	// DefaultAlgo runs every registered solver so their timings can be
	// compared.
	DefaultAlgo = "all"
	// DefaultTimeout bounds a whole demonstration run. The solvers are
	// O(amount), so this is generous even for very large custom amounts.
	DefaultTimeout = 1 * time.Minute
)

// DefaultAmounts is the fixed sample list used by the demonstration when
// no --amounts flag is given.
var DefaultAmounts = []int{113, 1500, 15000, 150000}

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Amounts are the change amounts to decompose, in run order.
	Amounts []int
	// Algo selects the solver to run: a factory key or "all".
	Algo string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Quiet suppresses everything except the per-amount results.
	Quiet bool
	// Verbose adds runtime memory snapshots to the report.
	Verbose bool
	// NoColor disables ANSI colors in the output.
	NoColor bool
	// TUI launches the interactive dashboard instead of the batch run.
	TUI bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on this
	// address for the duration of the run.
	MetricsAddr string
}

// ParseConfig parses command-line arguments and environment overrides into
// an AppConfig.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, excluding the program name.
//   - errWriter: Destination for flag parse errors and usage text.
//   - availableAlgos: The solver keys accepted by --algo (besides "all").
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when --help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	cfg := AppConfig{
		Amounts: DefaultAmounts,
		Algo:    DefaultAlgo,
		Timeout: DefaultTimeout,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	amountsFlag := fs.String("amounts", "", fmt.Sprintf("comma-separated change amounts (default %s)", formatAmounts(DefaultAmounts)))
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, fmt.Sprintf("solver to run: %s or all", strings.Join(availableAlgos, ", ")))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "time budget for the whole run")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "suppress everything except results")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include runtime memory snapshots in the report")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable ANSI colors")
	fs.BoolVar(&cfg.TUI, "tui", false, "launch the interactive dashboard")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected positional arguments: %v", fs.Args())
	}

	applyEnvOverrides(&cfg, fs)

	if *amountsFlag != "" {
		amounts, err := ParseAmounts(*amountsFlag)
		if err != nil {
			return AppConfig{}, err
		}
		cfg.Amounts = amounts
	}

	if err := validateAlgo(cfg.Algo, availableAlgos); err != nil {
		return AppConfig{}, err
	}
	if cfg.Timeout <= 0 {
		return AppConfig{}, apperrors.NewConfigError("timeout must be positive, got %s", cfg.Timeout)
	}

	return cfg, nil
}

// ParseAmounts parses a comma-separated list of integers. Whitespace
// around entries is tolerated. Negative values are passed through so the
// solvers' own validation surfaces the documented error.
func ParseAmounts(list string) ([]int, error) {
	parts := strings.Split(list, ",")
	amounts := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		amount, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid amount %q: not an integer", trimmed)
		}
		amounts = append(amounts, amount)
	}
	if len(amounts) == 0 {
		return nil, apperrors.NewConfigError("amounts list is empty")
	}
	return amounts, nil
}

func validateAlgo(algo string, available []string) error {
	if algo == "all" {
		return nil
	}
	for _, key := range available {
		if algo == key {
			return nil
		}
	}
	return apperrors.NewConfigError("unknown algo %q (available: %s, all)", algo, strings.Join(available, ", "))
}

func formatAmounts(amounts []int) string {
	parts := make([]string, len(amounts))
	for i, a := range amounts {
		parts[i] = strconv.Itoa(a)
	}
	return strings.Join(parts, ",")
}
