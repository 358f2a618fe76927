// Package app wires configuration, solvers, orchestration, and
// presentation into the runnable application.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/Jozeph555/coincalc/internal/cli"
	"github.com/Jozeph555/coincalc/internal/coinchange"
	"github.com/Jozeph555/coincalc/internal/config"
	apperrors "github.com/Jozeph555/coincalc/internal/errors"
	"github.com/Jozeph555/coincalc/internal/logging"
	"github.com/Jozeph555/coincalc/internal/metrics"
	"github.com/Jozeph555/coincalc/internal/orchestration"
	"github.com/Jozeph555/coincalc/internal/server"
	"github.com/Jozeph555/coincalc/internal/tui"
	"github.com/Jozeph555/coincalc/internal/ui"
)

// Application represents the coincalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   coinchange.Factory
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom solver Factory for the application.
func WithFactory(f coinchange.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom Logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = coinchange.NewDefaultFactory()
	}

	programName := "coincalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
// It returns a process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	if a.Logger == nil {
		level := zerolog.WarnLevel
		if a.Config.Verbose {
			level = zerolog.DebugLevel
		}
		a.Logger = logging.New(a.ErrWriter, level)
	}

	// Lifecycle: time budget plus signal cancellation.
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	solvers := orchestration.GetSolversToRun(a.Config.Algo, a.Factory)
	if len(solvers) == 0 {
		a.Logger.Error("no solver matches selection", logging.String("algo", a.Config.Algo))
		return apperrors.ExitErrorConfig
	}

	var recorder orchestration.MetricsRecorder = orchestration.NopMetricsRecorder{}
	if a.Config.MetricsAddr != "" {
		m := server.NewMetrics()
		go server.Serve(ctx, a.Config.MetricsAddr, m, a.Logger)
		recorder = m
	}

	if a.Config.TUI {
		return tui.Run(ctx, solvers)
	}

	return a.runCompare(ctx, solvers, recorder, out)
}

// runCompare is the CLI demonstration: run the selected solvers against
// every configured amount and report breakdowns, timings, and the
// consistency verdict. A per-amount failure does not suppress the output
// of amounts already processed.
func (a *Application) runCompare(ctx context.Context, solvers []coinchange.Solver, recorder orchestration.MetricsRecorder, out io.Writer) int {
	presenter := cli.CLIResultPresenter{}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, solvers, out)
	}

	var reporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	exitCode := apperrors.ExitSuccess

	for _, amount := range a.Config.Amounts {
		if err := ctx.Err(); err != nil {
			return presenter.HandleError(err, out)
		}

		before := collector.Snapshot()
		results := orchestration.ExecuteComparison(ctx, solvers, amount, reporter, recorder, progressOut)

		if a.Config.Quiet {
			code := a.presentQuiet(results, amount, presenter, out)
			if code != apperrors.ExitSuccess {
				exitCode = code
			}
			continue
		}

		code := orchestration.AnalyzeComparison(results, amount, presenter, presenter, out)
		if a.Config.Verbose {
			cli.DisplayMemorySnapshot(out, collector.Snapshot())
			a.Logger.Debug("amount processed",
				logging.Int("amount", amount),
				logging.Uint64("heap_delta", metrics.HeapDelta(before, collector.Snapshot())))
		}
		if code != apperrors.ExitSuccess {
			exitCode = code
			// Cancellation and timeout end the whole run; a per-amount
			// validation failure moves on to the next amount.
			if code == apperrors.ExitErrorTimeout || code == apperrors.ExitErrorCanceled {
				return exitCode
			}
		}
	}

	return exitCode
}

// presentQuiet emits the single-line form for scripting: the first valid
// breakdown per amount.
func (a *Application) presentQuiet(results []orchestration.SolveResult, amount int, errHandler orchestration.ErrorHandler, out io.Writer) int {
	for _, res := range results {
		if res.Err == nil {
			cli.DisplayQuietResult(out, amount, res.Breakdown)
			return apperrors.ExitSuccess
		}
	}
	if len(results) > 0 {
		return errHandler.HandleError(results[0].Err, out)
	}
	return apperrors.ExitErrorGeneric
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
