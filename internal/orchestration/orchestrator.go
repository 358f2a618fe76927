package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/Jozeph555/coincalc/internal/coinchange"
	apperrors "github.com/Jozeph555/coincalc/internal/errors"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the
// progress channel. A larger buffer reduces the likelihood of blocking
// solver goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// tracer emits one span per solver run. Without an SDK installed this is
// a noop; embedders wiring an exporter get timing spans for free.
var tracer = otel.Tracer("github.com/Jozeph555/coincalc/internal/orchestration")

// ExecuteComparison orchestrates the concurrent execution of one or more
// change solvers against the same amount.
//
// It manages the lifecycle of the solver goroutines, collects their
// results, and coordinates the display of progress updates.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - solvers: The solvers to execute.
//   - amount: The change amount to decompose.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - recorder: The metrics recorder (use NopMetricsRecorder to disable).
//   - out: The io.Writer for progress display.
//
// Returns:
//   - []SolveResult: One result per solver, in the solvers' order.
func ExecuteComparison(ctx context.Context, solvers []coinchange.Solver, amount int, reporter ProgressReporter, recorder MetricsRecorder, out io.Writer) []SolveResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]SolveResult, len(solvers))
	progressChan := make(chan ProgressUpdate, len(solvers)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(solvers), out)

	for i, s := range solvers {
		idx, solver := i, s
		g.Go(func() error {
			solveCtx, span := tracer.Start(ctx, "coinchange.solve",
				trace.WithAttributes(
					attribute.String("solver", solver.Name()),
					attribute.Int("amount", amount),
				))

			report := func(fraction float64) {
				// Progress is advisory; never block a solver on it.
				select {
				case progressChan <- ProgressUpdate{SolverIndex: idx, Fraction: fraction}:
				default:
				}
			}

			start := time.Now()
			breakdown, err := solver.Solve(solveCtx, amount, report)
			duration := time.Since(start)

			if err != nil {
				span.RecordError(err)
				err = apperrors.SolveError{Solver: solver.Name(), Cause: err}
			}
			span.End()
			recorder.ObserveSolve(solver.Name(), amount, duration, err)

			results[idx] = SolveResult{
				Name: solver.Name(), Breakdown: breakdown, Duration: duration, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparison processes the results from multiple solvers for one
// amount and generates the summary report.
//
// It sorts the results by execution time, validates consistency across
// successful solves (the breakdowns must be identical and must sum to the
// amount), and delegates rendering to the presenter. It determines global
// success or failure based on the individual outcomes.
//
// Returns an exit code indicating success (0) or the type of failure.
func AnalyzeComparison(results []SolveResult, amount int, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *SolveResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValid == nil {
				firstValid = &results[i]
			}
		}
	}

	presenter.PresentComparison(amount, results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No solver could decompose the amount.\n")
		return errHandler.HandleError(firstError, out)
	}

	if firstValid.Breakdown.Value() != amount {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Breakdown sums to %d, expected %d.\n",
			firstValid.Breakdown.Value(), amount)
		return apperrors.ExitErrorMismatch
	}

	for _, res := range results {
		if res.Err == nil && !res.Breakdown.Equal(firstValid.Breakdown) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the solvers' breakdowns.\n")
			return apperrors.ExitErrorMismatch
		}
	}

	if firstError != nil {
		// Partial results stay visible; the run still fails overall.
		return errHandler.HandleError(firstError, out)
	}

	fmt.Fprintf(out, "Status: all breakdowns consistent (%d coins)\n", firstValid.Breakdown.Coins())
	return apperrors.ExitSuccess
}
