package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/Jozeph555/coincalc/internal/coinchange"
)

// SolveResult encapsulates the outcome of a single solver run. It serves
// as the shared domain type between orchestration and presentation layers.
type SolveResult struct {
	// Name is the identifier of the solver used (e.g., "Greedy").
	Name string
	// Breakdown is the computed change breakdown. It is nil if an error
	// occurred.
	Breakdown coinchange.Breakdown
	// Duration is the time taken to complete the solve.
	Duration time.Duration
	// Err contains any error that occurred during the solve.
	Err error
}

// ProgressUpdate carries a single progress reading from a running solver.
type ProgressUpdate struct {
	// SolverIndex identifies which solver reported, 0-based in run order.
	SolverIndex int
	// Fraction is the solver's progress in [0, 1].
	Fraction float64
}

// ProgressReporter defines the interface for displaying solve progress.
// This interface decouples the orchestration layer from the presentation
// layer: implementations handle the visual representation (spinner, TUI)
// while orchestration focuses on coordinating the solvers.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until
	// progressChan is closed.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numSolvers int, out io.Writer)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything. Useful for
// quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range progressChan {
		// Drain silently.
	}
}

// ResultPresenter defines the interface for presenting comparison results.
// Different output formats (CLI table, TUI panel) implement it without
// modifying the orchestration logic.
type ResultPresenter interface {
	// PresentComparison displays the per-solver breakdowns and timings
	// for a single amount, fastest first.
	PresentComparison(amount int, results []SolveResult, out io.Writer)
}

// ErrorHandler maps a solve error to a process exit code, rendering a
// descriptive message along the way.
type ErrorHandler interface {
	HandleError(err error, out io.Writer) int
}

// MetricsRecorder receives one observation per completed solver run.
type MetricsRecorder interface {
	ObserveSolve(solver string, amount int, d time.Duration, err error)
}

// NopMetricsRecorder discards all observations.
type NopMetricsRecorder struct{}

// ObserveSolve discards the observation.
func (NopMetricsRecorder) ObserveSolve(string, int, time.Duration, error) {}
