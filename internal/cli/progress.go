package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/Jozeph555/coincalc/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 100 * time.Millisecond

// Spinner is an interface that abstracts the behavior of a terminal
// spinner. It decouples DisplayProgress from a specific spinner
// implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

// newSpinner is a variable so tests can substitute a fake.
var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner showing the average progress of the running solvers.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress consumes progress updates until the channel closes,
// rendering a spinner with the aggregate completion percentage. For the
// default sample amounts the solvers finish in microseconds and the
// spinner barely flickers; it earns its keep on very large --amounts
// values.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numSolvers int, out io.Writer) {
	defer wg.Done()

	fractions := make([]float64, numSolvers)
	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		if update.SolverIndex >= 0 && update.SolverIndex < numSolvers {
			fractions[update.SolverIndex] = update.Fraction
		}
		total := 0.0
		for _, f := range fractions {
			total += f
		}
		avg := total / float64(numSolvers)
		sp.UpdateSuffix(fmt.Sprintf(" solving... %3.0f%%", avg*100))
	}
}
