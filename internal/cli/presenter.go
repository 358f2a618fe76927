package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	apperrors "github.com/Jozeph555/coincalc/internal/errors"
	"github.com/Jozeph555/coincalc/internal/format"
	"github.com/Jozeph555/coincalc/internal/orchestration"
	"github.com/Jozeph555/coincalc/internal/ui"
)

// CLIResultPresenter implements orchestration.ResultPresenter for CLI
// output. It provides formatted, colorized output for solver comparison
// results in the command-line interface.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparison displays the per-solver breakdowns and timings for a
// single amount in a formatted tabular layout, fastest solver first.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparison(amount int, results []orchestration.SolveResult, out io.Writer) {
	fmt.Fprintf(out, "\n%sAmount: %d%s\n", ui.ColorBold(), amount, ui.ColorReset())

	// Column widths account for the widest cell, headers included.
	maxNameLen := len("Solver")
	maxBreakdownLen := len("Breakdown")
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		if res.Err == nil && len(res.Breakdown.String()) > maxBreakdownLen {
			maxBreakdownLen = len(res.Breakdown.String())
		}
	}

	fmt.Fprintf(out, "%sSolver%s%s   %sBreakdown%s%s   %sCoins%s   %sDuration%s\n",
		ui.ColorUnderline(), ui.ColorReset(), pad(maxNameLen-len("Solver")),
		ui.ColorUnderline(), ui.ColorReset(), pad(maxBreakdownLen-len("Breakdown")),
		ui.ColorUnderline(), ui.ColorReset(),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(out, "%s%s%s%s   %s❌ %v%s\n",
				ui.ColorPrimary(), res.Name, ui.ColorReset(), pad(maxNameLen-len(res.Name)),
				ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		breakdown := res.Breakdown.String()
		fmt.Fprintf(out, "%s%s%s%s   %s%s   %s%d%s   %s%s%s\n",
			ui.ColorPrimary(), res.Name, ui.ColorReset(), pad(maxNameLen-len(res.Name)),
			breakdown, pad(maxBreakdownLen-len(breakdown)),
			ui.ColorCyan(), res.Breakdown.Coins(), ui.ColorReset(),
			ui.ColorYellow(), format.FormatSeconds(res.Duration), ui.ColorReset())
	}
}

// HandleError renders a descriptive message for a failed run and maps the
// error to a process exit code.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	switch {
	case err == nil:
		return apperrors.ExitErrorGeneric
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sError: run timed out%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sRun canceled%s\n", ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorCanceled
	default:
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return apperrors.ExitErrorGeneric
	}
}

// pad returns a string of n spaces (empty for n <= 0).
func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}
