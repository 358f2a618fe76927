package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Jozeph555/coincalc/internal/coinchange"
	apperrors "github.com/Jozeph555/coincalc/internal/errors"
	"github.com/Jozeph555/coincalc/internal/orchestration"
	"github.com/Jozeph555/coincalc/internal/ui"
)

// withoutColors disables ANSI output for the duration of a test so string
// assertions stay readable.
func withoutColors(t *testing.T) {
	t.Helper()
	prev := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(prev) })
}

func TestPresentComparison(t *testing.T) {
	withoutColors(t)
	var out bytes.Buffer

	results := []orchestration.SolveResult{
		{
			Name:      "Greedy",
			Breakdown: coinchange.Breakdown{50: 2, 10: 1, 2: 1, 1: 1},
			Duration:  2 * time.Microsecond,
		},
		{
			Name:      "Dynamic Programming",
			Breakdown: coinchange.Breakdown{50: 2, 10: 1, 2: 1, 1: 1},
			Duration:  713 * time.Microsecond,
		},
	}

	CLIResultPresenter{}.PresentComparison(113, results, &out)

	got := out.String()
	for _, want := range []string{
		"Amount: 113",
		"Greedy",
		"Dynamic Programming",
		"{50:2, 10:1, 2:1, 1:1}",
		"0.000002 s",
		"0.000713 s",
		"Solver",
		"Breakdown",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPresentComparison_FailedSolver(t *testing.T) {
	withoutColors(t)
	var out bytes.Buffer

	results := []orchestration.SolveResult{
		{Name: "Greedy", Err: errors.New("validation error for \"amount\": must be a non-negative integer")},
	}

	CLIResultPresenter{}.PresentComparison(-1, results, &out)

	if !strings.Contains(out.String(), "non-negative") {
		t.Errorf("failure row should carry the error message:\n%s", out.String())
	}
}

func TestHandleError(t *testing.T) {
	withoutColors(t)

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"timeout", context.DeadlineExceeded, apperrors.ExitErrorTimeout, "timed out"},
		{"canceled", context.Canceled, apperrors.ExitErrorCanceled, "canceled"},
		{
			"validation",
			apperrors.ValidationError{Field: "amount", Message: "must be a non-negative integer"},
			apperrors.ExitErrorGeneric,
			"amount",
		},
		{"generic", errors.New("boom"), apperrors.ExitErrorGeneric, "boom"},
		{"nil", nil, apperrors.ExitErrorGeneric, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			code := CLIResultPresenter{}.HandleError(tc.err, &out)
			if code != tc.wantCode {
				t.Errorf("HandleError() = %d, want %d", code, tc.wantCode)
			}
			if tc.wantText != "" && !strings.Contains(out.String(), tc.wantText) {
				t.Errorf("output missing %q:\n%s", tc.wantText, out.String())
			}
		})
	}
}
