// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Print* functions write configuration or header lines.
//
// Pure string formatting lives in the format package.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jozeph555/coincalc/internal/coinchange"
	"github.com/Jozeph555/coincalc/internal/config"
	"github.com/Jozeph555/coincalc/internal/metrics"
	"github.com/Jozeph555/coincalc/internal/ui"
)

// PrintExecutionConfig writes a short header describing the run: the
// denomination set, the selected solvers, and the amounts to process.
func PrintExecutionConfig(cfg config.AppConfig, solvers []coinchange.Solver, out io.Writer) {
	names := make([]string, len(solvers))
	for i, s := range solvers {
		names[i] = s.Name()
	}

	fmt.Fprintf(out, "%sComparing change-making solvers%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Denominations: %v\n", coinchange.Denominations())
	fmt.Fprintf(out, "Solvers:       %s\n", strings.Join(names, ", "))
	fmt.Fprintf(out, "Amounts:       %v\n", cfg.Amounts)
	if cfg.MetricsAddr != "" {
		fmt.Fprintf(out, "Metrics:       http://%s/metrics\n", cfg.MetricsAddr)
	}
}

// DisplayQuietResult writes a single machine-friendly line for one amount,
// suitable for scripting: the amount followed by the breakdown.
func DisplayQuietResult(out io.Writer, amount int, breakdown coinchange.Breakdown) {
	fmt.Fprintf(out, "%d %s\n", amount, breakdown)
}

// DisplayMemorySnapshot writes the verbose-mode runtime memory line.
func DisplayMemorySnapshot(out io.Writer, snap metrics.MemorySnapshot) {
	fmt.Fprintf(out, "%sMemory: heap %s, objects %d, gc cycles %d%s\n",
		ui.ColorSecondary(),
		formatBytes(snap.HeapAlloc), snap.HeapObjects, snap.NumGC,
		ui.ColorReset())
}

// formatBytes renders a byte count with a binary unit suffix.
func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
