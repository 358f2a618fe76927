// Package orchestration coordinates the concurrent execution of change
// solvers and the analysis of their results.
//
// It owns the comparison workflow (run every selected solver against the
// same amount, time each one, verify the breakdowns agree) while staying
// independent of presentation: progress display and result rendering are
// injected through small interfaces implemented by the cli and tui
// packages.
package orchestration
