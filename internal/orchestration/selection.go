package orchestration

import "github.com/Jozeph555/coincalc/internal/coinchange"

// GetSolversToRun determines which solvers should be executed based on
// the configured selection. Returns solvers in alphabetically sorted key
// order for consistent, reproducible behavior.
//
// Parameters:
//   - algo: The selection: a factory key, or "all" for every solver.
//   - factory: The solver factory to retrieve implementations from.
//
// Returns:
//   - []coinchange.Solver: The solvers to execute; nil for an unknown key.
func GetSolversToRun(algo string, factory coinchange.Factory) []coinchange.Solver {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		solvers := make([]coinchange.Solver, 0, len(keys))
		for _, k := range keys {
			if solver, err := factory.Get(k); err == nil {
				solvers = append(solvers, solver)
			}
		}
		return solvers
	}
	if solver, err := factory.Get(algo); err == nil {
		return []coinchange.Solver{solver}
	}
	return nil
}
