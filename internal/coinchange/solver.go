//go:generate mockgen -source=solver.go -destination=mocks/mock_solver.go -package=mocks

package coinchange

import (
	"context"
	"sort"

	apperrors "github.com/Jozeph555/coincalc/internal/errors"
)

// ProgressFunc receives solve progress as a fraction in [0, 1]. A nil
// ProgressFunc is valid and disables reporting.
type ProgressFunc func(fraction float64)

// Solver is a named change-making strategy. Implementations must be
// stateless: every call allocates its own transient working set, so a
// single Solver value is safe for concurrent use.
type Solver interface {
	// Name returns the human-readable identifier of the strategy.
	Name() string

	// Solve computes a change breakdown for amount. The context is
	// honored at a coarse granularity; report, when non-nil, receives
	// monotonically increasing progress fractions.
	Solve(ctx context.Context, amount int, report ProgressFunc) (Breakdown, error)
}

// Factory provides access to the registered solver implementations.
type Factory interface {
	// Get returns the solver registered under key, or a ConfigError if
	// no such solver exists.
	Get(key string) (Solver, error)
	// List returns the registered keys in sorted order.
	List() []string
	// GetAll returns all registered solvers keyed by name.
	GetAll() map[string]Solver
}

type defaultFactory struct {
	solvers map[string]Solver
}

// NewDefaultFactory creates a Factory containing the two built-in
// solvers under the keys "greedy" and "optimal".
func NewDefaultFactory() Factory {
	return &defaultFactory{
		solvers: map[string]Solver{
			"greedy":  GreedySolver{},
			"optimal": OptimalSolver{},
		},
	}
}

func (f *defaultFactory) Get(key string) (Solver, error) {
	solver, ok := f.solvers[key]
	if !ok {
		return nil, apperrors.NewConfigError("unknown solver %q (available: %v)", key, f.List())
	}
	return solver, nil
}

func (f *defaultFactory) List() []string {
	keys := make([]string, 0, len(f.solvers))
	for k := range f.solvers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (f *defaultFactory) GetAll() map[string]Solver {
	out := make(map[string]Solver, len(f.solvers))
	for k, v := range f.solvers {
		out[k] = v
	}
	return out
}

// validateAmount rejects negative amounts. A negative amount is a
// programmer or input error, never a transient condition, so it maps to
// a ValidationError that propagates unrecovered to the caller.
func validateAmount(amount int) error {
	if amount < 0 {
		return apperrors.ValidationError{
			Field:   "amount",
			Message: "must be a non-negative integer",
		}
	}
	return nil
}
