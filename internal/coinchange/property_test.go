package coinchange

import (
	"context"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// allSolvers returns the two solver implementations.
func allSolvers() []Solver {
	return []Solver{GreedySolver{}, OptimalSolver{}}
}

// TestBreakdownSumsToAmount_PropertyBased verifies the defining property
// of a change breakdown: for every non-negative amount, the sum of
// denomination times count over all entries equals the amount exactly,
// and no entry carries a zero count.
func TestBreakdownSumsToAmount_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, solver := range allSolvers() {
		solver := solver
		properties.Property(solver.Name()+" breakdown sums to the amount", prop.ForAll(
			func(amount int) bool {
				breakdown, err := solver.Solve(context.Background(), amount, nil)
				if err != nil {
					t.Logf("Solve(%d) failed: %v", amount, err)
					return false
				}
				if breakdown.Value() != amount {
					return false
				}
				for _, count := range breakdown {
					if count <= 0 {
						return false
					}
				}
				return true
			},
			gen.IntRange(0, 25000),
		))
	}

	properties.TestingRun(t)
}

// TestOptimalNeverWorseThanGreedy_PropertyBased verifies the optimality
// guarantee: the DP solver's total coin count is never larger than the
// greedy solver's.
func TestOptimalNeverWorseThanGreedy_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("optimal coin count <= greedy coin count", prop.ForAll(
		func(amount int) bool {
			greedy, err := SolveGreedy(amount)
			if err != nil {
				return false
			}
			optimal, err := SolveOptimal(amount)
			if err != nil {
				return false
			}
			return optimal.Coins() <= greedy.Coins()
		},
		gen.IntRange(0, 25000),
	))

	properties.TestingRun(t)
}

// TestCanonicalSetAgreement_PropertyBased verifies that for the fixed
// canonical denomination set the two solvers produce identical
// breakdowns, not merely equal coin counts. Both prefer larger coins
// first (greedy by construction, DP by its strict-less-than tie-break),
// so the mappings coincide exactly.
func TestCanonicalSetAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("greedy and optimal breakdowns are identical", prop.ForAll(
		func(amount int) bool {
			greedy, err := SolveGreedy(amount)
			if err != nil {
				return false
			}
			optimal, err := SolveOptimal(amount)
			if err != nil {
				return false
			}
			return greedy.Equal(optimal)
		},
		gen.IntRange(0, 25000),
	))

	properties.TestingRun(t)
}

// TestNegativeAmountsRejected_PropertyBased verifies that every negative
// amount fails validation on both solvers.
func TestNegativeAmountsRejected_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	for _, solver := range allSolvers() {
		solver := solver
		properties.Property(solver.Name()+" rejects negative amounts", prop.ForAll(
			func(amount int) bool {
				_, err := solver.Solve(context.Background(), amount, nil)
				return err != nil
			},
			gen.IntRange(-25000, -1),
		))
	}

	properties.TestingRun(t)
}
