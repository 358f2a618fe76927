package coinchange

import "context"

// GreedySolver produces a change breakdown by repeatedly taking the
// largest denomination that fits the remaining amount.
//
// For the fixed canonical denomination set this is optimal: the result
// always has the minimum possible coin count and matches OptimalSolver
// exactly. Runs in O(|denominations|) time.
type GreedySolver struct{}

// Name returns the strategy identifier.
func (GreedySolver) Name() string { return "Greedy" }

// Solve implements the Solver interface. The computation is effectively
// instantaneous, so the context is only checked once up front.
func (GreedySolver) Solve(ctx context.Context, amount int, report ProgressFunc) (Breakdown, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result, err := SolveGreedy(amount)
	if err != nil {
		return nil, err
	}
	if report != nil {
		report(1)
	}
	return result, nil
}

// SolveGreedy computes a change breakdown for amount using greedy
// selection: iterate denominations in descending order, take as many
// coins of each as fit, and continue with the remainder.
//
// Returns a ValidationError when amount is negative. An amount of zero
// yields an empty breakdown.
func SolveGreedy(amount int) (Breakdown, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	result := make(Breakdown)
	remaining := amount

	for _, denom := range denominations {
		if remaining >= denom {
			if count := remaining / denom; count > 0 {
				result[denom] = count
			}
			remaining %= denom
		}
		// Denomination 1 guarantees this is eventually reached.
		if remaining == 0 {
			break
		}
	}

	return result, nil
}
