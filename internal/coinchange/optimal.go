package coinchange

import "context"

// cancelCheckStride is the number of DP sub-amounts processed between
// context and progress checks. A power of two keeps the modulo test a
// cheap mask; at this stride the check overhead is not measurable even
// for amounts in the millions.
const cancelCheckStride = 1 << 14

// OptimalSolver produces a minimal-coin-count change breakdown via
// bottom-up dynamic programming over all sub-amounts.
//
// Complexity is O(amount × |denominations|) time and O(amount) space:
// two int slices of length amount+1 are allocated per call and
// discarded once the breakdown is reconstructed. This is the
// performance-relevant path of the package — the CLI demonstration
// drives amounts up to 150,000.
type OptimalSolver struct{}

// Name returns the strategy identifier.
func (OptimalSolver) Name() string { return "Dynamic Programming" }

// Solve implements the Solver interface. The context is checked every
// cancelCheckStride sub-amounts during the table fill, and report (when
// non-nil) receives the fill fraction at the same stride.
func (OptimalSolver) Solve(ctx context.Context, amount int, report ProgressFunc) (Breakdown, error) {
	return solveOptimal(ctx, amount, report)
}

// SolveOptimal computes a change breakdown with the minimum possible
// total coin count for amount.
//
// Returns a ValidationError when amount is negative. An amount of zero
// yields an empty breakdown.
func SolveOptimal(amount int) (Breakdown, error) {
	return solveOptimal(context.Background(), amount, nil)
}

func solveOptimal(ctx context.Context, amount int, report ProgressFunc) (Breakdown, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	// cost[i] is the minimal coin count reaching sub-amount i. The
	// sentinel amount+1 is an unreachable upper bound (an integer
	// stand-in for infinity: no decomposition uses more than `amount`
	// coins when denomination 1 exists). lastCoin[i] records the
	// denomination of the final coin in an optimal decomposition of i,
	// for reconstruction.
	inf := amount + 1
	cost := make([]int, amount+1)
	lastCoin := make([]int, amount+1)
	for i := 1; i <= amount; i++ {
		cost[i] = inf
	}

	for i := 1; i <= amount; i++ {
		if i&(cancelCheckStride-1) == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if report != nil {
				report(float64(i) / float64(amount))
			}
		}
		for _, denom := range denominations {
			if denom > i {
				continue
			}
			// Strict < keeps the first denomination (descending order)
			// that achieves the minimum, making the tie-break
			// deterministic.
			if cost[i-denom]+1 < cost[i] {
				cost[i] = cost[i-denom] + 1
				lastCoin[i] = denom
			}
		}
	}

	// Walk lastCoin back from amount to zero. Every positive sub-amount
	// is reachable (denomination 1), so lastCoin[current] is always a
	// positive denomination here and the walk terminates.
	result := make(Breakdown)
	for current := amount; current > 0; {
		denom := lastCoin[current]
		result[denom]++
		current -= denom
	}

	if report != nil {
		report(1)
	}
	return result, nil
}
