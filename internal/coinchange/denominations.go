package coinchange

// denominations is the fixed coin set shared by all solvers, in
// descending order. Invariants: values are distinct positive integers,
// and 1 is present so that every non-negative amount is representable.
//
// This particular set is a canonical coin system: the greedy algorithm
// is provably optimal for it, which is what makes the greedy/DP
// comparison interesting rather than a correctness trade-off.
var denominations = [...]int{50, 25, 10, 5, 2, 1}

// Denominations returns a copy of the fixed denomination set in
// descending order. The returned slice is owned by the caller.
func Denominations() []int {
	out := make([]int, len(denominations))
	copy(out, denominations[:])
	return out
}
