package coinchange

import (
	"fmt"
	"sort"
	"strings"
)

// Breakdown maps a denomination to the number of coins of that
// denomination used to reach an amount. Denominations with a zero count
// are never present; an amount of zero is the empty map.
type Breakdown map[int]int

// Value returns the total monetary value of the breakdown, i.e. the sum
// of denomination times count over all entries.
func (b Breakdown) Value() int {
	total := 0
	for denom, count := range b {
		total += denom * count
	}
	return total
}

// Coins returns the total number of coins in the breakdown.
func (b Breakdown) Coins() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// Equal reports whether b and other contain exactly the same
// denomination counts.
func (b Breakdown) Equal(other Breakdown) bool {
	if len(b) != len(other) {
		return false
	}
	for denom, count := range b {
		if other[denom] != count {
			return false
		}
	}
	return true
}

// String renders the breakdown with denominations in descending order,
// e.g. "{50:2, 10:1, 2:1, 1:1}". Deterministic ordering keeps the
// output stable across runs and usable in tests.
func (b Breakdown) String() string {
	denoms := make([]int, 0, len(b))
	for denom := range b {
		denoms = append(denoms, denom)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(denoms)))

	var sb strings.Builder
	sb.WriteByte('{')
	for i, denom := range denoms {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d:%d", denom, b[denom])
	}
	sb.WriteByte('}')
	return sb.String()
}
