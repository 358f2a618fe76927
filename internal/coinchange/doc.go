// Package coinchange implements change-making over a fixed coin
// denomination set.
//
// Two independent solvers are provided: a greedy selector that always
// takes the largest denomination that fits, and a dynamic-programming
// solver that guarantees a minimal total coin count. Because the fixed
// denomination set is canonical, both produce identical breakdowns; the
// two implementations exist so their runtime characteristics can be
// compared.
//
// Both solvers are pure functions of their input: no shared state, no
// I/O, safe for concurrent use from independent call sites.
package coinchange
