// Package mass runs independent checks across a fixed number of worker
// lines. Because checks are pure and observe nothing of each other, they
// can be evaluated in any order; the merged outcome is reindexed so message
// order always follows declaration order, never completion order.
//
// Only accumulating evaluation lives here. Fail-fast chains depend on each
// step's output and are strictly sequential; see package chain and solo.
//
// Key constructs:
// - Collect: evaluate checks against one input with configurable parallelism
// - Traverse: evaluate one check per input with configurable parallelism
package mass
