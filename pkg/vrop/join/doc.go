// Package join implements accumulating (applicative) composition over
// independently computed results. Unlike the fail-fast primitives in solo,
// nothing here short-circuits: every input is inspected and every failure's
// messages are reported, concatenated in the order the inputs were supplied.
//
// Key operations:
// - Combine/Combine3/Combine4: merge fixed arities with a caller combiner
// - Collect/Merge: reduce an ordered sequence of results
// - Traverse: map a check over inputs and collect the outcomes
// - Checks: run independent checks against one input and collect
//
// Accumulation is associative in effect: nesting pairwise Combine calls in
// any grouping yields the same message sequence as the direct n-ary forms.
package join
