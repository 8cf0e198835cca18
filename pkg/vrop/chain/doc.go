// Package chain provides a fluent wrapper around Result[T, E]
// for building fail-fast validation chains using solo primitives.
//
// The first failing step stops the chain: later steps never run, and the
// chain's result is that step's failure exactly. Evaluation is strictly
// left-to-right because later steps may assume the refined value produced
// by earlier ones; chains are never evaluated in parallel.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - Validate: apply a predicate check to the current value
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
