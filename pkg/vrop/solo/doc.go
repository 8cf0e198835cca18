// Package solo contains single-value, synchronous primitives that operate
// on Result[T, E]. These functions form the fail-fast building blocks for
// validation pipelines.
//
// Highlights:
// - Succeed/FailWith: construct Result[T, E]
// - Validate/AndValidate: apply a predicate check producing failure on invalid input
// - Bind: move from Result[In] to Result[Out], skipping the step on failure
// - Map: transform the successful value (failure messages pass through untouched)
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
