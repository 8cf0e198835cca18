package chain

import (
	"github.com/ib-77/vrop/pkg/vrop"
	"github.com/ib-77/vrop/pkg/vrop/solo"
)

// Chain wraps a vrop.Result to enable fluent fail-fast chaining
type Chain[T, E any] struct {
	result vrop.Result[T, E]
}

// Start creates a new chain from a vrop.Result
func Start[T, E any](result vrop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](value T) *Chain[T, E] {
	return &Chain[T, E]{
		result: vrop.Success[T, E](value),
	}
}

// Result returns the underlying vrop.Result
func (c *Chain[T, E]) Result() vrop.Result[T, E] {
	return c.result
}

// Then chains a function that returns vrop.Result[U, E]; it never runs when
// an earlier step already failed
func Then[T, U, E any](c *Chain[T, E], onSuccess func(v T) vrop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.Bind(c.result, onSuccess),
	}
}

// Validate chains a predicate check over the current value
func (c *Chain[T, E]) Validate(validate func(in T) (valid bool, msg E)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.AndValidate(c.result, validate),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(v T) U) *Chain[U, E] {
	return &Chain[U, E]{
		result: solo.Map(c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(v T)) *Chain[T, E] {
	return &Chain[T, E]{
		result: solo.Tee(c.result,
			func(result vrop.Result[T, E]) {
				if result.IsSuccess() {
					onSuccess(result.Value())
				}
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(v T) U, onFailure func(msgs []E) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
