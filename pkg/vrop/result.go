package vrop

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Result holds either one success value of type T or a non-empty ordered
// sequence of failure messages of type E. It is always exactly one of the
// two; query IsSuccess/IsFailure before reading Value or Messages.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	messages  []E
	isSuccess bool
}

func Success[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailWith constructs a failure from one or more messages, preserving their
// order and duplicates. Calling it with no messages is a contract violation
// and panics.
func FailWith[T, E any](msgs ...E) Result[T, E] {
	if len(msgs) == 0 {
		panic("vrop: FailWith requires at least one message")
	}
	return Result[T, E]{
		messages:  slices.Clone(msgs),
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a failure across value types, keeping messages and
// trace metadata. Panics when given a success.
func FailureFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	if from.isSuccess {
		panic("vrop: FailureFrom requires a failure")
	}
	return Result[Out, E]{
		messages:  from.messages,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success value, or the zero value on a failure.
func (r Result[T, E]) Value() T {
	return r.value
}

// Messages returns a copy of the failure messages, or nil on a success.
func (r Result[T, E]) Messages() []E {
	if r.isSuccess {
		return nil
	}
	return slices.Clone(r.messages)
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// CreatedAt is the construction time (UTC). Trace metadata only.
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Id is a per-construction trace id. It carries no semantic weight and is
// ignored by Equal.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Match is the total eliminator: exactly one branch is invoked and its
// return value becomes the result.
func Match[T, E, R any](r Result[T, E], onSuccess func(v T) R, onFailure func(msgs []E) R) R {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(slices.Clone(r.messages))
}

// Map transforms the success value; a failure passes through with its
// messages untouched.
func Map[In, Out, E any](r Result[In, E], f func(v In) Out) Result[Out, E] {
	if r.isSuccess {
		return Success[Out, E](f(r.value))
	}
	return FailureFrom[In, Out](r)
}

// Bind sequences into a result-producing function, short-circuiting on the
// first failure: f never runs when r is a failure.
func Bind[In, Out, E any](r Result[In, E], f func(v In) Result[Out, E]) Result[Out, E] {
	if r.isSuccess {
		return f(r.value)
	}
	return FailureFrom[In, Out](r)
}

// Equal reports whether two results have the same variant and equal
// contents. Trace metadata does not participate.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return a.value == b.value
	}
	return slices.Equal(a.messages, b.messages)
}
