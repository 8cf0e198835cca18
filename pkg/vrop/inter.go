package vrop

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithMessages defines an interface for types that hold either a value or
// an ordered sequence of failure messages
type WithMessages[T, E any] interface {
	ValueProvider[T]
	// Messages returns the failure messages if validation failed
	Messages() []E
	// IsSuccess returns true if the validation passed
	IsSuccess() bool
	// IsFailure returns true if at least one message was recorded
	IsFailure() bool
}
