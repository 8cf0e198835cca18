package join

import (
	"github.com/ib-77/vrop/pkg/vrop"
)

// Combine merges two independently computed results. On all-success the
// caller-supplied combine builds the output value; otherwise the failure
// carries ra's messages followed by rb's.
func Combine[A, B, C, E any](ra vrop.Result[A, E], rb vrop.Result[B, E],
	combine func(a A, b B) C) vrop.Result[C, E] {

	if ra.IsSuccess() && rb.IsSuccess() {
		return vrop.Success[C, E](combine(ra.Value(), rb.Value()))
	}

	msgs := vrop.MergeMessages(ra.Messages(), rb.Messages())
	return vrop.FailWith[C, E](msgs...)
}

// Combine3 is the direct 3-ary form of Combine; message order is argument
// order, the same sequence any nesting of pairwise Combine calls yields.
func Combine3[A, B, C, D, E any](ra vrop.Result[A, E], rb vrop.Result[B, E],
	rc vrop.Result[C, E], combine func(a A, b B, c C) D) vrop.Result[D, E] {

	if ra.IsSuccess() && rb.IsSuccess() && rc.IsSuccess() {
		return vrop.Success[D, E](combine(ra.Value(), rb.Value(), rc.Value()))
	}

	msgs := vrop.MergeMessages(ra.Messages(), rb.Messages(), rc.Messages())
	return vrop.FailWith[D, E](msgs...)
}

func Combine4[A, B, C, D, R, E any](ra vrop.Result[A, E], rb vrop.Result[B, E],
	rc vrop.Result[C, E], rd vrop.Result[D, E],
	combine func(a A, b B, c C, d D) R) vrop.Result[R, E] {

	if ra.IsSuccess() && rb.IsSuccess() && rc.IsSuccess() && rd.IsSuccess() {
		return vrop.Success[R, E](combine(ra.Value(), rb.Value(), rc.Value(), rd.Value()))
	}

	msgs := vrop.MergeMessages(ra.Messages(), rb.Messages(), rc.Messages(), rd.Messages())
	return vrop.FailWith[R, E](msgs...)
}

// Collect reduces an ordered sequence of results in a single pass: success
// values in input order when every element succeeded, otherwise every
// failure's messages concatenated in input order. An empty sequence is
// vacuously successful.
func Collect[T, E any](rs []vrop.Result[T, E]) vrop.Result[[]T, E] {
	values := make([]T, 0, len(rs))
	var msgs []E

	for _, r := range rs {
		if r.IsFailure() {
			msgs = append(msgs, r.Messages()...)
			continue
		}
		values = append(values, r.Value())
	}

	if len(msgs) > 0 {
		return vrop.FailWith[[]T, E](msgs...)
	}
	return vrop.Success[[]T, E](values)
}

// Merge is the variadic form of Collect.
func Merge[T, E any](rs ...vrop.Result[T, E]) vrop.Result[[]T, E] {
	return Collect(rs)
}

// Traverse runs one check per input and collects the outcomes.
func Traverse[In, Out, E any](ins []In,
	check func(in In) vrop.Result[Out, E]) vrop.Result[[]Out, E] {

	rs := make([]vrop.Result[Out, E], 0, len(ins))
	for _, in := range ins {
		rs = append(rs, check(in))
	}
	return Collect(rs)
}

// Checks evaluates every check against the same input and collects the
// outcomes. Each check is independent; all of them run even when an earlier
// one failed.
func Checks[In, Out, E any](input In,
	checks ...func(in In) vrop.Result[Out, E]) vrop.Result[[]Out, E] {

	rs := make([]vrop.Result[Out, E], 0, len(checks))
	for _, check := range checks {
		rs = append(rs, check(input))
	}
	return Collect(rs)
}
