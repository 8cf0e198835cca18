package solo

import (
	"github.com/ib-77/vrop/pkg/vrop"
)

func Succeed[T, E any](input T) vrop.Result[T, E] {
	return vrop.Success[T, E](input)
}

func FailWith[T, E any](msgs ...E) vrop.Result[T, E] {
	return vrop.FailWith[T, E](msgs...)
}

func Validate[T, E any](input T,
	validate func(in T) (valid bool, msg E)) vrop.Result[T, E] {
	return AndValidate(Succeed[T, E](input), validate)
}

func AndValidate[T, E any](input vrop.Result[T, E],
	validate func(in T) (valid bool, msg E)) vrop.Result[T, E] {

	if input.IsSuccess() {

		if isValid, msg := validate(input.Value()); isValid {
			return vrop.Success[T, E](input.Value())
		} else {
			return vrop.FailWith[T, E](msg)
		}
	}
	return input
}

func Bind[In, Out, E any](input vrop.Result[In, E],
	onSuccess func(v In) vrop.Result[Out, E]) vrop.Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	} else {
		return vrop.FailureFrom[In, Out](input)
	}
}

func Map[In, Out, E any](input vrop.Result[In, E],
	onSuccess func(v In) Out) vrop.Result[Out, E] {

	if input.IsSuccess() {
		return vrop.Success[Out, E](onSuccess(input.Value()))
	} else {
		return vrop.FailureFrom[In, Out](input)
	}
}

func Tee[T, E any](input vrop.Result[T, E],
	onSuccess func(r vrop.Result[T, E])) vrop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func TeeIf[T, E any](input vrop.Result[T, E],
	condition func(r vrop.Result[T, E]) bool,
	onSuccessAndCondition func(r vrop.Result[T, E])) vrop.Result[T, E] {

	if input.IsSuccess() {
		if condition(input) {
			onSuccessAndCondition(input)
		}
	}

	return input
}

func DoubleTee[T, E any](input vrop.Result[T, E],
	onSuccess func(v T),
	onFailure func(msgs []E)) vrop.Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Messages())
	}

	return input
}

func Finally[In, Out, E any](input vrop.Result[In, E],
	onSuccess func(v In) Out,
	onFailure func(msgs []E) Out) Out {

	return vrop.Match(input, onSuccess, onFailure)
}
