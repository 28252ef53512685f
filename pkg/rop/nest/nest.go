package nest

import (
	"context"
	"errors"

	"github.com/ib-77/ropwrap/pkg/rop"
	"github.com/ib-77/ropwrap/pkg/rop/wrap"
)

type SideEffects[T any] struct {
	OnValue   func(ctx context.Context, r T)
	OnInvalid func(ctx context.Context, err error)
	OnError   func(ctx context.Context, err error)
	OnCancel  func(ctx context.Context, err error)
}

type Handlers[In, Out any] struct {
	OnValue   func(ctx context.Context, r In) Out
	OnInvalid func(ctx context.Context, err error) Out
	OnError   func(ctx context.Context, err error) Out
	OnCancel  func(ctx context.Context, err error) Out
}

func Switch[In, Out any](ctx context.Context,
	input rop.Nested[In],
	onSuccess func(ctx context.Context, r In) rop.Nested[Out]) rop.Nested[Out] {

	v, ret, ok := wrap.Ok[In, Out](input)
	if !ok {
		return ret
	}
	return onSuccess(ctx, v)
}

func Map[In, Out any](ctx context.Context,
	input rop.Nested[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Nested[Out] {

	v, ret, ok := wrap.Ok[In, Out](input)
	if !ok {
		return ret
	}
	return rop.Valid(onSuccess(ctx, v))
}

func Validate[T any](ctx context.Context, input rop.Nested[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Nested[T] {

	v, ret, ok := wrap.Ok[T, T](input)
	if !ok {
		return ret
	}

	if isValid, errMsg := validate(ctx, v); !isValid {
		return rop.Invalid[T](errors.New(errMsg))
	}
	return input
}

// ValidateAll runs every check against the inner value. Failed checks are
// joined into one inner failure; with breakOnError the first failed check
// ends the run.
func ValidateAll[T any](ctx context.Context, input rop.Nested[T], breakOnError bool,
	checks ...func(ctx context.Context, in T) (valid bool, errMsg string)) rop.Nested[T] {

	v, ret, ok := wrap.Ok[T, T](input)
	if !ok {
		return ret
	}

	steps := make([]func(ctx context.Context, in rop.Nested[T]) rop.Nested[T], 0, len(checks))
	for _, check := range checks {
		steps = append(steps, func(ctx context.Context, _ rop.Nested[T]) rop.Nested[T] {
			return Validate(ctx, rop.Valid(v), check)
		})
	}

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current rop.Nested[T]) rop.Nested[T] {

			if rop.LevelOf(current) == rop.LevelInner {
				e := rop.GetErrors(err)
				e = append(e, failureErr[T](current.Result()))
				err = errors.Join(e...)
			}

			if rop.IsNil(err) {
				return input
			}

			return rop.Invalid[T](err)
		},
		steps...,
	)
}

// Join feeds input through steps, each one getting what concat made of the
// previous step. Outer failures always stop the run, inner failures only
// with breakOnError. A done ctx stops it with an outer cancel.
func Join[T any](ctx context.Context,
	input rop.Nested[T],
	breakOnError bool,
	concat func(ctx context.Context, current rop.Nested[T]) rop.Nested[T],
	steps ...func(ctx context.Context, in rop.Nested[T]) rop.Nested[T]) rop.Nested[T] {

	if len(steps) == 0 || concat == nil || rop.LevelOf(input) == rop.LevelOuter {
		return input
	}

	finalResult := input
	for i, step := range steps {
		if !rop.IsNil(ctx.Err()) {
			return rop.Interrupted[T](ctx.Err())
		}

		if i > 0 {
			level := rop.LevelOf(finalResult)
			if level == rop.LevelOuter || (level == rop.LevelInner && breakOnError) {
				return finalResult
			}
		}

		finalResult = concat(ctx, step(ctx, finalResult))
	}
	return finalResult
}

// FailOnError turns an error from maybeErr into an inner failure.
func FailOnError[T any](ctx context.Context, input rop.Nested[T],
	maybeErr func(ctx context.Context, in T) error) rop.Nested[T] {

	v, ret, ok := wrap.Ok[T, T](input)
	if !ok {
		return ret
	}

	if err := maybeErr(ctx, v); err != nil {
		return rop.Invalid[T](err)
	}
	return input
}

// DoubleTee calls the side effect matching where input stopped and returns
// input unchanged. Nil side effects are skipped.
func DoubleTee[T any](ctx context.Context, input rop.Nested[T],
	effects SideEffects[T]) rop.Nested[T] {

	var effect func(ctx context.Context, err error)
	var err error

	switch rop.LevelOf(input) {
	case rop.LevelOk:
		if effects.OnValue != nil {
			effects.OnValue(ctx, input.Result().Result())
		}
		return input
	case rop.LevelInner:
		inner := input.Result()
		effect, err = effects.OnInvalid, failureErr[T](inner)
		if inner.IsCancel() {
			effect = effects.OnCancel
		}
	default:
		effect, err = effects.OnError, failureErr[rop.Result[T]](input)
		if input.IsCancel() {
			effect = effects.OnCancel
		}
	}

	if effect != nil {
		effect(ctx, err)
	}
	return input
}

func Try[In, Out any](ctx context.Context, input rop.Nested[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Nested[Out] {

	v, ret, ok := wrap.Ok[In, Out](input)
	if !ok {
		return ret
	}

	out, err := onTryExecute(ctx, v)
	return wrap.Lift(rop.Success(out), err)
}

// Flatten drops the level information: the first failure found wins.
func Flatten[T any](input rop.Nested[T]) rop.Result[T] {
	if input.IsFailure() {
		return rop.FailFrom[rop.Result[T], T](input)
	}

	inner := input.Result()
	if inner.IsFailure() {
		return rop.FailFrom[T, T](inner)
	}
	return inner
}

// Finally reduces input with the handler matching where it stopped.
// Inner cancellations go to OnCancel.
func Finally[In, Out any](ctx context.Context, input rop.Nested[In],
	handlers Handlers[In, Out]) Out {

	switch rop.LevelOf(input) {
	case rop.LevelOk:
		return handlers.OnValue(ctx, input.Result().Result())
	case rop.LevelInner:
		inner := input.Result()
		if inner.IsCancel() {
			return handlers.OnCancel(ctx, inner.Err())
		}
		return handlers.OnInvalid(ctx, failureErr[In](inner))
	default:
		if input.IsCancel() {
			return handlers.OnCancel(ctx, input.Err())
		}
		return handlers.OnError(ctx, failureErr[rop.Result[In]](input))
	}
}

// failureErr reports why r did not succeed; a result that failed without a
// cause and without being cancelled is empty.
func failureErr[T any](r rop.WithCancel[T]) error {
	if r.Err() == nil && !r.IsCancel() {
		return rop.ErrEmptyResult
	}
	return r.Err()
}
