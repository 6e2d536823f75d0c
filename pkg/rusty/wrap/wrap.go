package wrap

import (
	"context"

	"github.com/ib-77/rusty/pkg/rusty"
)

// UnwrapReturn wraps fn so that a *rusty.ResultError raised by an inner
// rusty.Unwrap call is recovered at this boundary and its Err container
// returned as the function's result instead of propagating further.
func UnwrapReturn[In, T, R any](
	fn func(ctx context.Context, in In) rusty.Result[T, R]) func(ctx context.Context, in In) rusty.Result[T, R] {

	return func(ctx context.Context, in In) (out rusty.Result[T, R]) {
		defer recoverResult(&out)
		return fn(ctx, in)
	}
}

// UnwrapReturn0 is UnwrapReturn for functions without an input value.
func UnwrapReturn0[T, R any](
	fn func(ctx context.Context) rusty.Result[T, R]) func(ctx context.Context) rusty.Result[T, R] {

	return func(ctx context.Context) (out rusty.Result[T, R]) {
		defer recoverResult(&out)
		return fn(ctx)
	}
}

// FailureReturn wraps fn so that a *rusty.EffectError raised by an inner
// rusty.Succeeded call is recovered and its Failure container returned.
func FailureReturn[In, R any](
	fn func(ctx context.Context, in In) rusty.Effect[R]) func(ctx context.Context, in In) rusty.Effect[R] {

	return func(ctx context.Context, in In) (out rusty.Effect[R]) {
		defer recoverEffect(&out)
		return fn(ctx, in)
	}
}

// FailureReturn0 is FailureReturn for functions without an input value.
func FailureReturn0[R any](
	fn func(ctx context.Context) rusty.Effect[R]) func(ctx context.Context) rusty.Effect[R] {

	return func(ctx context.Context) (out rusty.Effect[R]) {
		defer recoverEffect(&out)
		return fn(ctx)
	}
}

// Lift adapts an ordinary (value, error) function into a Result-returning
// one, wrapping a bare value as Ok and a non-nil error as Err.
func Lift[In, T any](
	fn func(ctx context.Context, in In) (T, error)) func(ctx context.Context, in In) rusty.Result[T, error] {

	return func(ctx context.Context, in In) rusty.Result[T, error] {
		v, err := fn(ctx, in)
		if err != nil {
			return rusty.Err[T, error](err)
		}
		return rusty.Ok[T, error](v)
	}
}

// LiftEffect adapts an error-returning procedure into an Effect-returning
// one.
func LiftEffect[In any](
	fn func(ctx context.Context, in In) error) func(ctx context.Context, in In) rusty.Effect[error] {

	return func(ctx context.Context, in In) rusty.Effect[error] {
		if err := fn(ctx, in); err != nil {
			return rusty.Failure(err)
		}
		return rusty.Success[error]()
	}
}

// recoverResult converts a recovered ResultError back into an Err
// container. An error raised over a differently parameterized Result is
// converted when its payload is assignable to R; the rebuilt container
// gets a fresh identity. Any other panic value propagates.
func recoverResult[T, R any](out *rusty.Result[T, R]) {
	rec := recover()
	if rec == nil {
		return
	}
	if re, ok := rec.(*rusty.ResultError[T, R]); ok {
		*out = re.Err()
		return
	}
	if ur, ok := rec.(rusty.UnhandledResult); ok {
		if payload, ok := ur.ErrPayload().(R); ok {
			*out = rusty.Err[T, R](payload)
			return
		}
	}
	panic(rec)
}

func recoverEffect[R any](out *rusty.Effect[R]) {
	rec := recover()
	if rec == nil {
		return
	}
	if ee, ok := rec.(*rusty.EffectError[R]); ok {
		*out = ee.Failure()
		return
	}
	if ue, ok := rec.(rusty.UnhandledEffect); ok {
		if payload, ok := ue.FailurePayload().(R); ok {
			*out = rusty.Failure(payload)
			return
		}
	}
	panic(rec)
}
