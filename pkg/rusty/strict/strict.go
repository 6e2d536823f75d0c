package strict

import (
	"context"

	"github.com/ib-77/rusty/pkg/rusty"
)

// UnwrapReturn is the validating form of wrap.UnwrapReturn. At decoration
// time the declared Ok and Err type sets are checked against the static
// payload types T and R; a malformed declaration panics with a
// *ContractError before the wrapped function can be called. At call time
// the returned (or recovered) container's dynamic payload type must be a
// member of the matching set.
func UnwrapReturn[In, T, R any](okTypes, errTypes TypeSet,
	fn func(ctx context.Context, in In) rusty.Result[T, R]) func(ctx context.Context, in In) rusty.Result[T, R] {

	if fn == nil {
		panic(contractErrf("strict: UnwrapReturn requires a non-nil function"))
	}
	checkDeclared[T]("Ok", okTypes)
	checkDeclared[R]("Err", errTypes)

	return func(ctx context.Context, in In) (out rusty.Result[T, R]) {
		defer recoverStrictResult(&out, errTypes)
		res := fn(ctx, in)
		checkResult(res, okTypes, errTypes)
		return res
	}
}

// UnwrapReturn0 is UnwrapReturn for functions without an input value.
func UnwrapReturn0[T, R any](okTypes, errTypes TypeSet,
	fn func(ctx context.Context) rusty.Result[T, R]) func(ctx context.Context) rusty.Result[T, R] {

	if fn == nil {
		panic(contractErrf("strict: UnwrapReturn0 requires a non-nil function"))
	}
	checkDeclared[T]("Ok", okTypes)
	checkDeclared[R]("Err", errTypes)

	return func(ctx context.Context) (out rusty.Result[T, R]) {
		defer recoverStrictResult(&out, errTypes)
		res := fn(ctx)
		checkResult(res, okTypes, errTypes)
		return res
	}
}

// FailureReturn is the validating form of wrap.FailureReturn. The declared
// set lists the permitted Failure payload types; an empty set means no
// failure arm is declared, so Success containers pass through unchecked
// while any Failure is a contract violation.
func FailureReturn[In, R any](failureTypes TypeSet,
	fn func(ctx context.Context, in In) rusty.Effect[R]) func(ctx context.Context, in In) rusty.Effect[R] {

	if fn == nil {
		panic(contractErrf("strict: FailureReturn requires a non-nil function"))
	}
	checkFailureDeclared[R](failureTypes)

	return func(ctx context.Context, in In) (out rusty.Effect[R]) {
		defer recoverStrictEffect(&out, failureTypes)
		eff := fn(ctx, in)
		checkEffect(eff, failureTypes)
		return eff
	}
}

// FailureReturn0 is FailureReturn for functions without an input value.
func FailureReturn0[R any](failureTypes TypeSet,
	fn func(ctx context.Context) rusty.Effect[R]) func(ctx context.Context) rusty.Effect[R] {

	if fn == nil {
		panic(contractErrf("strict: FailureReturn0 requires a non-nil function"))
	}
	checkFailureDeclared[R](failureTypes)

	return func(ctx context.Context) (out rusty.Effect[R]) {
		defer recoverStrictEffect(&out, failureTypes)
		eff := fn(ctx)
		checkEffect(eff, failureTypes)
		return eff
	}
}

// checkFailureDeclared allows the empty set (no failure arm declared) but
// still validates declared types against the static payload type.
func checkFailureDeclared[R any](s TypeSet) {
	if s.isEmpty() {
		return
	}
	checkDeclared[R]("Failure", s)
}

func checkResult[T, R any](res rusty.Result[T, R], okTypes, errTypes TypeSet) {
	switch {
	case res.IsOk():
		if t := typeOf(res.Content()); !okTypes.admits(t) {
			panic(contractErrf("strict: function returned an Ok payload of type %v, permitted types %s",
				t, okTypes))
		}
	case res.IsErr():
		if t := typeOf(res.ErrContent()); !errTypes.admits(t) {
			panic(contractErrf("strict: function returned an Err payload of type %v, permitted types %s",
				t, errTypes))
		}
	default:
		panic(contractErrf("strict: function returned an empty Result, expecting an Ok or an Err container"))
	}
}

func checkEffect[R any](eff rusty.Effect[R], failureTypes TypeSet) {
	switch {
	case eff.IsSuccess():
	case eff.IsFailure():
		if t := typeOf(eff.Content()); !failureTypes.admits(t) {
			panic(contractErrf("strict: function returned a Failure payload of type %v, permitted types %s",
				t, failureTypes))
		}
	default:
		panic(contractErrf("strict: function returned an empty Effect, expecting a Success or a Failure container"))
	}
}

// recoverStrictResult converts a recovered ResultError into an Err return
// after validating the carried payload against the declared Err set. A
// payload outside the set escalates to a *ContractError.
func recoverStrictResult[T, R any](out *rusty.Result[T, R], errTypes TypeSet) {
	rec := recover()
	if rec == nil {
		return
	}
	if re, ok := rec.(*rusty.ResultError[T, R]); ok {
		validateRaisedErr(re.ErrPayload(), errTypes)
		*out = re.Err()
		return
	}
	if ur, ok := rec.(rusty.UnhandledResult); ok {
		if payload, ok := ur.ErrPayload().(R); ok {
			validateRaisedErr(ur.ErrPayload(), errTypes)
			*out = rusty.Err[T, R](payload)
			return
		}
	}
	panic(rec)
}

func validateRaisedErr(payload any, errTypes TypeSet) {
	if t := typeOf(payload); !errTypes.admits(t) {
		panic(contractErrf("strict: function raised an unhandled Err payload of type %v, permitted types %s",
			t, errTypes))
	}
}

func recoverStrictEffect[R any](out *rusty.Effect[R], failureTypes TypeSet) {
	rec := recover()
	if rec == nil {
		return
	}
	if ee, ok := rec.(*rusty.EffectError[R]); ok {
		validateRaisedFailure(ee.FailurePayload(), failureTypes)
		*out = ee.Failure()
		return
	}
	if ue, ok := rec.(rusty.UnhandledEffect); ok {
		if payload, ok := ue.FailurePayload().(R); ok {
			validateRaisedFailure(ue.FailurePayload(), failureTypes)
			*out = rusty.Failure(payload)
			return
		}
	}
	panic(rec)
}

func validateRaisedFailure(payload any, failureTypes TypeSet) {
	if t := typeOf(payload); !failureTypes.admits(t) {
		panic(contractErrf("strict: function raised an unhandled Failure payload of type %v, permitted types %s",
			t, failureTypes))
	}
}
