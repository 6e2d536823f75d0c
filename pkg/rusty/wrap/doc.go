// Package wrap provides boundary decorators that convert a raised
// *rusty.ResultError or *rusty.EffectError back into the tagged container
// it carries, so call chains can use rusty.Unwrap/Succeeded for
// early-exit ergonomics while the outer function still returns a value.
//
// Key constructs:
// - UnwrapReturn/UnwrapReturn0: recover an unhandled Err at the boundary
// - FailureReturn/FailureReturn0: recover an unhandled Failure
// - Lift/LiftEffect: adapt (value, error) functions into container form
//
// Wrapped functions must return a container themselves; Lift is the
// explicit way to coerce a bare-value function. Panic values other than
// the rusty error types propagate unchanged.
package wrap
