// Package rusty provides Rust-style tagged containers for Go: Result[T, R]
// with Ok/Err variants and Effect[R] with Success/Failure variants.
//
// Containers are immutable value types constructed through Ok, Err, Success
// and Failure. Equality is structural (Equal, EqualEffect): equal payloads
// of the same variant compare equal, while the uuid identity and creation
// time each container carries are ignored.
//
// Key operations:
//   - Ok/Err, Success/Failure: construct containers
//   - Unwrap: extract the Ok payload or dispatch the Err payload to a
//     keyed/wildcard handler, raising a *ResultError otherwise
//   - Succeeded: the Effect counterpart of Unwrap
//   - Map/MapErr/AndThen/OrElse/Finally: synchronous composition
//
// A *ResultError or *EffectError raised by Unwrap/Succeeded is meant to
// travel up the stack until a boundary from the wrap or strict subpackage
// converts it back into the carried container. The Invalid* errors and the
// strict package's contract errors are programming errors and are never
// recovered.
package rusty
