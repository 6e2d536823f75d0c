// Package strict provides validating boundary decorators. They behave like
// the wrap package but additionally check, with runtime reflection, that a
// container's payload type is a member of a declared TypeSet.
//
// Declarations are verified at decoration time: a nil function, an empty
// Ok/Err set, or a declared type that is not assignable to the static
// payload type panics with a *ContractError before any call is made. At
// call time the dynamic payload type of the returned (or recovered)
// container is checked against the matching set; Any() declares a wildcard
// admitting every type.
//
// The checks only add information when a payload type parameter is an
// interface (any, error, ...): with a concrete payload type the compiler
// already guarantees membership.
package strict
