package rusty

import (
	"errors"
	"fmt"
)

// Sentinel roots of the error taxonomy. Every panic value raised by this
// module wraps one of them, so callers can classify with errors.Is without
// naming a concrete instantiation.
var (
	// ErrUnhandled marks an Err or Failure payload that no handler matched.
	ErrUnhandled = errors.New("unhandled failure payload")
	// ErrInvalid marks a dispatch on an empty (never constructed) container.
	ErrInvalid = errors.New("invalid container")
	// ErrContract marks a strict declaration or payload type violation.
	ErrContract = errors.New("contract violation")
)

// ResultError carries the original Err container past call frames until a
// boundary converts it back into a return value. It is raised as a panic
// value by Unwrap and recovered by the wrap and strict packages.
type ResultError[T, R any] struct {
	err Result[T, R]
}

func NewResultError[T, R any](err Result[T, R]) *ResultError[T, R] {
	return &ResultError[T, R]{err: err}
}

func (e *ResultError[T, R]) Error() string {
	return fmt.Sprintf("error content > %v", e.err.ErrContent())
}

// Err returns the original Err container.
func (e *ResultError[T, R]) Err() Result[T, R] {
	return e.err
}

// ErrPayload implements UnhandledResult.
func (e *ResultError[T, R]) ErrPayload() any {
	return e.err.ErrContent()
}

func (e *ResultError[T, R]) Unwrap() error {
	return ErrUnhandled
}

// UnhandledResult is implemented by every ResultError instantiation. It
// lets a boundary recover an error payload raised by an inner Unwrap call
// over a differently parameterized Result.
type UnhandledResult interface {
	error
	ErrPayload() any
}

// EffectError is the Effect counterpart of ResultError: it carries the
// original Failure container raised by Succeeded.
type EffectError[R any] struct {
	failure Effect[R]
}

func NewEffectError[R any](failure Effect[R]) *EffectError[R] {
	return &EffectError[R]{failure: failure}
}

func (e *EffectError[R]) Error() string {
	return fmt.Sprintf("failure content > %v", e.failure.Content())
}

// Failure returns the original Failure container.
func (e *EffectError[R]) Failure() Effect[R] {
	return e.failure
}

// FailurePayload implements UnhandledEffect.
func (e *EffectError[R]) FailurePayload() any {
	return e.failure.Content()
}

func (e *EffectError[R]) Unwrap() error {
	return ErrUnhandled
}

// UnhandledEffect is implemented by every EffectError instantiation.
type UnhandledEffect interface {
	error
	FailurePayload() any
}

// InvalidResultError reports Unwrap called on an empty Result. It is a
// programming error and is never recovered by this module.
type InvalidResultError struct {
	msg string
}

func (e *InvalidResultError) Error() string {
	return e.msg
}

func (e *InvalidResultError) Unwrap() error {
	return ErrInvalid
}

// InvalidEffectError reports Succeeded called on an empty Effect.
type InvalidEffectError struct {
	msg string
}

func (e *InvalidEffectError) Error() string {
	return e.msg
}

func (e *InvalidEffectError) Unwrap() error {
	return ErrInvalid
}
