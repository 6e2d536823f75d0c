package rusty

import "fmt"

// ErrHandlers maps expected Err payloads to zero-argument recovery
// functions. Any, when set, is the wildcard fallback for payloads with no
// exact entry.
type ErrHandlers[T any, R comparable] struct {
	On  map[R]func() T
	Any func() T
}

// FailureHandlers is the Effect counterpart of ErrHandlers. Handlers run
// for their side effects only.
type FailureHandlers[R comparable] struct {
	On  map[R]func()
	Any func()
}

// Unwrap returns the Ok payload of r. An Err payload is dispatched to an
// exact handler first, then to a wildcard; with no match Unwrap panics
// with a *ResultError carrying the original Err, to be recovered by a
// wrap or strict boundary. An empty container panics with a
// *InvalidResultError, which is a caller bug and is never recovered.
func Unwrap[T any, R comparable](r Result[T, R], handlers ...ErrHandlers[T, R]) T {
	switch {
	case r.IsOk():
		return r.Content()
	case r.IsErr():
		for _, h := range handlers {
			if f, ok := h.On[r.ErrContent()]; ok {
				return f()
			}
		}
		for _, h := range handlers {
			if h.Any != nil {
				return h.Any()
			}
		}
		panic(NewResultError(r))
	}
	panic(&InvalidResultError{
		msg: fmt.Sprintf("invalid unwrap call on %T: expecting an Ok or an Err container", r),
	})
}

// Succeeded reports completion of e. A Failure payload is dispatched to an
// exact handler first, then to a wildcard, returning true once the handler
// ran; with no match Succeeded panics with a *EffectError carrying the
// original Failure. An empty container panics with a *InvalidEffectError.
func Succeeded[R comparable](e Effect[R], handlers ...FailureHandlers[R]) bool {
	switch {
	case e.IsSuccess():
		return true
	case e.IsFailure():
		for _, h := range handlers {
			if f, ok := h.On[e.Content()]; ok {
				f()
				return true
			}
		}
		for _, h := range handlers {
			if h.Any != nil {
				h.Any()
				return true
			}
		}
		panic(NewEffectError(e))
	}
	panic(&InvalidEffectError{
		msg: fmt.Sprintf("invalid succeeded call on %T: expecting a Success or a Failure container", e),
	})
}
