package rusty

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant container: exactly one of Ok or Err.
// The zero value is neither and is reported by IsEmpty; dispatching
// on it is a caller contract violation.
type Result[T, R any] struct {
	id         uuid.UUID
	createdAt  time.Time
	content    T
	errContent R
	isOk       bool
	isErr      bool
}

func Ok[T, R any](content T) Result[T, R] {
	return Result[T, R]{
		content:   content,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, R any](content R) Result[T, R] {
	return Result[T, R]{
		errContent: content,
		isErr:      true,
		createdAt:  time.Now().UTC(),
		id:         uuid.New(),
	}
}

// Content returns the Ok payload. Valid only when IsOk reports true.
func (r Result[T, R]) Content() T {
	return r.content
}

// ErrContent returns the Err payload. Valid only when IsErr reports true.
func (r Result[T, R]) ErrContent() R {
	return r.errContent
}

func (r Result[T, R]) IsOk() bool {
	return r.isOk
}

func (r Result[T, R]) IsErr() bool {
	return r.isErr
}

// IsEmpty reports a zero-valued Result that was never constructed
// through Ok or Err.
func (r Result[T, R]) IsEmpty() bool {
	return !r.isOk && !r.isErr
}

func (r Result[T, R]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, R]) Id() uuid.UUID {
	return r.id
}

// UnwrapOr returns the Ok payload, or def when the container is not Ok.
func (r Result[T, R]) UnwrapOr(def T) T {
	if r.isOk {
		return r.content
	}
	return def
}

// UnwrapOrElse returns the Ok payload, or computes a fallback from the
// Err payload.
func (r Result[T, R]) UnwrapOrElse(onErr func(R) T) T {
	if r.isOk {
		return r.content
	}
	return onErr(r.errContent)
}

// Equal reports structural equality: same variant and equal payload.
// Identity (id, creation time) is ignored. Two empty containers
// compare equal.
func Equal[T, R comparable](a, b Result[T, R]) bool {
	switch {
	case a.isOk && b.isOk:
		return a.content == b.content
	case a.isErr && b.isErr:
		return a.errContent == b.errContent
	}
	return a.IsEmpty() && b.IsEmpty()
}

// errFrom rebuilds a non-Ok result under a new Ok payload type,
// preserving identity.
func errFrom[T, U, R any](from Result[T, R]) Result[U, R] {
	return Result[U, R]{
		id:         from.id,
		createdAt:  from.createdAt,
		errContent: from.errContent,
		isErr:      from.isErr,
	}
}
