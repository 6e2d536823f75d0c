package rusty

import (
	"time"

	"github.com/google/uuid"
)

// Effect is a two-variant container for side-effecting operations:
// exactly one of Success (no payload) or Failure (with payload).
// The zero value is neither and is reported by IsEmpty.
type Effect[R any] struct {
	id        uuid.UUID
	createdAt time.Time
	content   R
	isSuccess bool
	isFailure bool
}

func Success[R any]() Effect[R] {
	return Effect[R]{
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[R any](content R) Effect[R] {
	return Effect[R]{
		content:   content,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Content returns the Failure payload. Valid only when IsFailure
// reports true.
func (e Effect[R]) Content() R {
	return e.content
}

func (e Effect[R]) IsSuccess() bool {
	return e.isSuccess
}

func (e Effect[R]) IsFailure() bool {
	return e.isFailure
}

// IsEmpty reports a zero-valued Effect that was never constructed
// through Success or Failure.
func (e Effect[R]) IsEmpty() bool {
	return !e.isSuccess && !e.isFailure
}

func (e Effect[R]) CreatedAt() time.Time {
	return e.createdAt
}

func (e Effect[R]) Id() uuid.UUID {
	return e.id
}

// EqualEffect reports structural equality: same variant and, for
// failures, equal payload. Identity is ignored.
func EqualEffect[R comparable](a, b Effect[R]) bool {
	switch {
	case a.isSuccess && b.isSuccess:
		return true
	case a.isFailure && b.isFailure:
		return a.content == b.content
	}
	return a.IsEmpty() && b.IsEmpty()
}
