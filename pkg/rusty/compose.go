package rusty

// Map transforms the Ok payload, passing Err and empty containers
// through with their identity preserved.
func Map[T, U, R any](r Result[T, R], onOk func(T) U) Result[U, R] {
	if r.IsOk() {
		return Ok[U, R](onOk(r.Content()))
	}
	return errFrom[T, U](r)
}

// MapErr transforms the Err payload, passing Ok containers through.
func MapErr[T, R, S any](r Result[T, R], onErr func(R) S) Result[T, S] {
	if r.IsErr() {
		return Err[T, S](onErr(r.ErrContent()))
	}
	return Result[T, S]{
		id:        r.id,
		createdAt: r.createdAt,
		content:   r.content,
		isOk:      r.isOk,
	}
}

// AndThen switches to a new Result on Ok, short-circuiting on Err.
func AndThen[T, U, R any](r Result[T, R], onOk func(T) Result[U, R]) Result[U, R] {
	if r.IsOk() {
		return onOk(r.Content())
	}
	return errFrom[T, U](r)
}

// OrElse switches to an alternative Result on Err, passing Ok through.
func OrElse[T, R any](r Result[T, R], onErr func(R) Result[T, R]) Result[T, R] {
	if r.IsErr() {
		return onErr(r.ErrContent())
	}
	return r
}

// Finally collapses a Result into a final value via the matching handler.
// An empty container panics like Unwrap does.
func Finally[T, R, U any](r Result[T, R], onOk func(T) U, onErr func(R) U) U {
	switch {
	case r.IsOk():
		return onOk(r.Content())
	case r.IsErr():
		return onErr(r.ErrContent())
	}
	panic(&InvalidResultError{
		msg: "invalid finally call: expecting an Ok or an Err container",
	})
}
