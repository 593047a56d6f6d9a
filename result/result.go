// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package result provides the Result sum type shared by the validation and
// effect packages.
//
// Result[E, A] is either Ok (success, payload A) or Err (failure, payload E).
// Unlike Go's (A, error) convention the failure type is a type parameter, so
// accumulating error types (see the combine package) and plain errors travel
// through the same combinators.
package result

// Result represents a value that is either Err (failure) or Ok (success).
// The zero value is Err with a zero error payload.
type Result[E, A any] struct {
	ok    bool
	err   E
	value A
}

// Ok creates a success value.
func Ok[E, A any](value A) Result[E, A] {
	return Result[E, A]{ok: true, value: value}
}

// Err creates a failure value.
func Err[E, A any](err E) Result[E, A] {
	return Result[E, A]{err: err}
}

// IsOk reports whether this is a success.
func (r Result[E, A]) IsOk() bool {
	return r.ok
}

// IsErr reports whether this is a failure.
func (r Result[E, A]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[E, A]) Get() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// GetErr returns the failure value and true, or zero and false.
func (r Result[E, A]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// GetOrElse returns the success value, or fallback on failure.
func (r Result[E, A]) GetOrElse(fallback A) A {
	if r.ok {
		return r.value
	}
	return fallback
}

// Match pattern matches on the Result, calling onErr or onOk.
func Match[E, A, T any](r Result[E, A], onErr func(E) T, onOk func(A) T) T {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Map applies a function to the success value.
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.ok {
		return Ok[E](f(r.value))
	}
	return Err[E, B](r.err)
}

// FlatMap sequences two Result computations, short-circuiting on failure.
func FlatMap[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.ok {
		return f(r.value)
	}
	return Err[E, B](r.err)
}

// MapErr applies a function to the failure value.
func MapErr[E, F, A any](r Result[E, A], f func(E) F) Result[F, A] {
	if r.ok {
		return Ok[F](r.value)
	}
	return Err[F, A](f(r.err))
}
