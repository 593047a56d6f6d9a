// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package validation

import (
	"github.com/stillwaterlabs/stillwater/combine"
	"github.com/stillwaterlabs/stillwater/result"
)

// Validation represents a value that is either Failure (accumulating error)
// or Success. Immutable once constructed.
type Validation[E combine.Combinable[E], A any] struct {
	ok    bool
	err   E
	value A
}

// Success creates a Success value.
func Success[E combine.Combinable[E], A any](value A) Validation[E, A] {
	return Validation[E, A]{ok: true, value: value}
}

// Failure creates a Failure value.
func Failure[E combine.Combinable[E], A any](err E) Validation[E, A] {
	return Validation[E, A]{err: err}
}

// FromResult lifts a Result into a Validation.
func FromResult[E combine.Combinable[E], A any](r result.Result[E, A]) Validation[E, A] {
	if v, ok := r.Get(); ok {
		return Success[E](v)
	}
	err, _ := r.GetErr()
	return Failure[E, A](err)
}

// FromError bridges Go's (value, error) convention into a Validation whose
// failure type accumulates as a list of errors.
func FromError[A any](value A, err error) Validation[combine.List[error], A] {
	if err != nil {
		return Failure[combine.List[error], A](combine.ListOf(err))
	}
	return Success[combine.List[error]](value)
}

// IsSuccess reports whether this is a Success.
func (v Validation[E, A]) IsSuccess() bool {
	return v.ok
}

// IsFailure reports whether this is a Failure.
func (v Validation[E, A]) IsFailure() bool {
	return !v.ok
}

// Get returns the success value and true, or zero and false.
func (v Validation[E, A]) Get() (A, bool) {
	if v.ok {
		return v.value, true
	}
	var zero A
	return zero, false
}

// Err returns the failure value and true, or zero and false.
func (v Validation[E, A]) Err() (E, bool) {
	if !v.ok {
		return v.err, true
	}
	var zero E
	return zero, false
}

// GetOrElse returns the success value, or fallback on failure.
func (v Validation[E, A]) GetOrElse(fallback A) A {
	if v.ok {
		return v.value
	}
	return fallback
}

// ToResult converts the Validation into a Result.
func (v Validation[E, A]) ToResult() result.Result[E, A] {
	if v.ok {
		return result.Ok[E](v.value)
	}
	return result.Err[E, A](v.err)
}

// Match pattern matches on the Validation, calling onSuccess or onFailure.
func Match[E combine.Combinable[E], A, T any](v Validation[E, A], onSuccess func(A) T, onFailure func(E) T) T {
	if v.ok {
		return onSuccess(v.value)
	}
	return onFailure(v.err)
}

// Map applies a function to the success value. Failure passes through
// untouched.
func Map[E combine.Combinable[E], A, B any](v Validation[E, A], f func(A) B) Validation[E, B] {
	if v.ok {
		return Success[E](f(v.value))
	}
	return Failure[E, B](v.err)
}

// MapFailure applies a function to the failure value. Success passes
// through untouched.
func MapFailure[E combine.Combinable[E], F combine.Combinable[F], A any](v Validation[E, A], f func(E) F) Validation[F, A] {
	if v.ok {
		return Success[F](v.value)
	}
	return Failure[F, A](f(v.err))
}

// AndThen sequences two dependent validations: on Success the continuation
// is invoked with the value, on Failure the error propagates and the
// continuation is never invoked. This is the only short-circuiting
// operation on Validation — use it for checks that depend on an earlier
// check's output, and the All combinators for independent checks.
func AndThen[E combine.Combinable[E], A, B any](v Validation[E, A], f func(A) Validation[E, B]) Validation[E, B] {
	if v.ok {
		return f(v.value)
	}
	return Failure[E, B](v.err)
}

// appendErr appends the failure payload, if any, to errs.
func (v Validation[E, A]) appendErr(errs []E) []E {
	if v.ok {
		return errs
	}
	return append(errs, v.err)
}
