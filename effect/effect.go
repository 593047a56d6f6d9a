// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"context"

	"github.com/stillwaterlabs/stillwater/combine"
	"github.com/stillwaterlabs/stillwater/result"
	"github.com/stillwaterlabs/stillwater/validation"
)

// Effect represents a deferred computation from an environment to a
// Result[E, A]. Nothing executes until Run. Effects are single-use:
// once passed to Run or a combinator, do not reuse the value.
type Effect[Env, E, A any] func(ctx context.Context, env Env) result.Result[E, A]

// Pure creates an Effect that always succeeds with value, ignoring the
// environment.
func Pure[Env, E, A any](value A) Effect[Env, E, A] {
	return func(context.Context, Env) result.Result[E, A] {
		return result.Ok[E](value)
	}
}

// Fail creates an Effect that always fails with err.
func Fail[Env, E, A any](err E) Effect[Env, E, A] {
	return func(context.Context, Env) result.Result[E, A] {
		return result.Err[E, A](err)
	}
}

// From wraps an environment-parameterized, possibly blocking computation.
// This is the primitive constructor for leaf effects that reach external
// resources; f should honour ctx while blocked.
func From[Env, E, A any](f func(ctx context.Context, env Env) result.Result[E, A]) Effect[Env, E, A] {
	return Effect[Env, E, A](f)
}

// FromFunc bridges Go's (value, error) convention into an Effect with
// failure type error.
func FromFunc[Env, A any](f func(ctx context.Context, env Env) (A, error)) Effect[Env, error, A] {
	return func(ctx context.Context, env Env) result.Result[error, A] {
		a, err := f(ctx, env)
		if err != nil {
			return result.Err[error, A](err)
		}
		return result.Ok[error](a)
	}
}

// Asks creates an Effect that succeeds with a pure projection of the
// environment.
func Asks[Env, E, A any](f func(Env) A) Effect[Env, E, A] {
	return func(_ context.Context, env Env) result.Result[E, A] {
		return result.Ok[E](f(env))
	}
}

// Environment creates an Effect that succeeds with the environment itself.
func Environment[Env, E any]() Effect[Env, E, Env] {
	return func(_ context.Context, env Env) result.Result[E, Env] {
		return result.Ok[E](env)
	}
}

// FromValidation lifts a pre-computed Validation into an Effect. The
// validation's accumulated failure type becomes the effect's error type.
func FromValidation[Env any, E combine.Combinable[E], A any](v validation.Validation[E, A]) Effect[Env, E, A] {
	r := v.ToResult()
	return func(context.Context, Env) result.Result[E, A] {
		return r
	}
}

// Run executes the effect against env. This is the single suspension
// point: any blocking performed by leaf effects happens here. Run consumes
// the effect.
func (m Effect[Env, E, A]) Run(ctx context.Context, env Env) result.Result[E, A] {
	return m(ctx, env)
}
