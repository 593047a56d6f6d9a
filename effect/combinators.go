// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"context"

	"github.com/stillwaterlabs/stillwater/result"
)

// Sequential composition. These introduce no suspension of their own —
// they only delegate to the suspension points of the effects they wrap.

// AndThen sequences two dependent effects: run m, and on success pass the
// value to f and run the resulting effect against the same environment.
// On failure the error propagates and f is never invoked.
func AndThen[Env, E, A, B any](m Effect[Env, E, A], f func(A) Effect[Env, E, B]) Effect[Env, E, B] {
	return func(ctx context.Context, env Env) result.Result[E, B] {
		r := m(ctx, env)
		a, ok := r.Get()
		if !ok {
			err, _ := r.GetErr()
			return result.Err[E, B](err)
		}
		return f(a)(ctx, env)
	}
}

// Map applies a pure function to the success value once Run resolves the
// underlying effect. Failure passes through untouched.
func Map[Env, E, A, B any](m Effect[Env, E, A], f func(A) B) Effect[Env, E, B] {
	return func(ctx context.Context, env Env) result.Result[E, B] {
		return result.Map(m(ctx, env), f)
	}
}

// MapErr applies a pure function to the failure value. Success passes
// through untouched.
func MapErr[Env, E, F, A any](m Effect[Env, E, A], f func(E) F) Effect[Env, F, A] {
	return func(ctx context.Context, env Env) result.Result[F, A] {
		return result.MapErr(m(ctx, env), f)
	}
}

// Then sequences two effects, discarding the first success value. The
// first effect's failure still short-circuits.
//
// Allocation note: Then avoids the closure capture that
// AndThen(m, func(A) Effect…) would need when the second effect does not
// depend on the first result.
func Then[Env, E, A, B any](m Effect[Env, E, A], n Effect[Env, E, B]) Effect[Env, E, B] {
	return func(ctx context.Context, env Env) result.Result[E, B] {
		r := m(ctx, env)
		if err, failed := r.GetErr(); failed {
			return result.Err[E, B](err)
		}
		return n(ctx, env)
	}
}

// OrElse recovers from a failure: on failure the handler receives the
// error and produces a replacement effect, run against the same
// environment. Success passes through untouched. The handler may change
// the error type, so recovery and error translation compose in one step.
func OrElse[Env, E, F, A any](m Effect[Env, E, A], f func(E) Effect[Env, F, A]) Effect[Env, F, A] {
	return func(ctx context.Context, env Env) result.Result[F, A] {
		r := m(ctx, env)
		if a, ok := r.Get(); ok {
			return result.Ok[F](a)
		}
		err, _ := r.GetErr()
		return f(err)(ctx, env)
	}
}
