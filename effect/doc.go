// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package effect provides deferred, environment-parameterized computations
// with sequential and concurrent composition.
//
// An Effect[Env, E, A] describes a computation that, when run against a
// caller-supplied environment, yields a result.Result[E, A]. Construction is
// pure: no combinator executes anything. [Effect.Run] is the single point
// where computation (and any blocking) actually happens.
//
// # Environment
//
// The environment is injected once per Run call and threaded unchanged
// through every combinator — the same environment a chain starts with is the
// one every link sees. It is logically read-only: no combinator mutates it,
// and it must be safe to share across concurrently executing branches when
// used with the parallel strategies.
//
// # Sequential Composition
//
//   - [AndThen]: dependent sequencing, short-circuits on failure
//   - [Map], [MapErr], [Then]: derived transforms
//   - [With], [With3] … [With8]: dependent accumulation into flat tuples
//   - [OrElse]: explicit recovery from a failure
//
// # Parallel Composition
//
// Four strategies with distinct failure semantics (see parallel.go):
// [ParAll] and [ParAllLimit] accumulate every failure, [ParTryAll] is
// fail-fast, [Race] resolves to the first success. Result order always
// follows submission order for the accumulate and fail-fast strategies;
// execution order is unspecified.
//
// Cancellation is cooperative only. Parallel strategies cancel their child
// context once the aggregate outcome is determined, but an effect that
// ignores its context runs to completion; callers must not rely on early
// cancellation.
//
// # Single Use
//
// Each Effect value is single-use: once passed to Run or consumed by a
// combinator it must not be reused. This is a documented precondition, not
// a runtime check.
//
// # Known Limitation
//
// A generic "try"-style short-circuit operator cannot be built over the
// asynchronous Effect type: short-circuiting inside such an operator would
// need suspension support in the language's control-flow hooks, which Go
// does not provide. Chaining through [AndThen] is the supported surface.
package effect
