// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

// Sequence inverts a slice of effects into a single effect of a slice,
// running the members concurrently with ParAll semantics: all failures
// accumulate, successful results keep submission order. An empty input
// resolves Ok of an empty slice — an explicit edge case, not an emergent
// one.
func Sequence[Env, E, A any](effects []Effect[Env, E, A]) Effect[Env, []E, []A] {
	return ParAll(effects)
}

// Traverse applies f to every element and runs the resulting effects
// concurrently, giving collection-level parallelism from a single helper.
// Semantics follow Sequence. An empty input resolves Ok of an empty slice.
func Traverse[Env, E, A, B any](xs []A, f func(A) Effect[Env, E, B]) Effect[Env, []E, []B] {
	effects := make([]Effect[Env, E, B], 0, len(xs))
	for _, x := range xs {
		effects = append(effects, f(x))
	}
	return ParAll(effects)
}
