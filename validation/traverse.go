// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package validation

import "github.com/stillwaterlabs/stillwater/combine"

// Sequence inverts a slice of validations into a validation of a slice,
// accumulating all failures. An empty input yields Success of an empty
// slice.
func Sequence[E combine.Combinable[E], A any](vs []Validation[E, A]) Validation[E, []A] {
	return AllSlice(vs)
}

// Traverse applies f to every element and accumulates the results,
// merging all failures. Every element is visited regardless of earlier
// failures. An empty input yields Success of an empty slice.
func Traverse[E combine.Combinable[E], A, B any](xs []A, f func(A) Validation[E, B]) Validation[E, []B] {
	vs := make([]Validation[E, B], 0, len(xs))
	for _, x := range xs {
		vs = append(vs, f(x))
	}
	return AllSlice(vs)
}
