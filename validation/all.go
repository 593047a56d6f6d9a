// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package validation

import (
	"iter"

	"github.com/stillwaterlabs/stillwater/combine"
	"github.com/stillwaterlabs/stillwater/tuple"
)

// Fixed-arity accumulation over heterogeneous payloads.
//
// Each AllN evaluates every member (no short-circuit). If all succeed it
// returns Success of the flat payload tuple; otherwise Failure of the
// left-to-right Combine reduction of every failing member's error. Because
// Combine is associative the reduction is deterministic regardless of
// grouping.
//
// Go has no variadic type parameters, so each arity is written out
// explicitly, All1 through All12.

// All1 is the unary accumulation: it returns its argument unchanged and
// exists for uniformity with the higher arities.
func All1[E combine.Combinable[E], T1 any](v1 Validation[E, T1]) Validation[E, T1] {
	return v1
}

// All2 accumulates two independent validations.
func All2[E combine.Combinable[E], T1, T2 any](
	v1 Validation[E, T1], v2 Validation[E, T2],
) Validation[E, tuple.Tuple2[T1, T2]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple2[T1, T2]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple2[T1, T2]{A: v1.value, B: v2.value})
}

// All3 accumulates three independent validations.
func All3[E combine.Combinable[E], T1, T2, T3 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3],
) Validation[E, tuple.Tuple3[T1, T2, T3]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple3[T1, T2, T3]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple3[T1, T2, T3]{A: v1.value, B: v2.value, C: v3.value})
}

// All4 accumulates four independent validations.
func All4[E combine.Combinable[E], T1, T2, T3, T4 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
) Validation[E, tuple.Tuple4[T1, T2, T3, T4]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple4[T1, T2, T3, T4]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple4[T1, T2, T3, T4]{A: v1.value, B: v2.value, C: v3.value, D: v4.value})
}

// All5 accumulates five independent validations.
func All5[E combine.Combinable[E], T1, T2, T3, T4, T5 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5],
) Validation[E, tuple.Tuple5[T1, T2, T3, T4, T5]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple5[T1, T2, T3, T4, T5]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple5[T1, T2, T3, T4, T5]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value,
	})
}

// All6 accumulates six independent validations.
func All6[E combine.Combinable[E], T1, T2, T3, T4, T5, T6 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6],
) Validation[E, tuple.Tuple6[T1, T2, T3, T4, T5, T6]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple6[T1, T2, T3, T4, T5, T6]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple6[T1, T2, T3, T4, T5, T6]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
	})
}

// All7 accumulates seven independent validations.
func All7[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7],
) Validation[E, tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value,
	})
}

// All8 accumulates eight independent validations.
func All8[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7, T8 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7], v8 Validation[E, T8],
) Validation[E, tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	errs = v8.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value, H: v8.value,
	})
}

// All9 accumulates nine independent validations.
func All9[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7, T8, T9 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7], v8 Validation[E, T8],
	v9 Validation[E, T9],
) Validation[E, tuple.Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	errs = v8.appendErr(errs)
	errs = v9.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value, H: v8.value, I: v9.value,
	})
}

// All10 accumulates ten independent validations.
func All10[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7], v8 Validation[E, T8],
	v9 Validation[E, T9], v10 Validation[E, T10],
) Validation[E, tuple.Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	errs = v8.appendErr(errs)
	errs = v9.appendErr(errs)
	errs = v10.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value, H: v8.value, I: v9.value, J: v10.value,
	})
}

// All11 accumulates eleven independent validations.
func All11[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7], v8 Validation[E, T8],
	v9 Validation[E, T9], v10 Validation[E, T10], v11 Validation[E, T11],
) Validation[E, tuple.Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	errs = v8.appendErr(errs)
	errs = v9.appendErr(errs)
	errs = v10.appendErr(errs)
	errs = v11.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple11[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value, H: v8.value, I: v9.value, J: v10.value, K: v11.value,
	})
}

// All12 accumulates twelve independent validations.
func All12[E combine.Combinable[E], T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](
	v1 Validation[E, T1], v2 Validation[E, T2], v3 Validation[E, T3], v4 Validation[E, T4],
	v5 Validation[E, T5], v6 Validation[E, T6], v7 Validation[E, T7], v8 Validation[E, T8],
	v9 Validation[E, T9], v10 Validation[E, T10], v11 Validation[E, T11], v12 Validation[E, T12],
) Validation[E, tuple.Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]] {
	errs := v1.appendErr(nil)
	errs = v2.appendErr(errs)
	errs = v3.appendErr(errs)
	errs = v4.appendErr(errs)
	errs = v5.appendErr(errs)
	errs = v6.appendErr(errs)
	errs = v7.appendErr(errs)
	errs = v8.appendErr(errs)
	errs = v9.appendErr(errs)
	errs = v10.appendErr(errs)
	errs = v11.appendErr(errs)
	errs = v12.appendErr(errs)
	if len(errs) > 0 {
		return Failure[E, tuple.Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](tuple.Tuple12[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12]{
		A: v1.value, B: v2.value, C: v3.value, D: v4.value, E: v5.value, F: v6.value,
		G: v7.value, H: v8.value, I: v9.value, J: v10.value, K: v11.value, L: v12.value,
	})
}

// AllSlice accumulates a homogeneous slice of validations. All members are
// evaluated; failures merge left to right. An empty slice yields Success of
// an empty slice.
func AllSlice[E combine.Combinable[E], A any](vs []Validation[E, A]) Validation[E, []A] {
	values := make([]A, 0, len(vs))
	var errs []E
	for _, v := range vs {
		if v.ok {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.err)
		}
	}
	if len(errs) > 0 {
		return Failure[E, []A](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](values)
}

// AllSeq accumulates validations from an iterator with the same semantics
// as AllSlice. The sequence is drained fully even after a failure.
func AllSeq[E combine.Combinable[E], A any](seq iter.Seq[Validation[E, A]]) Validation[E, []A] {
	values := []A{}
	var errs []E
	for v := range seq {
		if v.ok {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.err)
		}
	}
	if len(errs) > 0 {
		return Failure[E, []A](combine.Reduce(errs[0], errs[1:]...))
	}
	return Success[E](values)
}
