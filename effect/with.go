// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"github.com/stillwaterlabs/stillwater/tuple"
)

// Dependent flat-tuple accumulation.
//
// With runs two effects in sequence — in sequence, not concurrently,
// because the second depends on the first result — and pairs their values.
// With3 through With8 each extend an existing flat tuple effect by one more
// dependent element, receiving the tuple accumulated so far and producing
// the next strictly flatter arity. The output is never a tuple of tuples,
// so every step's value stays directly destructurable.
//
// Go has no variadic type parameters, so each arity is written out
// explicitly, mirroring the All combinators in the validation package.

// With sequences a dependent effect and pairs both results.
func With[Env, E, T1, T2 any](
	m Effect[Env, E, T1], f func(T1) Effect[Env, E, T2],
) Effect[Env, E, tuple.Tuple2[T1, T2]] {
	return AndThen(m, func(t1 T1) Effect[Env, E, tuple.Tuple2[T1, T2]] {
		return Map(f(t1), func(t2 T2) tuple.Tuple2[T1, T2] {
			return tuple.Tuple2[T1, T2]{A: t1, B: t2}
		})
	})
}

// With3 extends a Tuple2 effect by one dependent element.
func With3[Env, E, T1, T2, T3 any](
	m Effect[Env, E, tuple.Tuple2[T1, T2]], f func(tuple.Tuple2[T1, T2]) Effect[Env, E, T3],
) Effect[Env, E, tuple.Tuple3[T1, T2, T3]] {
	return AndThen(m, func(t tuple.Tuple2[T1, T2]) Effect[Env, E, tuple.Tuple3[T1, T2, T3]] {
		return Map(f(t), func(t3 T3) tuple.Tuple3[T1, T2, T3] {
			return tuple.Tuple3[T1, T2, T3]{A: t.A, B: t.B, C: t3}
		})
	})
}

// With4 extends a Tuple3 effect by one dependent element.
func With4[Env, E, T1, T2, T3, T4 any](
	m Effect[Env, E, tuple.Tuple3[T1, T2, T3]], f func(tuple.Tuple3[T1, T2, T3]) Effect[Env, E, T4],
) Effect[Env, E, tuple.Tuple4[T1, T2, T3, T4]] {
	return AndThen(m, func(t tuple.Tuple3[T1, T2, T3]) Effect[Env, E, tuple.Tuple4[T1, T2, T3, T4]] {
		return Map(f(t), func(t4 T4) tuple.Tuple4[T1, T2, T3, T4] {
			return tuple.Tuple4[T1, T2, T3, T4]{A: t.A, B: t.B, C: t.C, D: t4}
		})
	})
}

// With5 extends a Tuple4 effect by one dependent element.
func With5[Env, E, T1, T2, T3, T4, T5 any](
	m Effect[Env, E, tuple.Tuple4[T1, T2, T3, T4]], f func(tuple.Tuple4[T1, T2, T3, T4]) Effect[Env, E, T5],
) Effect[Env, E, tuple.Tuple5[T1, T2, T3, T4, T5]] {
	return AndThen(m, func(t tuple.Tuple4[T1, T2, T3, T4]) Effect[Env, E, tuple.Tuple5[T1, T2, T3, T4, T5]] {
		return Map(f(t), func(t5 T5) tuple.Tuple5[T1, T2, T3, T4, T5] {
			return tuple.Tuple5[T1, T2, T3, T4, T5]{A: t.A, B: t.B, C: t.C, D: t.D, E: t5}
		})
	})
}

// With6 extends a Tuple5 effect by one dependent element.
func With6[Env, E, T1, T2, T3, T4, T5, T6 any](
	m Effect[Env, E, tuple.Tuple5[T1, T2, T3, T4, T5]], f func(tuple.Tuple5[T1, T2, T3, T4, T5]) Effect[Env, E, T6],
) Effect[Env, E, tuple.Tuple6[T1, T2, T3, T4, T5, T6]] {
	return AndThen(m, func(t tuple.Tuple5[T1, T2, T3, T4, T5]) Effect[Env, E, tuple.Tuple6[T1, T2, T3, T4, T5, T6]] {
		return Map(f(t), func(t6 T6) tuple.Tuple6[T1, T2, T3, T4, T5, T6] {
			return tuple.Tuple6[T1, T2, T3, T4, T5, T6]{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t6}
		})
	})
}

// With7 extends a Tuple6 effect by one dependent element.
func With7[Env, E, T1, T2, T3, T4, T5, T6, T7 any](
	m Effect[Env, E, tuple.Tuple6[T1, T2, T3, T4, T5, T6]], f func(tuple.Tuple6[T1, T2, T3, T4, T5, T6]) Effect[Env, E, T7],
) Effect[Env, E, tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	return AndThen(m, func(t tuple.Tuple6[T1, T2, T3, T4, T5, T6]) Effect[Env, E, tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
		return Map(f(t), func(t7 T7) tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7] {
			return tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t.F, G: t7}
		})
	})
}

// With8 extends a Tuple7 effect by one dependent element.
func With8[Env, E, T1, T2, T3, T4, T5, T6, T7, T8 any](
	m Effect[Env, E, tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]], f func(tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]) Effect[Env, E, T8],
) Effect[Env, E, tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return AndThen(m, func(t tuple.Tuple7[T1, T2, T3, T4, T5, T6, T7]) Effect[Env, E, tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
		return Map(f(t), func(t8 T8) tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
			return tuple.Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{A: t.A, B: t.B, C: t.C, D: t.D, E: t.E, F: t.F, G: t.G, H: t8}
		})
	})
}
