// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tuple provides flat heterogeneous value carriers of arity 2
// through 12.
//
// Go has no tuple literals, so accumulation combinators that collect values
// of different types need named carriers. Each TupleN is strictly flat —
// combinators that grow a tuple by one element always produce the next
// flat arity, never a tuple of tuples, so every field stays directly
// addressable at the use site.
//
// The per-arity repetition below is deliberate: Go lacks variadic type
// parameters, so each arity is written out as its own concrete generic type.
package tuple

// Tuple2 carries two values.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 carries three values.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 carries four values.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple5 carries five values.
type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Tuple6 carries six values.
type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Tuple7 carries seven values.
type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// Tuple8 carries eight values.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// Tuple9 carries nine values.
type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// Tuple10 carries ten values.
type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

// Tuple11 carries eleven values.
type Tuple11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

// Tuple12 carries twelve values.
type Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// Of2 builds a Tuple2.
func Of2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{A: a, B: b}
}

// Of3 builds a Tuple3.
func Of3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{A: a, B: b, C: c}
}

// Of4 builds a Tuple4.
func Of4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{A: a, B: b, C: c, D: d}
}
