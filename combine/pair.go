// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

// Tuple instances with component-wise Combine. Each component carries its
// own Combinable instance; associativity follows from the components'.
// There is no identity element unless every component has one, which the
// type system cannot require here, so none is exported.

// Pair combines two Combinable values component-wise.
type Pair[A Combinable[A], B Combinable[B]] struct {
	A A
	B B
}

// PairOf builds a Pair.
func PairOf[A Combinable[A], B Combinable[B]](a A, b B) Pair[A, B] {
	return Pair[A, B]{A: a, B: b}
}

// Combine merges component-wise, left operands first.
func (p Pair[A, B]) Combine(other Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{A: p.A.Combine(other.A), B: p.B.Combine(other.B)}
}

// Triple combines three Combinable values component-wise.
type Triple[A Combinable[A], B Combinable[B], C Combinable[C]] struct {
	A A
	B B
	C C
}

// TripleOf builds a Triple.
func TripleOf[A Combinable[A], B Combinable[B], C Combinable[C]](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{A: a, B: b, C: c}
}

// Combine merges component-wise, left operands first.
func (t Triple[A, B, C]) Combine(other Triple[A, B, C]) Triple[A, B, C] {
	return Triple[A, B, C]{
		A: t.A.Combine(other.A),
		B: t.B.Combine(other.B),
		C: t.C.Combine(other.C),
	}
}

// Quad combines four Combinable values component-wise.
type Quad[A Combinable[A], B Combinable[B], C Combinable[C], D Combinable[D]] struct {
	A A
	B B
	C C
	D D
}

// QuadOf builds a Quad.
func QuadOf[A Combinable[A], B Combinable[B], C Combinable[C], D Combinable[D]](a A, b B, c C, d D) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{A: a, B: b, C: c, D: d}
}

// Combine merges component-wise, left operands first.
func (q Quad[A, B, C, D]) Combine(other Quad[A, B, C, D]) Quad[A, B, C, D] {
	return Quad[A, B, C, D]{
		A: q.A.Combine(other.A),
		B: q.B.Combine(other.B),
		C: q.C.Combine(other.C),
		D: q.D.Combine(other.D),
	}
}
