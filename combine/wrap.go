// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

// First wraps any value with a Combine that always keeps the left operand.
// The payload needs no Combinable instance of its own.
// Trivially associative: every grouping reduces to the leftmost value.
type First[A any] struct {
	Value A
}

// FirstOf wraps a value in First.
func FirstOf[A any](value A) First[A] {
	return First[A]{Value: value}
}

// Combine keeps the receiver (the left operand).
func (f First[A]) Combine(First[A]) First[A] {
	return f
}

// Last wraps any value with a Combine that always keeps the right operand.
type Last[A any] struct {
	Value A
}

// LastOf wraps a value in Last.
func LastOf[A any](value A) Last[A] {
	return Last[A]{Value: value}
}

// Combine keeps the argument (the right operand).
func (Last[A]) Combine(other Last[A]) Last[A] {
	return other
}
