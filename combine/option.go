// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

// Option is an optional Combinable value.
// Combine follows the usual lifting of a semigroup into a monoid:
// Some+Some combines the payloads, Some absorbs None, None+None is None.
// The identity element is None.
type Option[A Combinable[A]] struct {
	value A
	some  bool
}

// Some wraps a present value.
func Some[A Combinable[A]](value A) Option[A] {
	return Option[A]{value: value, some: true}
}

// None returns the absent value.
func None[A Combinable[A]]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether a value is present.
func (o Option[A]) IsSome() bool {
	return o.some
}

// Get returns the value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.some {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOrElse returns the value, or fallback when absent.
func (o Option[A]) GetOrElse(fallback A) A {
	if o.some {
		return o.value
	}
	return fallback
}

// Combine merges two options: Some(a)+Some(b) = Some(a.Combine(b)),
// Some+None = Some, None+None = None.
func (o Option[A]) Combine(other Option[A]) Option[A] {
	switch {
	case o.some && other.some:
		return Some(o.value.Combine(other.value))
	case o.some:
		return o
	default:
		return other
	}
}

// Empty returns the identity element (None).
func (Option[A]) Empty() Option[A] {
	return Option[A]{}
}
