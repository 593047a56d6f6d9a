// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

// Combinable is the F-bounded interface for associative merging.
// Combine merges the receiver with another value of the same type and
// must be associative. Both operands are consumed; implementations must
// not mutate either in place when doing so would be observable.
type Combinable[A any] interface {
	Combine(A) A
}

// Monoid is a Combinable with an identity element.
// Empty must satisfy a.Combine(a.Empty()) == a and a.Empty().Combine(a) == a.
// Empty is a method rather than a package function so the zero value of an
// instance type is enough to obtain the identity.
type Monoid[A any] interface {
	Combinable[A]
	Empty() A
}

// Reduce folds values left to right with Combine, starting from first.
// The result is deterministic for any associative Combine regardless of
// how a caller might regroup the operands.
func Reduce[A Combinable[A]](first A, rest ...A) A {
	acc := first
	for _, a := range rest {
		acc = acc.Combine(a)
	}
	return acc
}

// Fold folds a slice of monoid values left to right, starting from the
// identity element. An empty slice yields the identity.
func Fold[M Monoid[M]](xs []M) M {
	var zero M
	acc := zero.Empty()
	for _, x := range xs {
		acc = acc.Combine(x)
	}
	return acc
}
