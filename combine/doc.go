// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package combine provides the semigroup/monoid algebra that error
// accumulation is built on.
//
// The core interface [Combinable] has a single method, Combine, which must be
// associative:
//
//	a.Combine(b).Combine(c) == a.Combine(b.Combine(c))
//
// [Monoid] extends Combinable with an identity element.
//
// # F-Bounded Constraint
//
// Generic code constrains error types with the self-referencing form
// E Combinable[E], so the compiler knows both the concrete type and that
// combining two values of it yields the same type. This is the same
// F-bounded pattern used throughout the stillwater packages.
//
// # Built-In Instances
//
//   - [List]: ordered sequence, concatenation
//   - [Text]: string concatenation
//   - [Pair], [Triple], [Quad]: component-wise combine
//   - [MapOf]: key union, colliding values combined recursively
//   - [Set]: key union
//   - [Option]: Some+Some combines, Some absorbs None
//   - [First], [Last]: keep the left / right operand
//   - [Intersection]: key intersection instead of union
//
// List, Text, MapOf, Set, and Option are monoids. First, Last, Intersection,
// and the tuple instances have no identity element; callers needing one must
// supply it explicitly.
//
// # Associativity Is a Law, Not a Runtime Check
//
// Implementations that violate associativity silently break every
// accumulation combinator built on top of this package. The law is verified
// for all built-in instances by property tests; custom instances should do
// the same.
package combine
