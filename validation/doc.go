// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package validation provides eager success/failure values whose failures
// accumulate instead of short-circuiting.
//
// A Validation[E, A] is either Success (payload A) or Failure (payload E),
// where E carries a [combine.Combinable] instance. The accumulation
// combinators ([All2] through [All12], [AllSlice], [AllSeq], [Traverse],
// [Sequence]) evaluate every member and merge all failures left to right via
// Combine, so a caller validating n independent inputs sees every failure at
// once rather than the first.
//
// [AndThen] is the single short-circuiting operation: it expresses a
// dependency between checks, so a failed prerequisite suppresses the
// dependent check entirely. Everything else treats its inputs as
// independent.
//
// Validation is evaluated eagerly and synchronously. For deferred or
// concurrent computation, lift a Validation into the effect package with
// effect.FromValidation.
package validation
