// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

import "maps"

// MapOf is a map whose Combine is key union, combining colliding values
// recursively via the value type's own Combine.
// The identity element is the empty map.
type MapOf[K comparable, V Combinable[V]] map[K]V

// Combine unions two maps. Keys present in both have their values combined,
// left operand's value first. Neither operand is mutated.
//
// The result is deterministic regardless of map iteration order because
// each key's value depends only on the two operands at that key.
func (m MapOf[K, V]) Combine(other MapOf[K, V]) MapOf[K, V] {
	if len(other) == 0 {
		return m
	}
	if len(m) == 0 {
		return other
	}
	merged := make(MapOf[K, V], len(m)+len(other))
	maps.Copy(merged, m)
	for k, v := range other {
		if existing, ok := merged[k]; ok {
			merged[k] = existing.Combine(v)
		} else {
			merged[k] = v
		}
	}
	return merged
}

// Empty returns the identity element (the empty map).
func (MapOf[K, V]) Empty() MapOf[K, V] {
	return MapOf[K, V]{}
}

// Set is a map-backed set whose Combine is union.
// The identity element is the empty set.
type Set[K comparable] map[K]struct{}

// SetOf builds a Set from its arguments.
func SetOf[K comparable](items ...K) Set[K] {
	s := make(Set[K], len(items))
	for _, k := range items {
		s[k] = struct{}{}
	}
	return s
}

// Combine unions two sets. Neither operand is mutated.
func (s Set[K]) Combine(other Set[K]) Set[K] {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	merged := make(Set[K], len(s)+len(other))
	maps.Copy(merged, s)
	maps.Copy(merged, other)
	return merged
}

// Empty returns the identity element (the empty set).
func (Set[K]) Empty() Set[K] {
	return Set[K]{}
}

// Has reports whether k is a member of the set.
func (s Set[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}

// Intersection is a map-backed set whose Combine is intersection rather
// than union. There is no identity element: the would-be identity is the
// set of all keys, which is not representable.
type Intersection[K comparable] map[K]struct{}

// IntersectionOf builds an Intersection from its arguments.
func IntersectionOf[K comparable](items ...K) Intersection[K] {
	s := make(Intersection[K], len(items))
	for _, k := range items {
		s[k] = struct{}{}
	}
	return s
}

// Combine intersects two sets. Neither operand is mutated.
func (s Intersection[K]) Combine(other Intersection[K]) Intersection[K] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	merged := make(Intersection[K], len(small))
	for k := range small {
		if _, ok := large[k]; ok {
			merged[k] = struct{}{}
		}
	}
	return merged
}

// Has reports whether k is a member of the set.
func (s Intersection[K]) Has(k K) bool {
	_, ok := s[k]
	return ok
}
