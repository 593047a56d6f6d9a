// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package combine

// List is an ordered sequence whose Combine is concatenation.
// The identity element is the empty list.
type List[A any] []A

// ListOf builds a List from its arguments.
func ListOf[A any](items ...A) List[A] {
	return items
}

// Combine concatenates two lists, left operand first.
//
// Allocation note: when either operand is empty the other is returned
// unchanged, so folding many singleton failures does not copy on the
// degenerate paths.
func (l List[A]) Combine(other List[A]) List[A] {
	if len(other) == 0 {
		return l
	}
	if len(l) == 0 {
		return other
	}
	merged := make(List[A], 0, len(l)+len(other))
	merged = append(merged, l...)
	return append(merged, other...)
}

// Empty returns the identity element (the empty list).
func (List[A]) Empty() List[A] {
	return nil
}

// Text is a string whose Combine is concatenation.
// The identity element is the empty string.
type Text string

// Combine concatenates two texts, left operand first.
func (t Text) Combine(other Text) Text {
	return t + other
}

// Empty returns the identity element (the empty string).
func (Text) Empty() Text {
	return ""
}
