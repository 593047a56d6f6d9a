// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"fmt"
	"strings"
)

// ContextError wraps an inner error with an ordered trail of human-readable
// context strings. The trail order equals the order of Context calls from
// point of failure to point of observation (innermost first).
type ContextError[E any] struct {
	inner E
	trail []string
}

// NewContextError wraps an inner error with an empty trail.
func NewContextError[E any](inner E) *ContextError[E] {
	return &ContextError[E]{inner: inner}
}

// Context pushes msg onto the trail and returns the receiver for chaining.
func (c *ContextError[E]) Context(msg string) *ContextError[E] {
	c.trail = append(c.trail, msg)
	return c
}

// Inner returns the wrapped error.
func (c *ContextError[E]) Inner() E {
	return c.inner
}

// Trail returns a copy of the context trail, innermost first.
func (c *ContextError[E]) Trail() []string {
	out := make([]string, len(c.trail))
	copy(out, c.trail)
	return out
}

// Error renders the stable multi-line trail format:
//
//	Error: <inner error display>
//	  -> <innermost context>
//	  -> <outermost context>
//
// Tooling parses this output; the format must not change.
func (c *ContextError[E]) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %v", c.inner)
	for _, msg := range c.trail {
		b.WriteString("\n  -> ")
		b.WriteString(msg)
	}
	return b.String()
}

// String returns the same rendering as Error.
func (c *ContextError[E]) String() string {
	return c.Error()
}

// Unwrap exposes the inner error to errors.Is/As when E is itself an
// error; otherwise it returns nil.
func (c *ContextError[E]) Unwrap() error {
	if err, ok := any(c.inner).(error); ok {
		return err
	}
	return nil
}

// Annotate performs the first context wrap on an effect: on failure the
// error is wrapped in a ContextError carrying msg as the innermost trail
// entry. Success passes through untouched. Further annotations on the
// wrapped effect go through Context, which extends the trail without
// changing the error type again — trails never nest.
func Annotate[Env, E, A any](m Effect[Env, E, A], msg string) Effect[Env, *ContextError[E], A] {
	return MapErr(m, func(err E) *ContextError[E] {
		return NewContextError(err).Context(msg)
	})
}

// Context pushes msg onto the trail of an already-annotated effect's
// failure. Success passes through untouched. Context composes across
// AndThen chains: each link may add its own entry without disturbing
// inner layers.
func Context[Env, E, A any](m Effect[Env, *ContextError[E], A], msg string) Effect[Env, *ContextError[E], A] {
	return MapErr(m, func(err *ContextError[E]) *ContextError[E] {
		return err.Context(msg)
	})
}
