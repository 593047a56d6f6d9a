// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stillwaterlabs/stillwater/effect"
)

func TestContextErrorTrailOrder(t *testing.T) {
	// Innermost call first: context pushed as the error propagates up.
	e := effect.NewContextError(errors.New("boom")).Context("A").Context("B")
	require.Equal(t, []string{"A", "B"}, e.Trail())
}

func TestContextErrorDisplayFormat(t *testing.T) {
	e := effect.NewContextError(errors.New("file not found")).
		Context("reading config").
		Context("loading application")
	require.Equal(t,
		"Error: file not found\n  -> reading config\n  -> loading application",
		e.Error())
	require.Equal(t, e.Error(), e.String())
}

func TestContextErrorNoTrail(t *testing.T) {
	e := effect.NewContextError(errors.New("boom"))
	require.Equal(t, "Error: boom", e.Error())
}

func TestContextErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	require.ErrorIs(t, effect.NewContextError(inner), inner)

	// Non-error inner payloads unwrap to nil.
	require.Nil(t, effect.NewContextError("just text").Unwrap())
}

func TestContextErrorTrailIsACopy(t *testing.T) {
	e := effect.NewContextError(errors.New("x")).Context("A")
	trail := e.Trail()
	trail[0] = "mutated"
	require.Equal(t, []string{"A"}, e.Trail())
}

func TestAnnotateWrapsFailure(t *testing.T) {
	m := effect.Annotate(effect.Fail[env, string, int]("bad"), "fetching user")
	r := m.Run(context.Background(), testEnv)
	ce, ok := r.GetErr()
	require.True(t, ok)
	require.Equal(t, "bad", ce.Inner())
	require.Equal(t, []string{"fetching user"}, ce.Trail())
}

func TestAnnotatePassesSuccessThrough(t *testing.T) {
	m := effect.Annotate(effect.Pure[env, string](7), "fetching user")
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func TestContextComposesAcrossChain(t *testing.T) {
	// Each link adds its own context without disturbing inner layers;
	// the trail reads from point of failure to point of observation.
	leaf := effect.Annotate(effect.Fail[env, string, int]("no such row"), "querying account")
	chained := effect.Context(effect.AndThen(leaf, func(v int) effect.Effect[env, *effect.ContextError[string], int] {
		return effect.Pure[env, *effect.ContextError[string]](v)
	}), "rendering dashboard")

	r := chained.Run(context.Background(), testEnv)
	ce, _ := r.GetErr()
	require.Equal(t, "no such row", ce.Inner())
	require.Equal(t, []string{"querying account", "rendering dashboard"}, ce.Trail())
	require.Equal(t,
		"Error: no such row\n  -> querying account\n  -> rendering dashboard",
		ce.Error())
}
