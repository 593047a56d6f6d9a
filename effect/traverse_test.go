// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stillwaterlabs/stillwater/effect"
)

func TestSequenceRunsConcurrentlyKeepsOrder(t *testing.T) {
	m := effect.Sequence([]effect.Effect[env, string, int]{
		sleepy(1, 30*time.Millisecond),
		sleepy(2, 0),
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, v)
}

func TestSequenceEmptyYieldsOkOfEmpty(t *testing.T) {
	m := effect.Sequence[env, string, int](nil)
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Empty(t, v)
	require.NotNil(t, v)
}

func TestTraverse(t *testing.T) {
	double := func(x int) effect.Effect[env, string, int] {
		return effect.Pure[env, string](x * 2)
	}
	m := effect.Traverse([]int{1, 2, 3}, double)
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{2, 4, 6}, v)
}

func TestTraverseAccumulatesFailures(t *testing.T) {
	check := func(x int) effect.Effect[env, string, int] {
		if x%2 != 0 {
			return effect.Fail[env, string, int]("odd")
		}
		return effect.Pure[env, string](x)
	}
	r := effect.Traverse([]int{1, 2, 3}, check).Run(context.Background(), testEnv)
	errs, ok := r.GetErr()
	require.True(t, ok)
	require.Equal(t, []string{"odd", "odd"}, errs)
}

func TestTraverseEmptyYieldsOkOfEmpty(t *testing.T) {
	m := effect.Traverse(nil, func(x int) effect.Effect[env, string, int] {
		t.Fatal("must not be invoked for empty input")
		return effect.Pure[env, string](x)
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Empty(t, v)
}
