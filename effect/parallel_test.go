// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stillwaterlabs/stillwater/effect"
	"github.com/stillwaterlabs/stillwater/result"
)

// sleepy returns an effect that succeeds with v after d.
func sleepy(v int, d time.Duration) effect.Effect[env, string, int] {
	return effect.From(func(ctx context.Context, e env) result.Result[string, int] {
		time.Sleep(d)
		return result.Ok[string](v)
	})
}

// sleepyFail returns an effect that fails with msg after d.
func sleepyFail(msg string, d time.Duration) effect.Effect[env, string, int] {
	return effect.From(func(ctx context.Context, e env) result.Result[string, int] {
		time.Sleep(d)
		return result.Err[string, int](msg)
	})
}

func TestParAllAllSucceedKeepsSubmissionOrder(t *testing.T) {
	// Completion order is reversed by the staggered delays; the result
	// order must still follow submission order.
	m := effect.ParAll([]effect.Effect[env, string, int]{
		sleepy(1, 60*time.Millisecond),
		sleepy(2, 30*time.Millisecond),
		sleepy(3, 0),
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, v)
}

func TestParAllAccumulatesEveryFailureInSubmissionOrder(t *testing.T) {
	m := effect.ParAll([]effect.Effect[env, string, int]{
		sleepyFail("first", 40*time.Millisecond),
		sleepy(2, 0),
		sleepyFail("third", 0),
	})
	r := m.Run(context.Background(), testEnv)
	errs, ok := r.GetErr()
	require.True(t, ok)
	require.Equal(t, []string{"first", "third"}, errs)
}

func TestParAllEmptyBatch(t *testing.T) {
	m := effect.ParAll[env, string, int](nil)
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Empty(t, v)
	require.NotNil(t, v)
}

func TestParAllRunsConcurrently(t *testing.T) {
	start := time.Now()
	m := effect.ParAll([]effect.Effect[env, string, int]{
		sleepy(1, 50*time.Millisecond),
		sleepy(2, 50*time.Millisecond),
		sleepy(3, 50*time.Millisecond),
	})
	r := m.Run(context.Background(), testEnv)
	require.True(t, r.IsOk())
	require.Less(t, time.Since(start), 140*time.Millisecond,
		"three 50ms effects must overlap, not run back to back")
}

func TestParTryAllYieldsSingleError(t *testing.T) {
	m := effect.ParTryAll([]effect.Effect[env, string, int]{
		sleepy(1, 0),
		sleepyFail("broken", 10*time.Millisecond),
		sleepy(3, 0),
	})
	r := m.Run(context.Background(), testEnv)
	e, ok := r.GetErr()
	require.True(t, ok)
	require.Equal(t, "broken", e)
}

func TestParTryAllSuccessKeepsSubmissionOrder(t *testing.T) {
	m := effect.ParTryAll([]effect.Effect[env, string, int]{
		sleepy(1, 30*time.Millisecond),
		sleepy(2, 0),
		sleepy(3, 15*time.Millisecond),
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, v)
}

func TestParTryAllCancelsContextOnFirstFailure(t *testing.T) {
	var sawCancel atomic.Bool
	cooperating := effect.From(func(ctx context.Context, e env) result.Result[string, int] {
		select {
		case <-ctx.Done():
			sawCancel.Store(true)
			return result.Err[string, int]("cancelled")
		case <-time.After(500 * time.Millisecond):
			return result.Ok[string](1)
		}
	})
	m := effect.ParTryAll([]effect.Effect[env, string, int]{
		cooperating,
		sleepyFail("boom", 0),
	})
	start := time.Now()
	r := m.Run(context.Background(), testEnv)
	require.True(t, r.IsErr())
	require.True(t, sawCancel.Load())
	require.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestRaceFirstSuccessWins(t *testing.T) {
	start := time.Now()
	m := effect.Race([]effect.Effect[env, string, int]{
		sleepy(1, 20*time.Millisecond),
		sleepy(2, 200*time.Millisecond),
		sleepy(3, 400*time.Millisecond),
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Less(t, time.Since(start), 350*time.Millisecond,
		"race must resolve before the slowest branch finishes")
}

func TestRaceSkipsEarlierFailures(t *testing.T) {
	m := effect.Race([]effect.Effect[env, string, int]{
		sleepyFail("fast failure", 0),
		sleepy(2, 30*time.Millisecond),
	})
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestRaceAllFailCollectsEveryError(t *testing.T) {
	m := effect.Race([]effect.Effect[env, string, int]{
		sleepyFail("a", 0),
		sleepyFail("b", 10*time.Millisecond),
		sleepyFail("c", 5*time.Millisecond),
	})
	r := m.Run(context.Background(), testEnv)
	errs, ok := r.GetErr()
	require.True(t, ok)
	require.ElementsMatch(t, []string{"a", "b", "c"}, errs)
}

func TestRaceEmptyBatch(t *testing.T) {
	m := effect.Race[env, string, int](nil)
	r := m.Run(context.Background(), testEnv)
	errs, ok := r.GetErr()
	require.True(t, ok)
	require.Empty(t, errs)
}

func TestParAllLimitSemanticsMatchParAll(t *testing.T) {
	m := effect.ParAllLimit([]effect.Effect[env, string, int]{
		sleepy(1, 10*time.Millisecond),
		sleepyFail("x", 0),
		sleepy(3, 0),
		sleepyFail("y", 5*time.Millisecond),
	}, 2)
	r := m.Run(context.Background(), testEnv)
	errs, ok := r.GetErr()
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, errs)
}

func TestParAllLimitNeverExceedsLimit(t *testing.T) {
	var inFlight, peak atomic.Int64
	track := func(v int) effect.Effect[env, string, int] {
		return effect.From(func(ctx context.Context, e env) result.Result[string, int] {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			inFlight.Add(-1)
			return result.Ok[string](v)
		})
	}
	effects := make([]effect.Effect[env, string, int], 6)
	for i := range effects {
		effects[i] = track(i)
	}
	m := effect.ParAllLimit(effects, 2)
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, v)
	require.LessOrEqual(t, peak.Load(), int64(2))
}

func TestParAllLimitFloorsLimitAtOne(t *testing.T) {
	m := effect.ParAllLimit([]effect.Effect[env, string, int]{
		sleepy(1, 0),
		sleepy(2, 0),
	}, 0)
	v, ok := m.Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, v)
}

func TestParallelSharesEnvironmentReadOnly(t *testing.T) {
	reads := make([]effect.Effect[env, string, int], 4)
	for i := range reads {
		reads[i] = effect.Asks[env, string](func(e env) int { return e.base })
	}
	v, ok := effect.ParAll(reads).Run(context.Background(), testEnv).Get()
	require.True(t, ok)
	require.Equal(t, []int{10, 10, 10, 10}, v)
}
