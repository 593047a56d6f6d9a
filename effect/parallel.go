// ©Stillwater Authors 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package effect

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/stillwaterlabs/stillwater/result"
)

// Parallel execution strategies. All four require the environment to be
// safe for concurrent sharing; none mutates it.
//
// Failure semantics: ParAll and ParAllLimit accumulate every failure,
// ParTryAll is fail-fast, Race is first-success-wins with accumulation on
// total failure. The accumulate strategies return a raw []E of individual
// errors in submission order — deliberately not a Combinable merge, so the
// caller sees each branch's failure as its own value.
//
// Cancellation is cooperative: fail-fast and race strategies cancel their
// child context once the aggregate outcome is determined, but a branch
// that ignores its context runs to completion.

// errBatchFailed is the internal errgroup sentinel for a failed branch;
// the typed first error travels through settleOnce instead.
var errBatchFailed = errors.New("effect: parallel batch failed")

// settleOnce is an atomic one-shot guard. The first TryAcquire returns
// true, every later call returns false. Race and ParTryAll use it to make
// exactly one branch settle the aggregate outcome.
type settleOnce struct {
	used atomic.Uintptr
}

// TryAcquire claims the one shot. Safe for concurrent use.
func (s *settleOnce) TryAcquire() bool {
	return s.used.Add(1) == 1
}

// ParAll launches all effects concurrently and waits for every one to
// finish. If all succeed it resolves Ok with the results in submission
// order; if one or more fail it resolves Err with every failing branch's
// error, in submission order. An empty batch resolves Ok of an empty
// slice.
func ParAll[Env, E, A any](effects []Effect[Env, E, A]) Effect[Env, []E, []A] {
	return func(ctx context.Context, env Env) result.Result[[]E, []A] {
		outcomes := make([]result.Result[E, A], len(effects))
		var wg sync.WaitGroup
		for i, eff := range effects {
			wg.Add(1)
			go func() {
				defer wg.Done()
				outcomes[i] = eff(ctx, env)
			}()
		}
		wg.Wait()
		return collect(outcomes)
	}
}

// ParAllLimit is ParAll under a concurrency cap: at most limit effects run
// at once, excess effects queue until a slot frees. Semantics are otherwise
// identical to ParAll. limit values below 1 are treated as 1.
func ParAllLimit[Env, E, A any](effects []Effect[Env, E, A], limit int) Effect[Env, []E, []A] {
	return func(ctx context.Context, env Env) result.Result[[]E, []A] {
		if limit < 1 {
			limit = 1
		}
		sem := semaphore.NewWeighted(int64(limit))
		outcomes := make([]result.Result[E, A], len(effects))
		var wg sync.WaitGroup
		for i, eff := range effects {
			// Admission is not cancellable: every submitted effect
			// eventually runs, observing whatever state ctx is in.
			_ = sem.Acquire(context.Background(), 1)
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release(1)
				outcomes[i] = eff(ctx, env)
			}()
		}
		wg.Wait()
		return collect(outcomes)
	}
}

// ParTryAll launches all effects concurrently and resolves to the first
// failure observed — a single error, not a collection, and not necessarily
// the first in submission order. On success it resolves Ok with all
// results in submission order. The child context is cancelled on first
// failure so cooperating branches can stop early.
func ParTryAll[Env, E, A any](effects []Effect[Env, E, A]) Effect[Env, E, []A] {
	return func(ctx context.Context, env Env) result.Result[E, []A] {
		g, ctx := errgroup.WithContext(ctx)
		values := make([]A, len(effects))
		var (
			settle   settleOnce
			firstErr E
		)
		for i, eff := range effects {
			g.Go(func() error {
				r := eff(ctx, env)
				a, ok := r.Get()
				if !ok {
					if err, _ := r.GetErr(); settle.TryAcquire() {
						firstErr = err
					}
					return errBatchFailed
				}
				values[i] = a
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return result.Err[E, []A](firstErr)
		}
		return result.Ok[E](values)
	}
}

// Race launches all effects concurrently and resolves to the value of
// whichever succeeds first, without waiting for the remaining branches.
// If every effect fails it resolves Err with all errors in arrival order
// (no order guarantee). An empty batch resolves Err of an empty slice.
// Losing branches keep running in the background with a cancelled context.
func Race[Env, E, A any](effects []Effect[Env, E, A]) Effect[Env, []E, A] {
	return func(ctx context.Context, env Env) result.Result[[]E, A] {
		if len(effects) == 0 {
			return result.Err[[]E, A]([]E{})
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		var settle settleOnce
		wins := make(chan A, 1)
		// Buffered to batch size so stragglers never block after the
		// winner returns.
		losses := make(chan E, len(effects))
		for _, eff := range effects {
			go func() {
				r := eff(ctx, env)
				if a, ok := r.Get(); ok {
					if settle.TryAcquire() {
						wins <- a
					}
					return
				}
				err, _ := r.GetErr()
				losses <- err
			}()
		}
		failures := make([]E, 0, len(effects))
		for range effects {
			select {
			case a := <-wins:
				return result.Ok[[]E](a)
			case err := <-losses:
				failures = append(failures, err)
			}
		}
		return result.Err[[]E, A](failures)
	}
}

// collect splits per-branch outcomes into ordered values or ordered
// failures, per the accumulate strategies' contract.
func collect[E, A any](outcomes []result.Result[E, A]) result.Result[[]E, []A] {
	values := make([]A, 0, len(outcomes))
	var errs []E
	for _, r := range outcomes {
		if a, ok := r.Get(); ok {
			values = append(values, a)
		} else {
			err, _ := r.GetErr()
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return result.Err[[]E, []A](errs)
	}
	return result.Ok[[]E](values)
}
