// Package pool runs fork-join work on a fixed number of workers.
package pool

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Pool bounds the number of goroutines doing work at the same time.
// Its size is fixed at creation.
type Pool struct {
	size int
	sem  *semaphore.Weighted
}

// New creates a pool with the given number of workers.
func New(size int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("pool size must be > 0, got %d", size)
	}
	return &Pool{
		size: size,
		sem:  semaphore.NewWeighted(int64(size)),
	}, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.size
}

// Each calls fn for every index in [0, n) with at most Size calls in flight.
// The first error cancels the context handed to the other calls and is returned.
func (p *Pool) Each(ctx context.Context, n int, fn func(ctx context.Context, i int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Do runs fn while holding one worker slot. Only leaf work should call Do;
// nested Each calls hold no slot, so nesting cannot deadlock.
func (p *Pool) Do(ctx context.Context, fn func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	defer p.sem.Release(1)
	return fn()
}
