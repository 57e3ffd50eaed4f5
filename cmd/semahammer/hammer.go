package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/thetarby/semalock"
)

// Result summarizes a successful run.
type Result struct {
	Acquisitions int
	Elapsed      time.Duration
}

func run(ctx context.Context, cfg Config) (Result, error) {
	switch cfg.Strategy {
	case strategySpin:
		return runWith[semalock.Spin](ctx, cfg)
	case strategyYield:
		return runWith[semalock.Yield](ctx, cfg)
	}
	return Result{}, fmt.Errorf("unknown strategy %q", cfg.Strategy)
}

func runWith[S semalock.WaitStrategy](ctx context.Context, cfg Config) (Result, error) {
	start := time.Now()
	var (
		n   int
		err error
	)
	switch cfg.Lock {
	case lockMutex:
		n, err = hammerMutex(ctx, semalock.NewMutex[S](), cfg.Workers, cfg.Iterations)
	case lockRWLock:
		n, err = hammerRWLock(ctx, semalock.NewRWLock[S](), cfg.Workers, cfg.Readers, cfg.Iterations)
	default:
		err = fmt.Errorf("unknown lock %q", cfg.Lock)
	}
	return Result{Acquisitions: n, Elapsed: time.Since(start)}, err
}

// hammerMutex increments a plain counter under m from every worker and checks
// that no two workers are ever inside together and that no increment is lost.
// Holders yield inside the critical section so that a lock which fails to
// exclude is caught even with GOMAXPROCS=1.
func hammerMutex(ctx context.Context, m semalock.RawMutex, workers, iterations int) (int, error) {
	var (
		count  int
		inside atomic.Int32
	)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				m.Lock()
				n := inside.Inc()
				runtime.Gosched()
				count++
				inside.Dec()
				m.Unlock()
				if n != 1 {
					return fmt.Errorf("mutual exclusion violated: %d holders", n)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return count, err
	}
	if want := workers * iterations; count != want {
		return count, fmt.Errorf("lost updates: counted %d, want %d", count, want)
	}
	return count, nil
}

// Readers add 1 to activity and writers add writerWeight, so a reader must see
// a value in [1, writerWeight) and a writer exactly writerWeight.
const writerWeight = 10000

func hammerRWLock(ctx context.Context, rw semalock.RawRWLock, writers, readers, iterations int) (int, error) {
	var (
		activity     atomic.Int32
		acquisitions atomic.Int64
	)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rw.Lock()
				n := activity.Add(writerWeight)
				runtime.Gosched()
				activity.Sub(writerWeight)
				rw.Unlock()
				if n != writerWeight {
					return fmt.Errorf("writer saw activity %d", n)
				}
				acquisitions.Inc()
			}
			return nil
		})
	}
	for i := 0; i < readers; i++ {
		g.Go(func() error {
			for j := 0; j < iterations; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				rw.RLock()
				n := activity.Inc()
				runtime.Gosched()
				activity.Dec()
				rw.RUnlock()
				if n < 1 || n >= writerWeight {
					return fmt.Errorf("reader saw activity %d", n)
				}
				acquisitions.Inc()
			}
			return nil
		})
	}
	err := g.Wait()
	return int(acquisitions.Load()), err
}
