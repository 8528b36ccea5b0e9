package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/YuminosukeSato/mdlp/pkg/errors"
)

// Workers resolves a requested job count: values <= 0 mean one worker per CPU,
// and there are never more workers than items.
func Workers(requested, items int) int {
	n := requested
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > items {
		n = items
	}
	if n < 1 {
		n = 1
	}
	return n
}

// ForEach runs fn(ctx, i) for every i in [0, items) on at most workers
// goroutines. The first error cancels the context handed to the remaining
// tasks; tasks that have not started yet are skipped. A panic inside fn is
// recovered and reported as an error.
//
// Cancellation is coarse: a task that is already running is not interrupted.
func ForEach(ctx context.Context, items, workers int, fn func(ctx context.Context, i int) error) error {
	if items == 0 {
		return ctx.Err()
	}
	workers = Workers(workers, items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < items; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer errors.Recover(&err, "parallel.ForEach")
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// Parallelize divides items into contiguous ranges, one per CPU core, and runs
// fn on each range concurrently.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := Workers(0, items)
	chunkSize := (items + numWorkers - 1) / numWorkers

	g := new(errgroup.Group)
	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items is
// at most threshold, and through Parallelize otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
