package fastcol

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForEachConcurrent scans s with fn, fanning the work out over n split
// partitions running in parallel. The first error cancels the context
// shared by the remaining partitions; n < 1 defaults to GOMAXPROCS.
//
// The scan goes through s.Split, so a shared view keeps its lock
// guarantee for every partition.
func ForEachConcurrent[E any](ctx context.Context, s SortedSet[E], n int, fn func(E) error) error {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, part := range s.Split(n) {
		g.Go(func() error {
			for it := part.Iterator(); it.HasNext(); {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := fn(it.Next()); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
