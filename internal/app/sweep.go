package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/rashi-tree-guide/internal/domain"
)

// SweepResult is the outcome of one rashi in a sweep.
type SweepResult[T any] struct {
	Key   domain.RashiKey
	Value T
	Err   error
}

// SweepRashis calls fn once per rashi key with at most limit calls in
// flight. Every outcome is collected; one failure does not cancel the rest.
// Results are in zodiac order. A limit below one means no bound.
func SweepRashis[T any](
	ctx context.Context,
	limit int,
	fn func(context.Context, domain.RashiKey) (T, error),
) []SweepResult[T] {
	keys := domain.RashiKeys()
	results := make([]SweepResult[T], len(keys))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, key := range keys {
		g.Go(func() error {
			value, err := fn(ctx, key)
			results[i] = SweepResult[T]{Key: key, Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// Failed returns the results that carry an error.
func Failed[T any](results []SweepResult[T]) []SweepResult[T] {
	var failed []SweepResult[T]

	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}

	return failed
}
