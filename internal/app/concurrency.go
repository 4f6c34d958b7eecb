package app

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Parallel3 runs three loaders concurrently. The first failure cancels the
// context the others see and is returned alone, with zero results.
func Parallel3[A, B, C any](
	ctx context.Context,
	loadA func(context.Context) (A, error),
	loadB func(context.Context) (B, error),
	loadC func(context.Context) (C, error),
) (A, B, C, error) {
	var (
		a A
		b B
		c C
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(into(gctx, loadA, &a))
	g.Go(into(gctx, loadB, &b))
	g.Go(into(gctx, loadC, &c))

	if err := g.Wait(); err != nil {
		var (
			zeroA A
			zeroB B
			zeroC C
		)

		return zeroA, zeroB, zeroC, err
	}

	return a, b, c, nil
}

func into[T any](ctx context.Context, load func(context.Context) (T, error), dst *T) func() error {
	return func() error {
		v, err := load(ctx)
		if err != nil {
			return err
		}

		*dst = v

		return nil
	}
}

// Gather runs every probe to completion and returns the results in input
// order. Probes report their own failures in T.
func Gather[T any](ctx context.Context, probes ...func(context.Context) T) []T {
	results := make([]T, len(probes))

	var wg sync.WaitGroup
	for i, probe := range probes {
		wg.Go(func() { results[i] = probe(ctx) })
	}

	wg.Wait()

	return results
}
