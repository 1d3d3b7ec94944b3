// SPDX-License-Identifier: MIT

package cooccurrence

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// BuildParallel is Build with the pair-counting stage spread over workers
// goroutines. Indexing stays sequential so ids are identical to Build; each
// worker counts a contiguous slice of recipes into a private map and the
// partial maps are merged once all workers finish.
//
// Errors: ErrBadWorkers for workers < 1; ctx.Err() if the context is
// cancelled before counting completes.
func BuildParallel(ctx context.Context, recipes []Recipe, workers int) (*Relation, error) {
	if workers < 1 {
		return nil, fmt.Errorf("BuildParallel(%d): %w", workers, ErrBadWorkers)
	}
	rel := index(recipes)

	n := len(rel.recipeIngredients)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		rel.pairs = countPairs(rel.recipeIngredients)
		return rel, nil
	}

	partial := make([]map[Pair]int, workers)
	chunk := (n + workers - 1) / workers
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := min(w*chunk, n), min((w+1)*chunk, n)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			partial[w] = countPairs(rel.recipeIngredients[lo:hi])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("BuildParallel: %w", err)
	}

	// reduce
	rel.pairs = partial[0]
	for _, p := range partial[1:] {
		for k, v := range p {
			rel.pairs[k] += v
		}
	}

	return rel, nil
}
