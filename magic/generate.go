package magic

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/daystram/magicgen/board"
	"github.com/daystram/magicgen/position"
)

// Generate finds an entry for every square, sizing each table by the number of
// relevant squares. It returns the same entries as GenerateParallel for the
// same options.
func Generate(dirs []position.Direction, opts ...SearchOption) ([]*Entry, error) {
	cfg := newSearchConfig(opts)
	seeds := squareSeeds(cfg.rand)

	entries := make([]*Entry, board.TotalCells)
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		e, err := find(cfg.forSquare(seeds[pos]), pos, dirs, uint8(board.RelevantBits(pos, dirs...)))
		if err != nil {
			return nil, fmt.Errorf("square %s: %w", pos, err)
		}
		entries[pos] = e
	}
	return entries, nil
}

// GenerateParallel is Generate with squares searched on up to workers
// goroutines (unlimited when workers <= 0). Every square gets its own
// generator, so the result does not depend on scheduling.
func GenerateParallel(ctx context.Context, dirs []position.Direction, workers int, opts ...SearchOption) ([]*Entry, error) {
	cfg := newSearchConfig(opts)
	seeds := squareSeeds(cfg.rand)

	entries := make([]*Entry, board.TotalCells)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for pos := position.Pos(0); pos < board.TotalCells; pos++ {
		pos := pos
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e, err := find(cfg.forSquare(seeds[pos]), pos, dirs, uint8(board.RelevantBits(pos, dirs...)))
			if err != nil {
				return fmt.Errorf("square %s: %w", pos, err)
			}
			entries[pos] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}

func squareSeeds(r *board.PseudoRand) [board.TotalCells]uint64 {
	var seeds [board.TotalCells]uint64
	for i := range seeds {
		seeds[i] = r.Uint64()
	}
	return seeds
}

func (cfg *searchConfig) forSquare(seed uint64) *searchConfig {
	local := *cfg
	local.rand = board.NewPseudoRand(seed)
	return &local
}
