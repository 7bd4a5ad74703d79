package threshold

import (
	"context"
	"fmt"

	"github.com/katalvlaran/percolation/percolation"
)

// ctxCheckMask sets how often a trial polls its context: every 1024 draws.
const ctxCheckMask = 1<<10 - 1

// Simulate runs one trial on a fresh gridSize×gridSize lattice and returns
// the number of sites opened before it percolated. See Fill.
//
// Errors:
//   - ErrInvalidGridSize if gridSize < 1.
//   - ctx.Err() if ctx is done before the lattice percolates.
//
// Complexity: O(n² α(n²)) expected.
func Simulate(ctx context.Context, gridSize int, rng Rand) (int, error) {
	l, err := percolation.New(gridSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidGridSize, err)
	}

	return Fill(ctx, l, rng)
}

// Fill opens random sites of l until it percolates and returns how many
// closed sites it opened. Each step draws a uniform linear index in [0, n²)
// from rng, decomposes it into (row, col) and opens the site if it is still
// closed; draws that hit an open site are discarded.
//
// The loop always terminates for a uniform rng because opening all n² sites
// makes any lattice percolate. ctx is polled every 1024 draws so a biased or
// scripted rng cannot spin forever.
func Fill(ctx context.Context, l *percolation.Lattice, rng Rand) (int, error) {
	n := l.Size()
	sites := n * n

	opened := 0
	for draws := 0; !l.Percolates(); draws++ {
		if draws&ctxCheckMask == ctxCheckMask {
			if err := ctx.Err(); err != nil {
				return opened, err
			}
		}
		idx := rng.Intn(sites)
		row, col := idx/n+1, idx%n+1
		if !l.IsOpen(row, col) {
			l.Open(row, col)
			opened++
		}
	}

	return opened, nil
}
