package percolation

import (
	"errors"

	"github.com/katalvlaran/percolation/unionfind"
)

// Sentinel errors for percolation operations.
var (
	// ErrEmptyGrid indicates a lattice dimension below 1.
	ErrEmptyGrid = errors.New("percolation: lattice size must be >= 1")
	// ErrSiteOutOfRange indicates a row or column outside [1, n].
	ErrSiteOutOfRange = errors.New("percolation: site out of range")
)

// virtualTop is the element index of the virtual top node in both structures.
const virtualTop = 0

// neighborOffsets lists orthogonal (row, col) deltas: N, S, W, E.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Lattice is an n×n percolation system.
//
// open is a row-major mask: site (r, c) lives at (r-1)*n + (c-1).
// full spans n*n+2 elements (both virtual nodes) and answers Percolates.
// fill spans n*n+1 elements (virtual top only) and answers IsFull.
type Lattice struct {
	n      int
	open   []bool
	opened int
	bottom int // virtual bottom, present in full only

	full *unionfind.UnionFind
	fill *unionfind.UnionFind
}
