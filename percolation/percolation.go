package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolation/unionfind"
)

// New builds an n×n lattice with every site closed.
// Returns ErrEmptyGrid if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Lattice, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, n)
	}
	sites := n * n

	return &Lattice{
		n:      n,
		open:   make([]bool, sites),
		bottom: sites + 1,
		full:   unionfind.New(sites + 2),
		fill:   unionfind.New(sites + 1),
	}, nil
}

// Size returns the lattice dimension n.
func (l *Lattice) Size() int {
	return l.n
}

// InBounds reports whether (row, col) addresses a site, i.e. both lie in [1, n].
// Complexity: O(1).
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 1 && row <= l.n && col >= 1 && col <= l.n
}

// NumberOfOpenSites returns how many distinct sites have been opened.
func (l *Lattice) NumberOfOpenSites() int {
	return l.opened
}

// Open opens site (row, col) if it is not open already.
//
// Behavior:
//  1. Mark the site open.
//  2. Row 1 sites join the virtual top in both structures.
//  3. Row n sites join the virtual bottom in the percolation structure only.
//  4. Every already-open orthogonal neighbor is joined in both structures.
//
// A second call on the same site is a no-op. Coordinates outside [1, n]
// panic with an error wrapping ErrSiteOutOfRange.
// Complexity: amortized O(α(n²)).
func (l *Lattice) Open(row, col int) {
	l.mustInBounds(row, col)
	if l.open[l.maskIndex(row, col)] {
		return
	}
	l.open[l.maskIndex(row, col)] = true
	l.opened++

	site := l.fieldIndex(row, col)
	if row == 1 {
		l.full.Union(virtualTop, site)
		l.fill.Union(virtualTop, site)
	}
	// Not an else-branch: on a 1×1 lattice the site touches both edges.
	if row == l.n {
		l.full.Union(site, l.bottom)
	}

	for _, d := range neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !l.InBounds(nr, nc) || !l.open[l.maskIndex(nr, nc)] {
			continue
		}
		neighbor := l.fieldIndex(nr, nc)
		l.full.Union(neighbor, site)
		l.fill.Union(neighbor, site)
	}
}

// IsOpen reports whether site (row, col) is open.
// Panics with ErrSiteOutOfRange for coordinates outside [1, n].
func (l *Lattice) IsOpen(row, col int) bool {
	l.mustInBounds(row, col)
	return l.open[l.maskIndex(row, col)]
}

// IsFull reports whether site (row, col) is open and connected to the top
// row through open sites. It consults the structure without a virtual
// bottom, so bottom-row sites are never full by backwash.
// Panics with ErrSiteOutOfRange for coordinates outside [1, n].
func (l *Lattice) IsFull(row, col int) bool {
	return l.IsOpen(row, col) && l.fill.Connected(virtualTop, l.fieldIndex(row, col))
}

// Percolates reports whether the top row is connected to the bottom row.
// A freshly built lattice never percolates.
func (l *Lattice) Percolates() bool {
	return l.full.Connected(virtualTop, l.bottom)
}

// fieldIndex maps (row, col) to its union–find element: (row-1)*n + col.
func (l *Lattice) fieldIndex(row, col int) int {
	return (row-1)*l.n + col
}

// maskIndex maps (row, col) to its position in the open mask.
func (l *Lattice) maskIndex(row, col int) int {
	return (row-1)*l.n + col - 1
}

func (l *Lattice) mustInBounds(row, col int) {
	if !l.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) on a %dx%d lattice", ErrSiteOutOfRange, row, col, l.n, l.n))
	}
}
