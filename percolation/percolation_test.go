package percolation_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

// mustLattice builds an n×n lattice or stops the test.
func mustLattice(t *testing.T, n int) *percolation.Lattice {
	t.Helper()
	l, err := percolation.New(n)
	require.NoError(t, err)

	return l
}

// recoveredError runs fn and returns the error it panicked with, if any.
func recoveredError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}

func TestNew_Errors(t *testing.T) {
	for _, n := range []int{0, -1, -10} {
		l, err := percolation.New(n)
		assert.Nil(t, l)
		assert.ErrorIs(t, err, percolation.ErrEmptyGrid, "New(%d)", n)
	}
}

func TestNew_AllClosed(t *testing.T) {
	l := mustLattice(t, 4)
	assert.Equal(t, 4, l.Size())
	assert.Zero(t, l.NumberOfOpenSites())
	assert.False(t, l.Percolates())
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			assert.False(t, l.IsOpen(r, c))
			assert.False(t, l.IsFull(r, c))
		}
	}
}

// TestBasics opens column 2 of a 5×5 lattice top to bottom.
func TestBasics(t *testing.T) {
	l := mustLattice(t, 5)
	assert.False(t, l.IsOpen(1, 2))
	l.Open(1, 2)
	assert.True(t, l.IsOpen(1, 2))
	assert.True(t, l.IsFull(1, 2))

	assert.False(t, l.IsFull(2, 2), "closed site is never full")
	l.Open(2, 2)
	assert.True(t, l.IsFull(2, 2))

	l.Open(3, 2)
	l.Open(4, 2)
	assert.False(t, l.Percolates())

	l.Open(5, 2)
	assert.True(t, l.Percolates())
	assert.True(t, l.IsFull(5, 2))
	assert.Equal(t, 5, l.NumberOfOpenSites())
}

// TestIsFull_RequiresTopPath opens a site below a closed top site first.
func TestIsFull_RequiresTopPath(t *testing.T) {
	l := mustLattice(t, 5)
	l.Open(2, 2)
	assert.True(t, l.IsOpen(2, 2))
	assert.False(t, l.IsFull(2, 2), "no open site above yet")

	l.Open(1, 2)
	assert.True(t, l.IsFull(2, 2))
}

func TestSingleSite(t *testing.T) {
	l := mustLattice(t, 1)
	assert.False(t, l.Percolates())
	l.Open(1, 1)
	assert.True(t, l.Percolates())
	assert.True(t, l.IsFull(1, 1))
}

// TestBackwash: a percolating column plus an isolated open bottom-right site.
// The isolated site reaches the virtual bottom, yet it must not be full.
func TestBackwash(t *testing.T) {
	l := mustLattice(t, 4)
	for r := 1; r <= 4; r++ {
		l.Open(r, 1)
	}
	l.Open(4, 4)

	require.True(t, l.Percolates())
	assert.True(t, l.IsFull(4, 1))
	assert.False(t, l.IsFull(4, 4), "backwash through the virtual bottom")
	assert.Equal(t, "░███\n░███\n░███\n░██ \n", l.String())
}

// TestBackwash_FullBottomRow opens the whole bottom row without any top path.
func TestBackwash_FullBottomRow(t *testing.T) {
	l := mustLattice(t, 4)
	for c := 1; c <= 4; c++ {
		l.Open(4, c)
	}
	l.Open(1, 3)
	l.Open(2, 3)

	assert.False(t, l.Percolates())
	for c := 1; c <= 4; c++ {
		assert.False(t, l.IsFull(4, c), "bottom site (4,%d)", c)
	}
	assert.True(t, l.IsFull(2, 3))

	l.Open(3, 3)
	assert.True(t, l.Percolates())
	for c := 1; c <= 4; c++ {
		assert.True(t, l.IsFull(4, c), "bottom site (4,%d) now has a real path", c)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	once := mustLattice(t, 3)
	twice := mustLattice(t, 3)
	for _, s := range [][2]int{{1, 1}, {2, 1}, {2, 2}, {3, 3}} {
		once.Open(s[0], s[1])
		twice.Open(s[0], s[1])
		twice.Open(s[0], s[1])
	}

	assert.Equal(t, once, twice, "second Open must not change internal state")
	assert.Equal(t, 4, twice.NumberOfOpenSites())
}

func TestOutOfRange_Panics(t *testing.T) {
	l := mustLattice(t, 3)
	bad := [][2]int{{0, 1}, {1, 0}, {4, 1}, {1, 4}, {-1, -1}}
	for _, s := range bad {
		r, c := s[0], s[1]
		assert.False(t, l.InBounds(r, c))

		err := recoveredError(func() { l.Open(r, c) })
		assert.True(t, errors.Is(err, percolation.ErrSiteOutOfRange), "Open(%d,%d) panic = %v", r, c, err)
		assert.Panics(t, func() { l.IsOpen(r, c) })
		assert.Panics(t, func() { l.IsFull(r, c) })
	}
	assert.Zero(t, l.NumberOfOpenSites())
}

// TestIsFull_MatchesFloodFill opens random sites and compares IsFull with the
// breadth-first oracle after every step.
func TestIsFull_MatchesFloodFill(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 12} {
		l := mustLattice(t, n)
		for step := 0; step < n*n; step++ {
			l.Open(r.Intn(n)+1, r.Intn(n)+1)

			oracle := percolation.FullSites(l)
			topToBottom := false
			for row := 1; row <= n; row++ {
				for col := 1; col <= n; col++ {
					want := oracle[(row-1)*n+col-1]
					require.Equal(t, want, l.IsFull(row, col), "n=%d step=%d site (%d,%d)", n, step, row, col)
					if row == n && want {
						topToBottom = true
					}
				}
			}
			require.Equal(t, topToBottom, l.Percolates(), "n=%d step=%d", n, step)
		}
	}
}

// TestPercolates_AllOpen guarantees termination of any opening sequence.
func TestPercolates_AllOpen(t *testing.T) {
	l := mustLattice(t, 6)
	for r := 1; r <= 6; r++ {
		for c := 1; c <= 6; c++ {
			l.Open(r, c)
		}
	}
	assert.True(t, l.Percolates())
	assert.Equal(t, 36, l.NumberOfOpenSites())
}

func TestString_Fresh(t *testing.T) {
	l := mustLattice(t, 2)
	assert.Equal(t, "██\n██\n", l.String())
}
