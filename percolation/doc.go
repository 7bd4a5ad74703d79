// Package percolation models an n-by-n site lattice on which sites open one
// at a time, and answers dynamic connectivity questions about it.
//
// What:
//
//   - Lattice holds n×n sites addressed by 1-indexed (row, col), all closed
//     at construction. Open is monotonic: a site never closes again.
//   - IsFull reports whether an open site is connected to the top row
//     through open neighbors (4-connectivity, no wraparound).
//   - Percolates reports whether the top row is connected to the bottom row.
//   - String renders the lattice as text; DOT exports it for Graphviz.
//   - FullSites recomputes fullness by flood fill, without union–find.
//
// How:
//
//	Two virtual nodes collapse whole rows into single elements: the virtual
//	top (index 0) joins every open site of row 1, the virtual bottom
//	(index n·n+1) joins every open site of row n. Site (r, c) is element
//	(r-1)·n + c.
//
//	                 [top]
//	               /   |   \
//	           (1,1) (1,2) (1,3)
//	             ·     ·     ·
//	           (n,1) (n,2) (n,3)
//	               \   |   /
//	               [bottom]
//
//	The lattice keeps TWO union–find structures. The first contains both
//	virtual nodes and answers Percolates. The second contains only the
//	virtual top and answers IsFull. With a single structure, once the
//	system percolates every open bottom-row site would reach the top through
//	the virtual bottom ("backwash") and be reported full without a real path.
//
// Complexity:
//
//   - New:        O(n²) time and memory.
//   - Open:       amortized O(α(n²)), at most 4 neighbor unions per structure.
//   - IsOpen:     O(1).
//   - IsFull:     amortized O(α(n²)).
//   - Percolates: amortized O(α(n²)).
//   - FullSites:  O(n²).
//
// Errors:
//
//   - ErrEmptyGrid:      New called with n < 1.
//   - ErrSiteOutOfRange: wrapped in the panic value raised for coordinates
//     outside [1, n]; such calls are caller bugs, not recoverable conditions.
//
// A Lattice is not safe for concurrent use.
package percolation
