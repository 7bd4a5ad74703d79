// Package percolation is the root of a small toolkit for estimating the
// site-percolation threshold of square lattices by Monte Carlo simulation.
//
// What's inside:
//
//	unionfind/    weighted quick-union with path halving over 0..n-1
//	percolation/  n×n Lattice with virtual top/bottom nodes, backwash-free
//	              IsFull, text and Graphviz rendering, flood-fill oracle
//	threshold/    parallel, reproducible trial runner and sample statistics
//	cmd/percolation  command-line front end: percolation <n> <t>
//
// Quick ASCII example (3×3, █ closed, ░ full, blank open but not full):
//
//	░██
//	░░█
//	█░█
//
// The middle column reaches the bottom row, so the lattice percolates.
//
//	go install github.com/katalvlaran/percolation/cmd/percolation@latest
//	percolation 200 100
package percolation
