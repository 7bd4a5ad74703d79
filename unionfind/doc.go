// Package unionfind implements a fixed-size disjoint-set (union–find)
// structure over the integers 0..n-1.
//
// What:
//
//   - UnionFind partitions n elements into disjoint components.
//   - Union merges two components using weighted union (by size).
//   - Find walks to the component root with path halving, so every visited
//     node is re-pointed to its grandparent along the way.
//   - Connected, Size and Count answer queries over the current partition.
//
// Why:
//
//   - Dynamic connectivity: answer "are p and q connected?" while edges are
//     added one at a time, e.g. sites opening on a percolation lattice.
//   - Kruskal-style merging, clustering, island counting.
//
// Complexity:
//
//   - New:                 O(n) time, O(n) memory.
//   - Find/Connected/Union: amortized O(α(n)), effectively constant.
//   - Size/Count/Len:      O(α(n)) / O(1) / O(1).
//
// The structure never allocates after New. It has no deletions and no
// iteration over component members. It is NOT safe for concurrent use: each
// goroutine must own its own instance.
//
// Indices outside [0, n) are programmer errors and panic with the runtime's
// index-out-of-range fault, exactly like a slice access.
package unionfind
