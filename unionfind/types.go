package unionfind

import "errors"

// ErrNegativeSize is the panic value of New when asked for fewer than zero elements.
var ErrNegativeSize = errors.New("unionfind: element count must be >= 0")

// UnionFind is a weighted quick-union structure with path halving.
//
// parent[i] is the parent pointer of element i; a root satisfies parent[i] == i.
// size[i] is meaningful only while i is a root and counts its component.
type UnionFind struct {
	parent []int
	size   []int
	count  int // number of disjoint components
}
