package unionfind

// New returns a UnionFind with n singleton components numbered 0..n-1.
// n == 0 yields an empty structure; n < 0 panics with ErrNegativeSize.
// Complexity: O(n) time and memory.
func New(n int) *UnionFind {
	if n < 0 {
		panic(ErrNegativeSize)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the number of disjoint components.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of i's component.
// Every node visited on the way up is re-pointed to its grandparent
// (path halving), which keeps later walks short.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(i int) int {
	for uf.parent[i] != i {
		uf.parent[i] = uf.parent[uf.parent[i]]
		i = uf.parent[i]
	}

	return i
}

// Connected reports whether p and q belong to the same component.
func (uf *UnionFind) Connected(p, q int) bool {
	return uf.Find(p) == uf.Find(q)
}

// Union merges the components containing p and q and reports whether a merge
// happened (false when they were already connected).
//
// The root of the smaller component is attached under the root of the larger
// one and the sizes are accumulated. On equal sizes q's root goes under p's.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(p, q int) bool {
	rootP := uf.Find(p)
	rootQ := uf.Find(q)
	if rootP == rootQ {
		return false
	}

	if uf.size[rootP] < uf.size[rootQ] {
		uf.parent[rootP] = rootQ
		uf.size[rootQ] += uf.size[rootP]
	} else {
		uf.parent[rootQ] = rootP
		uf.size[rootP] += uf.size[rootQ]
	}
	uf.count--

	return true
}

// Size returns the number of elements in i's component.
func (uf *UnionFind) Size(i int) int {
	return uf.size[uf.Find(i)]
}
