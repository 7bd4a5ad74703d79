package percolation

// FullSites recomputes which sites are full by breadth-first flood fill from
// every open top-row site over open orthogonal neighbors. It never touches the
// union–find structures, so it serves as an independent oracle for IsFull.
//
// The result is a row-major mask of length n²: site (r, c) is at (r-1)*n + (c-1).
//
// Time:   O(n²).
// Memory: O(n²) for the queue and output.
func FullSites(l *Lattice) []bool {
	n := l.n
	full := make([]bool, n*n)
	queue := make([]int, 0, n)

	for c := 1; c <= n; c++ {
		i := l.maskIndex(1, c)
		if l.open[i] {
			full[i] = true
			queue = append(queue, i)
		}
	}

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		ur, uc := u/n+1, u%n+1
		for _, d := range neighborOffsets {
			vr, vc := ur+d[0], uc+d[1]
			if !l.InBounds(vr, vc) {
				continue
			}
			v := l.maskIndex(vr, vc)
			if l.open[v] && !full[v] {
				full[v] = true
				queue = append(queue, v)
			}
		}
	}

	return full
}
