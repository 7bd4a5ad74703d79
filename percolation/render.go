package percolation

import (
	"fmt"
	"strings"

	"github.com/awalterschulze/gographviz"
)

// Glyphs used by String.
const (
	glyphClosed = '█'
	glyphOpen   = ' '
	glyphFull   = '░'
)

// dotGraphName is the graph identifier used by DOT.
const dotGraphName = "lattice"

// String draws the lattice row by row: █ for closed sites, a blank for open
// sites that are not full, and ░ for full sites. Each row ends with a newline.
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(l.n * (l.n*3 + 1))
	for r := 1; r <= l.n; r++ {
		for c := 1; c <= l.n; c++ {
			switch {
			case l.IsFull(r, c):
				b.WriteRune(glyphFull)
			case l.IsOpen(r, c):
				b.WriteRune(glyphOpen)
			default:
				b.WriteRune(glyphClosed)
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// siteNodeID names the DOT node of site (row, col).
func siteNodeID(row, col int) string {
	return fmt.Sprintf("s%d_%d", row, col)
}

// DOT exports the lattice as an undirected Graphviz graph.
//
// Every site becomes a node pinned at its grid position and colored by state
// (black closed, white open, lightblue full). Edges join orthogonally adjacent
// open sites. Two box nodes, "top" and "bottom", stand for the virtual nodes
// and are linked to the open sites of the first and last rows.
//
// Complexity: O(n²).
func (l *Lattice) DOT() (string, error) {
	g := gographviz.NewGraph()
	if err := g.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := g.SetDir(false); err != nil {
		return "", err
	}
	if err := g.AddAttr(dotGraphName, "layout", "neato"); err != nil {
		return "", err
	}

	for _, v := range []struct{ id, row string }{{"top", "0"}, {"bottom", fmt.Sprint(-(l.n + 1))}} {
		attrs := map[string]string{
			"shape": "box",
			"pos":   fmt.Sprintf("%q", fmt.Sprintf("%g,%s!", float64(l.n+1)/2, v.row)),
		}
		if err := g.AddNode(dotGraphName, v.id, attrs); err != nil {
			return "", err
		}
	}

	for r := 1; r <= l.n; r++ {
		for c := 1; c <= l.n; c++ {
			color := "black"
			switch {
			case l.IsFull(r, c):
				color = "lightblue"
			case l.IsOpen(r, c):
				color = "white"
			}
			attrs := map[string]string{
				"shape":     "square",
				"style":     "filled",
				"fillcolor": color,
				"label":     fmt.Sprintf("%q", fmt.Sprintf("%d,%d", r, c)),
				"pos":       fmt.Sprintf("%q", fmt.Sprintf("%d,%d!", c, -r)),
			}
			if err := g.AddNode(dotGraphName, siteNodeID(r, c), attrs); err != nil {
				return "", err
			}
		}
	}

	for r := 1; r <= l.n; r++ {
		for c := 1; c <= l.n; c++ {
			if !l.IsOpen(r, c) {
				continue
			}
			id := siteNodeID(r, c)
			if r == 1 {
				if err := g.AddEdge("top", id, false, nil); err != nil {
					return "", err
				}
			}
			if r == l.n {
				if err := g.AddEdge(id, "bottom", false, nil); err != nil {
					return "", err
				}
			}
			// Right and down only, so each adjacency is emitted once.
			if c < l.n && l.IsOpen(r, c+1) {
				if err := g.AddEdge(id, siteNodeID(r, c+1), false, nil); err != nil {
					return "", err
				}
			}
			if r < l.n && l.IsOpen(r+1, c) {
				if err := g.AddEdge(id, siteNodeID(r+1, c), false, nil); err != nil {
					return "", err
				}
			}
		}
	}

	return g.String(), nil
}
