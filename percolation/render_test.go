package percolation_test

import (
	"strings"
	"testing"

	"github.com/awalterschulze/gographviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDOT_RoundTrip exports a small lattice and parses it back.
//
//	open sites: (1,1) (2,1) (2,2) (3,3)
//	edges:      top–(1,1), (1,1)–(2,1), (2,1)–(2,2), (3,3)–bottom
func TestDOT_RoundTrip(t *testing.T) {
	l := mustLattice(t, 3)
	l.Open(1, 1)
	l.Open(2, 1)
	l.Open(2, 2)
	l.Open(3, 3)

	out, err := l.DOT()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "graph lattice"), "undirected graph expected:\n%s", out)

	ast, err := gographviz.Parse([]byte(out))
	require.NoError(t, err)
	g := gographviz.NewGraph()
	require.NoError(t, gographviz.Analyse(ast, g))

	assert.Len(t, g.Nodes.Nodes, 9+2)
	assert.Len(t, g.Edges.Edges, 4)

	full := g.Nodes.Lookup["s2_2"]
	require.NotNil(t, full)
	assert.Equal(t, "lightblue", full.Attrs["fillcolor"])

	closed := g.Nodes.Lookup["s1_3"]
	require.NotNil(t, closed)
	assert.Equal(t, "black", closed.Attrs["fillcolor"])

	// Open but not full.
	assert.Equal(t, "white", g.Nodes.Lookup["s3_3"].Attrs["fillcolor"])
}

func TestDOT_Fresh(t *testing.T) {
	l := mustLattice(t, 2)
	out, err := l.DOT()
	require.NoError(t, err)

	ast, err := gographviz.Parse([]byte(out))
	require.NoError(t, err)
	g := gographviz.NewGraph()
	require.NoError(t, gographviz.Analyse(ast, g))
	assert.Len(t, g.Nodes.Nodes, 6)
	assert.Empty(t, g.Edges.Edges)
}
