package percolate_test

import (
	"sort"
	"sync"
	"testing"

	"github.com/katalvlaran/percolyth/lattice"
	"github.com/katalvlaran/percolyth/pgraph"
	"github.com/katalvlaran/percolyth/percolate"
	"github.com/stretchr/testify/require"
)

func dims(comps []percolate.ComponentInfo) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = c.PercolationDim
	}
	return out
}

func TestAnalyzeAll_NilGraph(t *testing.T) {
	_, err := percolate.AnalyzeAll(nil)
	require.ErrorIs(t, err, percolate.ErrGraphNil)
}

// A graph with vertices but no edges: every vertex is its own component
// with dimension 0.
func TestAnalyzeAll_EmptyComponents(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(29))

	comps, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)
	require.Len(t, comps, 30)
	for i, c := range comps {
		require.Equal(t, i, c.ComponentIndex)
		require.Equal(t, 0, c.PercolationDim)
		require.Len(t, c.Vertices, 1)
	}
}

// Growing a single chain one edge at a time: the component count shrinks
// by one per edge and no chain ever percolates.
func TestAnalyzeAll_ChainCompaction(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(29))

	for i := 0; i < 29; i++ {
		require.NoError(t, g.AddEdge(i, i+1, lattice.Zero))

		comps, err := percolate.AnalyzeAll(g)
		require.NoError(t, err)
		require.Len(t, comps, 30-i-1)
		for _, c := range comps {
			require.Equal(t, 0, c.PercolationDim)
		}
	}
}

// A ring that closes back on itself with zero net translation stays
// dimension 0 despite being a single large cycle.
func TestAnalyzeAll_ClosedLoopTrivialTranslation(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(29))
	for i := 0; i < 29; i++ {
		require.NoError(t, g.AddEdge(i, i+1, lattice.Zero))
	}
	require.NoError(t, g.AddEdge(29, 0, lattice.Zero))

	comps, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Equal(t, 0, comps[0].PercolationDim)
	require.Len(t, comps[0].Vertices, 30)
}

// Self-loops on otherwise isolated vertices: each loop's translation
// contributes directly to its own vertex's basis, so stacking
// independent loops raises that vertex's dimension one at a time.
func TestAnalyzeAll_SingleVertexSelfLoops(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(6))

	x := lattice.TranslationVector{1, 0, 0}
	y := lattice.TranslationVector{0, 1, 0}
	z := lattice.TranslationVector{0, 0, 1}

	require.NoError(t, g.AddEdge(0, 0, x))
	require.NoError(t, g.AddEdge(0, 0, x))
	require.NoError(t, g.AddEdge(1, 1, y))
	require.NoError(t, g.AddEdge(3, 3, x))
	require.NoError(t, g.AddEdge(3, 3, y))
	require.NoError(t, g.AddEdge(6, 6, x))
	require.NoError(t, g.AddEdge(6, 6, y))
	require.NoError(t, g.AddEdge(6, 6, z))

	comps, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)
	require.Len(t, comps, 7)

	sort.Slice(comps, func(i, j int) bool { return comps[i].Vertices[0].Index < comps[j].Vertices[0].Index })
	want := map[int]int{0: 1, 1: 1, 2: 0, 3: 2, 4: 0, 5: 0, 6: 3}
	for _, c := range comps {
		require.Equal(t, want[c.Vertices[0].Index], c.PercolationDim, "root %d", c.Vertices[0].Index)
	}
}

// Two vertices joined both ways by the same non-zero translation thread
// the periodic cell once, giving dimension 1.
func TestAnalyzeAll_PairNonZeroTranslation(t *testing.T) {
	g := pgraph.NewGraph()
	tv := lattice.TranslationVector{1, 0, 0}
	require.NoError(t, g.AddEdge(0, 1, tv))
	require.NoError(t, g.AddEdge(1, 0, tv))

	comps, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0].Vertices, 2)
	require.Equal(t, 1, comps[0].PercolationDim)
}

// A branching fan with one forward-back cycle; all walks around the
// diamond close with net translation 0.
func TestAnalyzeAll_BranchingFanClosesToZero(t *testing.T) {
	g := pgraph.NewGraph()
	px := lattice.TranslationVector{1, 0, 0}
	mx := px.Neg()
	zero := lattice.Zero

	type e struct {
		u, v int
		t    lattice.TranslationVector
	}
	edges := []e{
		{0, 1, px}, {0, 2, px}, {0, 3, px},
		{1, 4, zero}, {2, 4, zero}, {3, 4, zero},
		{4, 5, mx},
		{5, 6, mx},
		{6, 7, zero}, {6, 8, zero}, {6, 9, zero}, {6, 10, zero},
		{7, 0, px}, {9, 0, px}, {10, 0, px},
	}
	for _, edge := range edges {
		require.NoError(t, g.AddEdge(edge.u, edge.v, edge.t))
	}

	comps, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	require.Len(t, comps[0].Vertices, 11)
	require.Equal(t, 0, comps[0].PercolationDim)
}

func TestComponents_PartitionsVertexSet(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(9))
	require.NoError(t, g.AddEdge(0, 1, lattice.Zero))
	require.NoError(t, g.AddEdge(2, 3, lattice.Zero))

	comps := percolate.Components(g)
	seen := make(map[int]bool)
	for i, c := range comps {
		require.Equal(t, i, c.ComponentIndex)
		for _, v := range c.Vertices {
			require.False(t, seen[v.Index], "vertex %d seen twice", v.Index)
			seen[v.Index] = true
		}
		require.Equal(t, percolate.UnsetDim, c.PercolationDim)
	}
	require.Len(t, seen, 10)
}

func TestAnalyzeAll_DuplicateEdgesNeverDecreaseDimOrChangePartition(t *testing.T) {
	g := pgraph.NewGraph()
	tv := lattice.TranslationVector{1, 0, 0}
	require.NoError(t, g.AddEdge(0, 1, tv))

	before, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1, tv))
	after, err := percolate.AnalyzeAll(g)
	require.NoError(t, err)

	require.Equal(t, len(before), len(after))
	require.GreaterOrEqual(t, after[0].PercolationDim, before[0].PercolationDim)
}

func TestAnalyzeAll_OnComponentDoneHookFires(t *testing.T) {
	g := pgraph.NewGraph()
	require.NoError(t, g.ReserveVertices(4))

	var calls []percolate.ComponentInfo
	var mu sync.Mutex
	comps, err := percolate.AnalyzeAll(g, percolate.WithOnComponentDone(func(c percolate.ComponentInfo) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, c)
	}))
	require.NoError(t, err)
	require.Len(t, calls, len(comps))
}
