package dgraph_test

import (
	"testing"

	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) (*dgraph.Graph, dgraph.VertexRef, dgraph.VertexRef, dgraph.VertexRef) {
	t.Helper()
	g := dgraph.NewGraph()

	a, err := g.AddVertex(0, 511)
	require.NoError(t, err)
	b, err := g.AddVertex(1, 413)
	require.NoError(t, err)
	c, err := g.AddVertex(2, 211)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(a, b))
	require.NoError(t, g.AddEdge(b, c))

	return g, a, b, c
}

func TestAddVertexDuplicateLocalIndex(t *testing.T) {
	g := dgraph.NewGraph()
	_, err := g.AddVertex(0, 511)
	require.NoError(t, err)

	_, err = g.AddVertex(0, 413)
	require.ErrorIs(t, err, dgraph.ErrDuplicateLocalIndex)
}

func TestOutInEdgesOrder(t *testing.T) {
	g, a, b, c := buildChain(t)

	out, err := g.OutEdges(a)
	require.NoError(t, err)
	assert.Equal(t, []dgraph.VertexRef{b}, out)

	in, err := g.InEdges(c)
	require.NoError(t, err)
	assert.Equal(t, []dgraph.VertexRef{b}, in)
}

func TestRemoveVertexStalesRef(t *testing.T) {
	g, a, b, _ := buildChain(t)

	require.NoError(t, g.RemoveVertex(b))

	_, err := g.PID(b)
	assert.ErrorIs(t, err, dgraph.ErrStaleRef)

	out, err := g.OutEdges(a)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, found := g.ByLocalIndex(1)
	assert.False(t, found)
}

func TestRemoveVertexReusesSlotWithNewGeneration(t *testing.T) {
	g, _, b, _ := buildChain(t)
	require.NoError(t, g.RemoveVertex(b))

	reused, err := g.AddVertex(1, 999)
	require.NoError(t, err)

	_, err = g.PID(b)
	assert.ErrorIs(t, err, dgraph.ErrStaleRef, "old ref into the reused slot must stay stale")

	pid, err := g.PID(reused)
	require.NoError(t, err)
	assert.Equal(t, int64(999), pid)
}

func TestContractRewiresMothersToDaughters(t *testing.T) {
	g := dgraph.NewGraph()
	u, err := g.AddVertex(0, 1)
	require.NoError(t, err)
	mid, err := g.AddVertex(1, 2)
	require.NoError(t, err)
	w1, err := g.AddVertex(2, 3)
	require.NoError(t, err)
	w2, err := g.AddVertex(3, 4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(u, mid))
	require.NoError(t, g.AddEdge(mid, w1))
	require.NoError(t, g.AddEdge(mid, w2))

	require.NoError(t, g.Contract(mid))

	_, err = g.PID(mid)
	assert.ErrorIs(t, err, dgraph.ErrStaleRef)

	out, err := g.OutEdges(u)
	require.NoError(t, err)
	assert.ElementsMatch(t, []dgraph.VertexRef{w1, w2}, out)
}

func TestContractWithNoMothersDropsVertexOnly(t *testing.T) {
	g := dgraph.NewGraph()
	root, err := g.AddVertex(0, 1)
	require.NoError(t, err)
	child, err := g.AddVertex(1, 2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(root, child))

	require.NoError(t, g.Contract(root))

	_, err = g.PID(root)
	assert.ErrorIs(t, err, dgraph.ErrStaleRef)

	in, err := g.InEdges(child)
	require.NoError(t, err)
	assert.Empty(t, in)
}

func TestLiveVerticesSnapshotIsStableAcrossEdits(t *testing.T) {
	g, a, b, c := buildChain(t)
	snap := g.LiveVertices()
	assert.ElementsMatch(t, []dgraph.VertexRef{a, b, c}, snap)

	require.NoError(t, g.RemoveVertex(b))

	// The snapshot slice itself is unaffected by the later edit.
	assert.Len(t, snap, 3)
	assert.Equal(t, 2, g.VertexCount())
}

func TestSetAndGetMatchedMCIndex(t *testing.T) {
	g, a, _, _ := buildChain(t)

	mc, err := g.MatchedMCIndex(a)
	require.NoError(t, err)
	assert.Equal(t, -1, mc)

	require.NoError(t, g.SetMatchedMCIndex(a, 7))
	mc, err = g.MatchedMCIndex(a)
	require.NoError(t, err)
	assert.Equal(t, 7, mc)
}
