package graphbuilder_test

import (
	"testing"

	"github.com/bdtaunu/graphtruth/blockindex"
	"github.com/bdtaunu/graphtruth/edgeassembler"
	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildAdjacency is a small helper wrapping edgeassembler.Associate for a
// single-mother, single-daughter-slot block.
func buildAdjacency(t *testing.T, motherLund int64, dauLund int64, dauLocal int64) *edgeassembler.Adjacency {
	t.Helper()
	var ndaus int64
	daulund := [][]int64{{0}}
	dauidx := [][]int64{{0}}
	if dauLund != 0 {
		ndaus = 1
		daulund = [][]int64{{dauLund}}
		dauidx = [][]int64{{dauLocal}}
	}

	adj, err := edgeassembler.Associate(1, []int64{motherLund}, []int64{ndaus}, daulund, dauidx, 1)
	require.NoError(t, err)

	return adj
}

func TestBuildRecoCrossBlockChain(t *testing.T) {
	idx, err := blockindex.New([]string{"b", "d", "h"}, []int{2, 2, 2})
	require.NoError(t, err)
	require.NoError(t, idx.SetSizes([]int{1, 1, 1}))

	blocks := []graphbuilder.BlockInput{
		{Name: "b", Adjacency: buildAdjacency(t, 511, 413, 0)},
		{Name: "d", Adjacency: buildAdjacency(t, 413, 211, 0)},
		{Name: "h", Adjacency: buildAdjacency(t, 211, 0, 0)},
	}

	g, err := graphbuilder.BuildReco(idx, blocks)
	require.NoError(t, err)

	bGI, err := idx.GlobalIndex("b", 0)
	require.NoError(t, err)
	bRef, ok := g.ByLocalIndex(bGI)
	require.True(t, ok)

	out, err := g.OutEdges(bRef)
	require.NoError(t, err)
	require.Len(t, out, 1)

	dGI, err := idx.GlobalIndex("d", 0)
	require.NoError(t, err)
	dLocal, err := g.LocalIndex(out[0])
	require.NoError(t, err)
	assert.Equal(t, dGI, dLocal)

	dOut, err := g.OutEdges(out[0])
	require.NoError(t, err)
	require.Len(t, dOut, 1)

	hGI, err := idx.GlobalIndex("h", 0)
	require.NoError(t, err)
	hLocal, err := g.LocalIndex(dOut[0])
	require.NoError(t, err)
	assert.Equal(t, hGI, hLocal)
}

func TestBuildRecoShapeError(t *testing.T) {
	idx, err := blockindex.New([]string{"b"}, []int{2})
	require.NoError(t, err)
	require.NoError(t, idx.SetSizes([]int{2}))

	blocks := []graphbuilder.BlockInput{
		{Name: "b", Adjacency: buildAdjacency(t, 511, 0, 0)},
	}

	_, err = graphbuilder.BuildReco(idx, blocks)
	require.ErrorIs(t, err, graphbuilder.ErrShapeError)
}

func TestBuildRecoUnresolvedDaughter(t *testing.T) {
	idx, err := blockindex.New([]string{"b"}, []int{1})
	require.NoError(t, err)
	require.NoError(t, idx.SetSizes([]int{1}))

	blocks := []graphbuilder.BlockInput{
		{Name: "b", Adjacency: buildAdjacency(t, 511, 99999999, 0)},
	}

	_, err = graphbuilder.BuildReco(idx, blocks)
	require.ErrorIs(t, err, graphbuilder.ErrUnresolvedDaughter)
}
