package graphbuilder_test

import (
	"testing"

	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChain(t *testing.T) {
	g, err := graphbuilder.Build(3, []int{0, 1}, []int{1, 2}, []int64{511, 413, 211})
	require.NoError(t, err)

	root, ok := g.ByLocalIndex(0)
	require.True(t, ok)
	out, err := g.OutEdges(root)
	require.NoError(t, err)
	require.Len(t, out, 1)

	mid, err := g.LocalIndex(out[0])
	require.NoError(t, err)
	assert.Equal(t, 1, mid)
}

func TestBuildShapeErrors(t *testing.T) {
	_, err := graphbuilder.Build(2, []int{0}, []int{0, 1}, []int64{1, 2})
	require.ErrorIs(t, err, graphbuilder.ErrShapeError)

	_, err = graphbuilder.Build(2, nil, nil, []int64{1})
	require.ErrorIs(t, err, graphbuilder.ErrShapeError)
}

func TestBuildRangeError(t *testing.T) {
	_, err := graphbuilder.Build(2, []int{0}, []int{5}, []int64{1, 2})
	require.ErrorIs(t, err, graphbuilder.ErrRangeError)
}
