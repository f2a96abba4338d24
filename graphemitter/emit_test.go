package graphemitter_test

import (
	"strings"
	"testing"

	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/bdtaunu/graphtruth/graphemitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitUnmatchedGraph(t *testing.T) {
	g, err := graphbuilder.Build(2, []int{0}, []int{1}, []int64{511, 413})
	require.NoError(t, err)

	var buf strings.Builder
	emitter := graphemitter.NewEmitter(graphemitter.DefaultStyle())
	require.NoError(t, emitter.Emit(&buf, g, graphemitter.DirectLabelSource{}, nil))

	out := buf.String()
	assert.Contains(t, out, `0 [label="511",color="grey"];`)
	assert.Contains(t, out, `1 [label="413",color="grey"];`)
	assert.Contains(t, out, `0 -> 1 [color="grey"];`)
}

func TestEmitMatchedEdgeGetsMatchedStyle(t *testing.T) {
	g, err := graphbuilder.Build(2, []int{0}, []int{1}, []int64{511, 413})
	require.NoError(t, err)

	var buf strings.Builder
	emitter := graphemitter.NewEmitter(graphemitter.DefaultStyle())
	require.NoError(t, emitter.Emit(&buf, g, graphemitter.DirectLabelSource{}, []int{7, 8}))

	out := buf.String()
	assert.Contains(t, out, `0 [label="511",color="red",fillcolor="lightskyblue",penwidth="3",style="filled"];`)
	assert.Contains(t, out, `0 -> 1 [penwidth="3"];`)
}

func TestEmitPartiallyMatchedEdgeStaysUnmatched(t *testing.T) {
	g, err := graphbuilder.Build(2, []int{0}, []int{1}, []int64{511, 413})
	require.NoError(t, err)

	var buf strings.Builder
	emitter := graphemitter.NewEmitter(graphemitter.DefaultStyle())
	// Only vertex 0 is matched (matching[1] == -1): the edge stays unmatched.
	require.NoError(t, emitter.Emit(&buf, g, graphemitter.DirectLabelSource{}, []int{7, -1}))

	out := buf.String()
	assert.Contains(t, out, `0 -> 1 [color="grey"];`)
}
