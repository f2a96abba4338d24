package graphbuilder

import (
	"fmt"

	"github.com/bdtaunu/graphtruth/dgraph"
)

// Build constructs a directed decay graph whose vertices are numbered
// 0..nVertices by local_index and carry pid = labels[i]. from/to are
// parallel edge-endpoint arrays; each endpoint must lie in [0, nVertices).
// Fails with ErrShapeError if from/to/labels disagree in length, or with
// ErrRangeError if an endpoint is out of range.
// Complexity: O(nVertices + len(from)).
func Build(nVertices int, from, to []int, labels []int64) (*dgraph.Graph, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: from has length %d, to has length %d", ErrShapeError, len(from), len(to))
	}
	if len(labels) != nVertices {
		return nil, fmt.Errorf("%w: labels has length %d, want %d", ErrShapeError, len(labels), nVertices)
	}

	g := dgraph.NewGraph()
	refs := make([]dgraph.VertexRef, nVertices)
	for i := 0; i < nVertices; i++ {
		ref, err := g.AddVertex(i, labels[i])
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}

	for k := range from {
		if err := checkRange(from[k], nVertices); err != nil {
			return nil, err
		}
		if err := checkRange(to[k], nVertices); err != nil {
			return nil, err
		}
		if err := g.AddEdge(refs[from[k]], refs[to[k]]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func checkRange(idx, n int) error {
	if idx < 0 || idx >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrRangeError, idx, n)
	}

	return nil
}
