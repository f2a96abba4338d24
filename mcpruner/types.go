package mcpruner

import (
	"errors"

	"github.com/bdtaunu/graphtruth/dgraph"
)

// Sentinel errors for mcpruner operations.
var (
	// ErrRootMissing indicates the input graph has no vertex with
	// local_index == 2, the designated decay root.
	ErrRootMissing = errors.New("mcpruner: decay root (local_index 2) missing")

	// ErrGraphInvariant indicates an assumption the algorithm depends on
	// was violated — currently, a photon vertex with other than exactly
	// one in-edge.
	ErrGraphInvariant = errors.New("mcpruner: graph invariant violated")
)

// Pruned is the result of Prune: the rewritten graph plus an O(1) lookup
// from a surviving vertex's original local_index to its current
// VertexRef.
type Pruned struct {
	Graph   *dgraph.Graph
	byIndex map[int]dgraph.VertexRef
}

// ByMCIndex resolves a surviving vertex by its original local_index.
// Complexity: O(1).
func (p *Pruned) ByMCIndex(localIndex int) (dgraph.VertexRef, bool) {
	ref, ok := p.byIndex[localIndex]

	return ref, ok
}
