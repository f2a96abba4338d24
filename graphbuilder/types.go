package graphbuilder

import (
	"errors"

	"github.com/bdtaunu/graphtruth/edgeassembler"
)

// Sentinel errors for graphbuilder operations.
var (
	// ErrShapeError indicates from/to disagree in length, or a block's
	// adjacency disagrees with its declared mother count.
	ErrShapeError = errors.New("graphbuilder: shape mismatch")

	// ErrRangeError indicates an edge endpoint fell outside [0, n_vertices).
	ErrRangeError = errors.New("graphbuilder: vertex index out of range")

	// ErrUnresolvedDaughter indicates a daughter's pid could not be routed
	// to any known block, or its local index fell outside that block's
	// current size.
	ErrUnresolvedDaughter = errors.New("graphbuilder: daughter could not be resolved to a global index")
)

// BlockInput bundles one particle-family block's contribution to a
// reconstruction graph: its name (for global-index resolution of its own
// mothers) and the per-mother adjacency produced by edgeassembler.Associate.
type BlockInput struct {
	Name      string
	Adjacency *edgeassembler.Adjacency
}
