package truthmatcher

import "errors"

// Sentinel errors for truthmatcher operations.
var (
	// ErrShapeError indicates a seed named a reco local_index not present
	// in the reco graph.
	ErrShapeError = errors.New("truthmatcher: seed shape mismatch")

	// ErrGraphInvariant indicates a non-final-state reco vertex has zero
	// daughters — an input-integrity fault the algorithm cannot recover
	// from, since every composite decay vertex must have at least one
	// daughter in a valid reconstruction graph.
	ErrGraphInvariant = errors.New("truthmatcher: graph invariant violated")
)

// Seed is one detector-level final-state association: the reco vertex at
// RecoLocalIndex was associated to the MC vertex at MatchedLocalIndex, or
// left unmatched if MatchedLocalIndex is negative.
type Seed struct {
	RecoLocalIndex    int
	MatchedLocalIndex int
}

// unmatched is the sentinel matching-vector value for "no match".
const unmatched = -1
