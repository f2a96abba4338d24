package blockindex

import "errors"

// Sentinel errors for BlockIndex operations.
var (
	// ErrConfigError indicates invalid constructor arguments: mismatched
	// lengths, zero blocks, or duplicate block names.
	ErrConfigError = errors.New("blockindex: invalid configuration")

	// ErrShapeError indicates SetSizes was called with the wrong number of
	// sizes.
	ErrShapeError = errors.New("blockindex: size slice length mismatch")

	// ErrRangeError indicates a local index was out of bounds for its block,
	// or an unknown block name was queried.
	ErrRangeError = errors.New("blockindex: index out of range")
)

// BlockIndex derives contiguous half-open global-index ranges for an
// ordered sequence of named blocks, re-derived fresh for each event via
// SetSizes.
type BlockIndex struct {
	names    []string
	capacity []int
	nameIdx  map[string]int

	size  []int
	start []int
}
