package blockindex

import "fmt"

// New constructs a BlockIndex with the given block names (in declared order)
// and their fixed capacities. Fails with ErrConfigError if the slices
// disagree in length, are empty, or names contains a duplicate.
// Complexity: O(numBlocks).
func New(names []string, capacities []int) (*BlockIndex, error) {
	if len(names) == 0 || len(names) != len(capacities) {
		return nil, fmt.Errorf("%w: names and capacities must be equal-length and non-empty", ErrConfigError)
	}

	nameIdx := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := nameIdx[n]; dup {
			return nil, fmt.Errorf("%w: duplicate block name %q", ErrConfigError, n)
		}
		nameIdx[n] = i
	}

	bi := &BlockIndex{
		names:    append([]string(nil), names...),
		capacity: append([]int(nil), capacities...),
		nameIdx:  nameIdx,
		size:     make([]int, len(names)),
		start:    make([]int, len(names)),
	}

	return bi, nil
}

// SetSizes records the current per-block sizes for this event and
// recomputes the contiguous global-index starts in declared order.
// Fails with ErrShapeError if len(sizes) disagrees with the block count.
// Complexity: O(numBlocks).
func (bi *BlockIndex) SetSizes(sizes []int) error {
	if len(sizes) != len(bi.names) {
		return fmt.Errorf("%w: got %d sizes, want %d", ErrShapeError, len(sizes), len(bi.names))
	}

	offset := 0
	for i, s := range sizes {
		bi.size[i] = s
		bi.start[i] = offset
		offset += s
	}

	return nil
}

// Total returns the current total vertex count across all blocks.
// Complexity: O(1).
func (bi *BlockIndex) Total() int {
	if len(bi.start) == 0 {
		return 0
	}

	last := len(bi.start) - 1

	return bi.start[last] + bi.size[last]
}

// Start returns the current global start index for the named block.
// Complexity: O(1).
func (bi *BlockIndex) Start(name string) (int, error) {
	i, ok := bi.nameIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown block %q", ErrRangeError, name)
	}

	return bi.start[i], nil
}

// Size returns the current size for the named block.
// Complexity: O(1).
func (bi *BlockIndex) Size(name string) (int, error) {
	i, ok := bi.nameIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown block %q", ErrRangeError, name)
	}

	return bi.size[i], nil
}

// Capacity returns the declared capacity for the named block.
// Complexity: O(1).
func (bi *BlockIndex) Capacity(name string) (int, error) {
	i, ok := bi.nameIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown block %q", ErrRangeError, name)
	}

	return bi.capacity[i], nil
}

// GlobalIndex resolves the global vertex index for local index `local`
// within block `name`. Requires 0 <= local < Size(name).
// Complexity: O(1).
func (bi *BlockIndex) GlobalIndex(name string, local int) (int, error) {
	i, ok := bi.nameIdx[name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown block %q", ErrRangeError, name)
	}
	if local < 0 || local >= bi.size[i] {
		return 0, fmt.Errorf("%w: local index %d out of range for block %q (size %d)", ErrRangeError, local, name, bi.size[i])
	}

	return bi.start[i] + local, nil
}

// AnyFull reports whether any block's current size equals its declared
// capacity — the Runner's domain guard for untrustworthy events (§4.9).
// Complexity: O(numBlocks).
func (bi *BlockIndex) AnyFull() bool {
	for i := range bi.names {
		if bi.size[i] == bi.capacity[i] {
			return true
		}
	}

	return false
}
