package runner

import (
	"fmt"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/bdtaunu/graphtruth/edgeassembler"
	"github.com/bdtaunu/graphtruth/recordsource"
)

// getScalarInt reads and decodes a single integer-valued field.
func getScalarInt(rec recordsource.Source, field string) (int, error) {
	text, err := rec.Get(field)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrFieldError, field, err)
	}

	v, err := arraydecode.DecodeScalar(text, arraydecode.KindInt64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrFieldError, field, err)
	}

	return int(v), nil
}

// getIntArray reads and decodes an array-valued field.
func getIntArray(rec recordsource.Source, field string) ([]int64, error) {
	text, err := rec.Get(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFieldError, field, err)
	}

	v, err := arraydecode.DecodeArray(text, arraydecode.KindInt64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFieldError, field, err)
	}

	return v, nil
}

// toIntSlice narrows a decoded int64 sequence to int, the index/count
// type every downstream component (blockindex, graphbuilder) expects.
func toIntSlice(v []int64) []int {
	out := make([]int, len(v))
	for i, e := range v {
		out[i] = int(e)
	}

	return out
}

// decodeBlockAdjacency reads block's full-capacity arrays, slices them down
// to the block's current size n, and associates them into an Adjacency
// (§4.4 EdgeAssembler). The slot-major daughter arrays are sliced the same
// way the mother-major ones are: only the first n mothers of any array are
// meaningful for this event (§3 Reconstruction Record).
func decodeBlockAdjacency(rec recordsource.Source, bf blockFields, n, dmax int) (*edgeassembler.Adjacency, error) {
	lund, err := getIntArray(rec, bf.lund)
	if err != nil {
		return nil, err
	}
	ndaus, err := getIntArray(rec, bf.ndaus)
	if err != nil {
		return nil, err
	}
	if len(lund) < n || len(ndaus) < n {
		return nil, fmt.Errorf("%w: block %q: declared size %d exceeds decoded array length", ErrFieldError, bf.n, n)
	}

	dauLundSlots := make([][]int64, dmax)
	dauIdxSlots := make([][]int64, dmax)
	for k := 0; k < dmax; k++ {
		lundSlot, err := getIntArray(rec, bf.dauLund[k])
		if err != nil {
			return nil, err
		}
		idxSlot, err := getIntArray(rec, bf.dauIndex[k])
		if err != nil {
			return nil, err
		}
		if len(lundSlot) < n || len(idxSlot) < n {
			return nil, fmt.Errorf("%w: block %q: daughter slot %d shorter than declared size %d", ErrFieldError, bf.n, k, n)
		}
		dauLundSlots[k] = lundSlot[:n]
		dauIdxSlots[k] = idxSlot[:n]
	}

	return edgeassembler.Associate(n, lund[:n], ndaus[:n], dauLundSlots, dauIdxSlots, dmax)
}
