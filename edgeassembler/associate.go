package edgeassembler

import "fmt"

// Associate converts the daughter-slot representation for a single block
// into a per-mother Adjacency.
//
// lund and ndaus are mother-major, length n. daulundSlots and dauidxSlots
// are slot-major: len(daulundSlots) == len(dauidxSlots) == motherCapacity's
// declared Dmax, and each daulundSlots[j]/dauidxSlots[j] has length n (one
// entry per mother). For mother i, the j-th daughter (0 <= j < ndaus[i]) is
// (daulundSlots[j][i], dauidxSlots[j][i]).
//
// Fails with ErrShapeError if lund/ndaus disagree in length with n, or if
// the slot-major slices disagree in length with dMax; fails with
// ErrRangeError if n is negative or any ndaus[i] falls outside [0, dMax].
// Complexity: O(n * dMax).
func Associate(n int, lund, ndaus []int64, daulundSlots, dauidxSlots [][]int64, dMax int) (*Adjacency, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d must be non-negative", ErrRangeError, n)
	}
	if len(lund) != n {
		return nil, fmt.Errorf("%w: lund has length %d, want %d", ErrShapeError, len(lund), n)
	}
	if len(ndaus) != n {
		return nil, fmt.Errorf("%w: ndaus has length %d, want %d", ErrShapeError, len(ndaus), n)
	}
	if len(daulundSlots) != dMax {
		return nil, fmt.Errorf("%w: daulundSlots has length %d, want Dmax=%d", ErrShapeError, len(daulundSlots), dMax)
	}
	if len(dauidxSlots) != dMax {
		return nil, fmt.Errorf("%w: dauidxSlots has length %d, want Dmax=%d", ErrShapeError, len(dauidxSlots), dMax)
	}
	for j := 0; j < dMax; j++ {
		if len(daulundSlots[j]) != n {
			return nil, fmt.Errorf("%w: daulundSlots[%d] has length %d, want n=%d", ErrShapeError, j, len(daulundSlots[j]), n)
		}
		if len(dauidxSlots[j]) != n {
			return nil, fmt.Errorf("%w: dauidxSlots[%d] has length %d, want n=%d", ErrShapeError, j, len(dauidxSlots[j]), n)
		}
	}

	a := &Adjacency{
		motherPID: append([]int64(nil), lund...),
		daughters: make([][]Daughter, n),
	}

	for i := 0; i < n; i++ {
		nd := int(ndaus[i])
		if nd < 0 || nd > dMax {
			return nil, fmt.Errorf("%w: ndaus[%d]=%d outside [0,%d]", ErrRangeError, i, nd, dMax)
		}

		daus := make([]Daughter, nd)
		for j := 0; j < nd; j++ {
			daus[j] = Daughter{
				Lund:  daulundSlots[j][i],
				Local: int(dauidxSlots[j][i]),
			}
		}
		a.daughters[i] = daus
	}

	return a, nil
}
