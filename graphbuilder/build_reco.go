package graphbuilder

import (
	"fmt"

	"github.com/bdtaunu/graphtruth/blockindex"
	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/bdtaunu/graphtruth/pid"
)

// BuildReco composes a single reconstruction graph across heterogeneous
// particle-family blocks. idx must already have SetSizes applied for this
// event; blocks must cover exactly the blocks named in idx, each supplying
// an Adjacency whose NMothers() equals idx.Size(block.Name).
//
// A mother's vertex is numbered by its block's global index
// (idx.GlobalIndex(block.Name, i)); its pid is the adjacency's MotherPID.
// Each daughter is resolved cross-block: its pid routes to a block via the
// pid registry, and its local index is resolved to a global index within
// that block. Fails with ErrShapeError if a block's adjacency length
// disagrees with idx, or with ErrUnresolvedDaughter if a daughter's pid or
// local index cannot be resolved.
// Complexity: O(total mothers + total daughters).
func BuildReco(idx *blockindex.BlockIndex, blocks []BlockInput) (*dgraph.Graph, error) {
	g := dgraph.NewGraph()
	refs := make(map[int]dgraph.VertexRef, idx.Total())

	for _, blk := range blocks {
		size, err := idx.Size(blk.Name)
		if err != nil {
			return nil, err
		}
		if blk.Adjacency.NMothers() != size {
			return nil, fmt.Errorf("%w: block %q adjacency has %d mothers, index has size %d",
				ErrShapeError, blk.Name, blk.Adjacency.NMothers(), size)
		}

		for i := 0; i < size; i++ {
			gi, err := idx.GlobalIndex(blk.Name, i)
			if err != nil {
				return nil, err
			}
			ref, err := g.AddVertex(gi, blk.Adjacency.MotherPID(i))
			if err != nil {
				return nil, err
			}
			refs[gi] = ref
		}
	}

	for _, blk := range blocks {
		size, _ := idx.Size(blk.Name)
		for i := 0; i < size; i++ {
			motherGI, err := idx.GlobalIndex(blk.Name, i)
			if err != nil {
				return nil, err
			}
			motherRef := refs[motherGI]

			for j := 0; j < blk.Adjacency.NDaughters(i); j++ {
				dauLund := blk.Adjacency.DaughterPID(i, j)
				dauLocal := blk.Adjacency.DaughterLocalIdx(i, j)

				dauBlock, err := pid.BlockFor(dauLund)
				if err != nil {
					return nil, fmt.Errorf("%w: mother global index %d, daughter lund %d: %v",
						ErrUnresolvedDaughter, motherGI, dauLund, err)
				}
				dauGI, err := idx.GlobalIndex(dauBlock, dauLocal)
				if err != nil {
					return nil, fmt.Errorf("%w: mother global index %d, daughter lund %d local %d: %v",
						ErrUnresolvedDaughter, motherGI, dauLund, dauLocal, err)
				}
				dauRef, ok := refs[dauGI]
				if !ok {
					return nil, fmt.Errorf("%w: daughter global index %d has no vertex", ErrUnresolvedDaughter, dauGI)
				}

				if err := g.AddEdge(motherRef, dauRef); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}
