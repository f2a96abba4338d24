package truthmatcher

import (
	"fmt"

	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/bdtaunu/graphtruth/mcpruner"
	"github.com/bdtaunu/graphtruth/pid"
)

// matcher carries the read-only inputs and the in-progress matching vector
// across the recursive postorder traversal, mirroring the walker-struct
// style of a recursive depth-first traversal with pre/post-order hooks.
type matcher struct {
	reco    *dgraph.Graph
	pruned  *mcpruner.Pruned
	matching []int
	visited  map[dgraph.VertexRef]bool
}

// Match computes matching[i] = local_index of the pruned-MC vertex reco
// vertex i (by local_index) matches, or -1. Seeds deposit detector-level
// final-state associations into the reco graph's matched_mc_index
// attribute before the traversal begins. Fails with ErrShapeError if a
// seed names an unknown reco local_index, or with ErrGraphInvariant if a
// non-final-state reco vertex has zero daughters.
// Complexity: O(V + E) over the reco graph.
func Match(reco *dgraph.Graph, pruned *mcpruner.Pruned, seeds []Seed) ([]int, error) {
	if err := depositSeeds(reco, seeds); err != nil {
		return nil, err
	}

	live := reco.LiveVertices()
	size := 0
	for _, ref := range live {
		li, err := reco.LocalIndex(ref)
		if err != nil {
			return nil, err
		}
		if li+1 > size {
			size = li + 1
		}
	}

	m := &matcher{
		reco:     reco,
		pruned:   pruned,
		matching: initMatching(size),
		visited:  make(map[dgraph.VertexRef]bool, len(live)),
	}

	for _, ref := range live {
		if !m.visited[ref] {
			if err := m.traverse(ref); err != nil {
				return nil, err
			}
		}
	}

	return m.matching, nil
}

func initMatching(size int) []int {
	m := make([]int, size)
	for i := range m {
		m[i] = unmatched
	}

	return m
}

// depositSeeds sets matched_mc_index on each named reco vertex.
func depositSeeds(reco *dgraph.Graph, seeds []Seed) error {
	for _, s := range seeds {
		ref, ok := reco.ByLocalIndex(s.RecoLocalIndex)
		if !ok {
			return fmt.Errorf("%w: reco local_index %d not found", ErrShapeError, s.RecoLocalIndex)
		}
		if err := reco.SetMatchedMCIndex(ref, s.MatchedLocalIndex); err != nil {
			return err
		}
	}

	return nil
}

// traverse visits u's daughters before u itself (postorder), then applies
// finish_vertex.
func (m *matcher) traverse(u dgraph.VertexRef) error {
	m.visited[u] = true

	children, err := m.reco.OutEdges(u)
	if err != nil {
		return err
	}

	for _, child := range children {
		if !m.visited[child] {
			if err := m.traverse(child); err != nil {
				return err
			}
		}
	}

	return m.finishVertex(u, children)
}

// finishVertex implements §4.7's base case (final-state) and composite
// case, strictly separating reco-side and pruned-MC-side navigation.
func (m *matcher) finishVertex(u dgraph.VertexRef, children []dgraph.VertexRef) error {
	li, err := m.reco.LocalIndex(u)
	if err != nil {
		return err
	}
	lund, err := m.reco.PID(u)
	if err != nil {
		return err
	}

	if pid.IsFinalState(lund) {
		m.matching[li] = m.finishFinalState(u)

		return nil
	}

	if len(children) == 0 {
		return fmt.Errorf("%w: reco vertex local_index=%d is not final-state but has no daughters", ErrGraphInvariant, li)
	}

	mcVertex, ok, err := m.resolveComposite(lund, children)
	if err != nil {
		return err
	}
	if !ok {
		m.matching[li] = unmatched

		return nil
	}

	candLi, err := m.pruned.Graph.LocalIndex(mcVertex)
	if err != nil {
		return err
	}
	m.matching[li] = candLi

	return nil
}

// finishFinalState resolves u's seeded matched_mc_index, dropping it if it
// no longer names a surviving pruned-MC vertex.
func (m *matcher) finishFinalState(u dgraph.VertexRef) int {
	mc, err := m.reco.MatchedMCIndex(u)
	if err != nil || mc < 0 {
		return unmatched
	}
	if _, ok := m.pruned.ByMCIndex(mc); !ok {
		return unmatched
	}

	return mc
}

// resolveComposite implements steps 1-5 of the composite case: resolve
// each daughter's match to a pruned-MC vertex, verify common parentage,
// pid equality, and daughter-multiplicity equality, strictly against the
// pruned MC graph.
func (m *matcher) resolveComposite(recoLund int64, children []dgraph.VertexRef) (dgraph.VertexRef, bool, error) {
	daughters := make([]dgraph.VertexRef, 0, len(children))
	for _, child := range children {
		childLi, err := m.reco.LocalIndex(child)
		if err != nil {
			return dgraph.VertexRef{}, false, err
		}
		mv := m.matching[childLi]
		if mv < 0 {
			return dgraph.VertexRef{}, false, nil
		}

		mcVertex, ok := m.pruned.ByMCIndex(mv)
		if !ok {
			return dgraph.VertexRef{}, false, nil
		}
		daughters = append(daughters, mcVertex)
	}

	firstIn, err := m.pruned.Graph.InEdges(daughters[0])
	if err != nil {
		return dgraph.VertexRef{}, false, err
	}
	if len(firstIn) == 0 {
		return dgraph.VertexRef{}, false, nil
	}
	candidate := firstIn[0]

	for _, d := range daughters[1:] {
		in, err := m.pruned.Graph.InEdges(d)
		if err != nil {
			return dgraph.VertexRef{}, false, err
		}
		if len(in) == 0 || in[0] != candidate {
			return dgraph.VertexRef{}, false, nil
		}
	}

	candPid, err := m.pruned.Graph.PID(candidate)
	if err != nil {
		return dgraph.VertexRef{}, false, err
	}
	if candPid != recoLund {
		return dgraph.VertexRef{}, false, nil
	}

	candOut, err := m.pruned.Graph.OutEdges(candidate)
	if err != nil {
		return dgraph.VertexRef{}, false, err
	}
	if len(candOut) != len(daughters) {
		return dgraph.VertexRef{}, false, nil
	}

	return candidate, true, nil
}
