package mcpruner

import (
	"fmt"

	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/bdtaunu/graphtruth/pid"
)

// decayRootLocalIndex is the local_index convention marking the decay root
// in an input MC graph (§3 MC Graph: "index 2 is the decay root").
const decayRootLocalIndex = 2

// beamLocalIndices are the two incoming beam-particle vertices removed
// unconditionally in P2.
var beamLocalIndices = []int{0, 1}

// Prune rewrites g per §4.6: final-state subtree removal (P1), then
// irrelevant-vertex contraction (P2), then builds the O(1) index map (P3).
// g is mutated in place; callers that need the original should copy first.
func Prune(g *dgraph.Graph) (*Pruned, error) {
	if err := removeFinalStateSubtrees(g); err != nil {
		return nil, err
	}
	if err := contractIrrelevantVertices(g); err != nil {
		return nil, err
	}

	return buildIndex(g), nil
}

// removeFinalStateSubtrees implements P1: BFS from the decay root; at a
// final-state vertex, mark everything strictly downstream for removal
// instead of descending further. Marking is computed over the full BFS
// before any vertex is removed, so removal never invalidates the
// traversal.
func removeFinalStateSubtrees(g *dgraph.Graph) error {
	root, ok := g.ByLocalIndex(decayRootLocalIndex)
	if !ok {
		return ErrRootMissing
	}

	visited := map[dgraph.VertexRef]bool{root: true}
	toRemove := map[dgraph.VertexRef]bool{}
	queue := []dgraph.VertexRef{root}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		lund, err := g.PID(v)
		if err != nil {
			return err
		}

		out, err := g.OutEdges(v)
		if err != nil {
			return err
		}

		if pid.IsFinalState(lund) {
			markDownstream(g, out, toRemove)
			continue
		}

		for _, child := range out {
			if !visited[child] {
				visited[child] = true
				queue = append(queue, child)
			}
		}
	}

	for ref := range toRemove {
		if err := g.RemoveVertex(ref); err != nil && err != dgraph.ErrStaleRef {
			return err
		}
	}

	return nil
}

// markDownstream marks every vertex reachable from any of roots (inclusive)
// for removal, via its own BFS over the pre-removal graph.
func markDownstream(g *dgraph.Graph, roots []dgraph.VertexRef, mark map[dgraph.VertexRef]bool) {
	queue := append([]dgraph.VertexRef(nil), roots...)
	for _, r := range roots {
		mark[r] = true
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		out, err := g.OutEdges(v)
		if err != nil {
			// No vertex is removed until marking completes, so v is live
			// here; an error is skipped rather than returned.
			continue
		}
		for _, child := range out {
			if !mark[child] {
				mark[child] = true
				queue = append(queue, child)
			}
		}
	}
}

// contractIrrelevantVertices implements P2: builds the removal set R (beam
// vertices, undetectable species, photons whose mother is not an
// acceptable photon mother) against
// a stable snapshot, then contracts each member in turn.
func contractIrrelevantVertices(g *dgraph.Graph) error {
	removalSet, err := irrelevantVertexSet(g)
	if err != nil {
		return err
	}

	for _, ref := range removalSet {
		if err := g.Contract(ref); err != nil {
			if err == dgraph.ErrStaleRef {
				// A vertex can be listed twice (a beam whose pid is also
				// undetectable); the second Contract finds it already gone.
				continue
			}

			return err
		}
	}

	return nil
}

func irrelevantVertexSet(g *dgraph.Graph) ([]dgraph.VertexRef, error) {
	var removal []dgraph.VertexRef

	for _, localIdx := range beamLocalIndices {
		if ref, ok := g.ByLocalIndex(localIdx); ok {
			removal = append(removal, ref)
		}
	}

	for _, ref := range g.LiveVertices() {
		lund, err := g.PID(ref)
		if err != nil {
			return nil, err
		}

		switch {
		case pid.IsUndetectable(lund):
			removal = append(removal, ref)
		case lund == pid.PhotonLund:
			in, err := g.InEdges(ref)
			if err != nil {
				return nil, err
			}
			if len(in) != 1 {
				li, _ := g.LocalIndex(ref)
				return nil, fmt.Errorf("%w: photon vertex local_index=%d has %d in-edges, want 1",
					ErrGraphInvariant, li, len(in))
			}

			motherLund, err := g.PID(in[0])
			if err != nil {
				return nil, err
			}
			if !pid.IsAcceptablePhotonMother(motherLund) {
				removal = append(removal, ref)
			}
		}
	}

	return removal, nil
}

// buildIndex constructs the surviving local_index -> VertexRef map (P3).
func buildIndex(g *dgraph.Graph) *Pruned {
	live := g.LiveVertices()
	byIndex := make(map[int]dgraph.VertexRef, len(live))
	for _, ref := range live {
		li, _ := g.LocalIndex(ref)
		byIndex[li] = ref
	}

	return &Pruned{Graph: g, byIndex: byIndex}
}
