package dgraph

import "fmt"

// AddVertex inserts a vertex with the given local_index and pid, returning
// its stable VertexRef. Fails with ErrDuplicateLocalIndex if a live vertex
// already carries local_index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(localIndex int, lund int64) (VertexRef, error) {
	if _, exists := g.byLocal[localIndex]; exists {
		return VertexRef{}, fmt.Errorf("%w: %d", ErrDuplicateLocalIndex, localIndex)
	}

	var idx int32
	if n := len(g.free); n > 0 {
		idx = g.free[n-1]
		g.free = g.free[:n-1]
		slot := &g.slots[idx]
		slot.alive = true
		slot.localIndex = localIndex
		slot.pidVal = lund
		slot.matchedMC = -1
		slot.out = nil
		slot.in = nil
	} else {
		idx = int32(len(g.slots))
		g.slots = append(g.slots, vertexSlot{
			alive:      true,
			localIndex: localIndex,
			pidVal:     lund,
			matchedMC:  -1,
		})
	}

	g.byLocal[localIndex] = idx
	g.liveCount++

	return VertexRef{index: idx, gen: g.slots[idx].gen}, nil
}

// resolve validates ref against the current slot state, returning the slot
// pointer or ErrStaleRef.
func (g *Graph) resolve(ref VertexRef) (*vertexSlot, error) {
	if ref.index < 0 || int(ref.index) >= len(g.slots) {
		return nil, ErrStaleRef
	}
	slot := &g.slots[ref.index]
	if !slot.alive || slot.gen != ref.gen {
		return nil, ErrStaleRef
	}

	return slot, nil
}

// ByLocalIndex resolves the live vertex carrying the given local_index.
// Complexity: O(1).
func (g *Graph) ByLocalIndex(localIndex int) (VertexRef, bool) {
	idx, ok := g.byLocal[localIndex]
	if !ok {
		return VertexRef{}, false
	}

	return VertexRef{index: idx, gen: g.slots[idx].gen}, true
}

// LocalIndex returns ref's local_index attribute.
func (g *Graph) LocalIndex(ref VertexRef) (int, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return 0, err
	}

	return slot.localIndex, nil
}

// PID returns ref's pid attribute.
func (g *Graph) PID(ref VertexRef) (int64, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return 0, err
	}

	return slot.pidVal, nil
}

// MatchedMCIndex returns ref's matched_mc_index attribute (-1 if unset).
func (g *Graph) MatchedMCIndex(ref VertexRef) (int, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return 0, err
	}

	return slot.matchedMC, nil
}

// SetMatchedMCIndex sets ref's matched_mc_index attribute (the truth-match
// seed, §4.7).
func (g *Graph) SetMatchedMCIndex(ref VertexRef, mcIndex int) error {
	slot, err := g.resolve(ref)
	if err != nil {
		return err
	}
	slot.matchedMC = mcIndex

	return nil
}

// AddEdge adds a directed edge mother -> daughter. Multi-edges and
// self-loops are permitted; duplicates are not coalesced at insertion time.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to VertexRef) error {
	fs, err := g.resolve(from)
	if err != nil {
		return fmt.Errorf("from: %w", err)
	}
	ts, err := g.resolve(to)
	if err != nil {
		return fmt.Errorf("to: %w", err)
	}
	fs.out = append(fs.out, to.index)
	ts.in = append(ts.in, from.index)

	return nil
}

// OutEdges returns ref's daughters, in insertion order.
// Complexity: O(out-degree).
func (g *Graph) OutEdges(ref VertexRef) ([]VertexRef, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return nil, err
	}

	return g.refsFor(slot.out), nil
}

// InEdges returns ref's mothers, in insertion order.
// Complexity: O(in-degree).
func (g *Graph) InEdges(ref VertexRef) ([]VertexRef, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return nil, err
	}

	return g.refsFor(slot.in), nil
}

// OutDegree returns ref's out-degree.
func (g *Graph) OutDegree(ref VertexRef) (int, error) {
	slot, err := g.resolve(ref)
	if err != nil {
		return 0, err
	}

	return len(slot.out), nil
}

func (g *Graph) refsFor(slotIdxs []int32) []VertexRef {
	out := make([]VertexRef, len(slotIdxs))
	for i, si := range slotIdxs {
		out[i] = VertexRef{index: si, gen: g.slots[si].gen}
	}

	return out
}

// RemoveVertex removes ref and all its incident edges (both directions).
// Neighbors' incidence lists are rewritten to drop ref; ref's own slot is
// freed and its generation bumped so any other held VertexRef for it
// becomes stale.
// Complexity: O(deg(ref) + sum of neighbor degrees it appears in).
func (g *Graph) RemoveVertex(ref VertexRef) error {
	slot, err := g.resolve(ref)
	if err != nil {
		return err
	}

	for _, child := range slot.out {
		g.slots[child].in = removeAll(g.slots[child].in, ref.index)
	}
	for _, parent := range slot.in {
		g.slots[parent].out = removeAll(g.slots[parent].out, ref.index)
	}

	delete(g.byLocal, slot.localIndex)
	slot.alive = false
	slot.out = nil
	slot.in = nil
	slot.gen++
	g.free = append(g.free, ref.index)
	g.liveCount--

	return nil
}

// removeAll returns s with every occurrence of v removed, preserving order.
func removeAll(s []int32, v int32) []int32 {
	out := s[:0]
	for _, e := range s {
		if e != v {
			out = append(out, e)
		}
	}

	return out
}

// Contract rewires ref: for every in-edge (u, ref) and every out-edge
// (ref, w), adds an edge (u, w) — the Cartesian product of ref's mothers and
// daughters — then removes ref. Duplicate edges may result; they are not
// coalesced. If ref has
// zero in-edges, contraction degrades to removing ref and its out-edges
// only (no new edges added), matching §4.6 P2's "no mothers" case.
// Complexity: O(in-degree * out-degree).
func (g *Graph) Contract(ref VertexRef) error {
	slot, err := g.resolve(ref)
	if err != nil {
		return err
	}

	mothers := append([]int32(nil), slot.in...)
	daughters := append([]int32(nil), slot.out...)

	for _, u := range mothers {
		for _, w := range daughters {
			if err := g.AddEdge(VertexRef{index: u, gen: g.slots[u].gen}, VertexRef{index: w, gen: g.slots[w].gen}); err != nil {
				return err
			}
		}
	}

	return g.RemoveVertex(ref)
}

// LiveVertices returns a stable snapshot of every currently-live vertex, in
// ascending slot order (construction order for never-removed vertices).
// Intended for the two-phase "snapshot, then edit" pattern MCPruner uses.
// Complexity: O(V).
func (g *Graph) LiveVertices() []VertexRef {
	out := make([]VertexRef, 0, g.liveCount)
	for i := range g.slots {
		if g.slots[i].alive {
			out = append(out, VertexRef{index: int32(i), gen: g.slots[i].gen})
		}
	}

	return out
}

// VertexCount returns the number of currently-live vertices.
func (g *Graph) VertexCount() int {
	return g.liveCount
}
