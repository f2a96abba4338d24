package dgraph

import "errors"

// Sentinel errors for dgraph operations.
var (
	// ErrStaleRef indicates a VertexRef was used after its slot was removed
	// (and possibly reused by a later vertex).
	ErrStaleRef = errors.New("dgraph: stale vertex reference")

	// ErrDuplicateLocalIndex indicates AddVertex was called with a
	// local_index already present and alive in the graph.
	ErrDuplicateLocalIndex = errors.New("dgraph: duplicate local_index")

	// ErrLocalIndexNotFound indicates no live vertex carries the requested
	// local_index. No Graph method returns it; ByLocalIndex reports a miss
	// through its bool result.
	ErrLocalIndexNotFound = errors.New("dgraph: local_index not found")
)

// VertexRef is a stable descriptor for a vertex: the arena slot index plus
// the generation that slot held when the reference was issued. A Graph
// method receiving a VertexRef whose generation no longer matches the
// slot's current generation returns ErrStaleRef instead of silently
// resolving to an unrelated, later vertex.
type VertexRef struct {
	index int32
	gen   uint32
}

// vertexSlot is one arena entry. alive is false for removed or
// never-allocated slots; gen increments every time a slot is freed, so a
// stale VertexRef captured before removal never matches a reused slot.
type vertexSlot struct {
	alive      bool
	gen        uint32
	localIndex int
	pidVal     int64
	matchedMC  int

	// out/in record neighbor slot indices in insertion order — the
	// traversal order TruthMatcher's "first in-edge" relies on.
	out []int32
	in  []int32
}

// Graph is a directed decay graph: vertices carry {local_index, pid,
// matched_mc_index}; edges point mother -> daughter. Multi-edges and
// self-loops are representable (not validated against) since pruning's
// contraction step may legitimately produce them.
type Graph struct {
	slots      []vertexSlot
	free       []int32
	byLocal    map[int]int32 // local_index -> slot index, live vertices only
	liveCount  int
}

// NewGraph returns an empty decay graph.
func NewGraph() *Graph {
	return &Graph{
		byLocal: make(map[int]int32),
	}
}
