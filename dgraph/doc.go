// Package dgraph implements the decay-graph data structure shared by the
// reconstruction and Monte-Carlo sides (§3 Decay Graph, §9 Design Notes).
//
// Vertices carry {local_index, pid, matched_mc_index}; edges point
// mother → daughter. Graphs support the structural edits MCPruner and
// GraphBuilder need: vertex/edge addition and removal, and mother-ward
// contraction (rewire daughters to mother's mothers, then remove the
// vertex).
//
// Representation: a generational arena — vertices live in a slot table with
// a live flag and a generation counter, addressed by the stable VertexRef
// descriptor {index, gen}. Unlike a raw slice index or pointer, a VertexRef
// captured before a vertex is removed and reused is detected as stale
// (ErrStaleRef) rather than silently resolving to whatever later took that
// slot. Each vertex additionally tracks its in/out incidence lists in
// insertion order, so "first in-edge" queries are deterministic and stable
// for the lifetime of a graph, exactly as TruthMatcher's tie-break rule
// requires (§4.7 Determinism).
//
// Mutation is two-phase by convention: callers compute the vertex/edge set
// to remove or contract via an immutable traversal (LiveVertices gives a
// stable snapshot), then apply edits. This avoids the iterator-invalidation
// hazard the original implementation worked around with snapshot-then-remove
// (§9 Iterator safety in pruning).
//
// Graphs are not safe for concurrent mutation; each event owns its own
// graphs and there is no cross-event sharing (§5 Concurrency model), so no
// internal locking is used.
package dgraph
