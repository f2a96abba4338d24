// Package mcpruner rewrites a Monte-Carlo decay graph into a form amenable
// to structural truth matching (§4.6 MCPruner).
//
// Three operations are applied in order, each preserving every surviving
// vertex's original local_index:
//
//  1. Final-state subtree removal (P1): BFS from the decay root
//     (local_index 2); at a final-state vertex, stop descending and mark
//     everything strictly downstream of it for removal instead.
//  2. Irrelevant-vertex contraction (P2): beam vertices, undetectable
//     species, and photons with an unacceptable mother are rewired
//     mother-to-daughter (dgraph.Contract) and removed.
//  3. Index map (P3): an O(1) local_index -> dgraph.VertexRef lookup over
//     the surviving graph, returned as Pruned.
//
// Both P1 and P2 follow the snapshot-then-edit discipline dgraph.Graph's
// LiveVertices documents: the removal/contraction set is computed against
// an immutable view before any graph mutation begins, so BFS never
// observes a graph being edited out from under it.
package mcpruner
