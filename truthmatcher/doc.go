// Package truthmatcher computes the reconstruction-to-pruned-MC vertex
// matching (§4.7 TruthMatcher).
//
// Seeds carry detector-level final-state associations into each reco
// vertex's matched_mc_index attribute. Match then runs a depth-first
// postorder traversal of the reco graph; at finish_vertex(u):
//
//   - if u is final-state, its seeded matched_mc_index survives only if it
//     names a vertex still present in the pruned MC graph;
//   - otherwise, u's daughters' already-computed matches are resolved to
//     pruned-MC vertices, and u matches iff those vertices share a common
//     mother (by first in-edge) whose pid equals u's and whose out-degree
//     equals the daughter count.
//
// Every MC-side lookup (mother resolution, pid, out-degree) resolves
// strictly against the pruned MC graph; every reco-side lookup (daughter
// enumeration, pid) resolves strictly against the reco graph. The two are
// never crossed — the original implementation's finish_vertex visitor
// mixed MC-graph edge iteration with reco-graph vertex resolution when
// picking a composite vertex's candidate mother, which this package
// deliberately does not reproduce.
package truthmatcher
