// Package graphbuilder assembles decay graphs (§4.5 GraphBuilder).
//
// Build is the generic constructor: given parallel from/to edge-endpoint
// arrays and a per-vertex label array, it produces a dgraph.Graph whose
// vertices are numbered 0..n by local_index. It is used directly for the
// Monte-Carlo side, whose input already arrives as a flat adjacency list.
//
// BuildReco composes a single reconstruction graph across heterogeneous
// particle-family blocks: each block contributes its own mothers (numbered
// by the shared blockindex.BlockIndex's global indices) and, for each
// mother, an edgeassembler.Adjacency resolving its daughters' (pid, local
// index) pairs. A daughter's block is looked up by pid via the pid
// registry, and its global index via blockindex.GlobalIndex(block, local).
package graphbuilder
