// Package graphemitter serializes a decay graph to a canonical textual
// (graphviz dot) description, optionally highlighting a truth matching
// (§4.8 GraphEmitter).
//
// A Style bundles graphviz attribute sets for matched/unmatched vertices
// and edges, mirroring the original's TruthMatchGraphPrinter: a vertex is
// "matched" if its local_index has a non-negative entry in the supplied
// matching vector (nil for an unmatched description, e.g. plain MC or reco
// graph dumps); an edge is matched iff both its endpoints are.
//
// A LabelSource supplies each vertex's display label — either the raw pid,
// or an external name lookup (see the particletable package).
package graphemitter
