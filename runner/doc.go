// Package runner implements the per-record orchestration pipeline (§4.9
// Runner): for each record, decode inputs, build graphs, prune, match,
// and emit — continuing past per-event failures rather than aborting the
// whole batch.
//
// Two entrypoints mirror the original's two executables:
//
//   - RunGraphExtraction builds and emits the reconstruction graph only
//     (extract_recograph.cc's scope: no MC side, no matching).
//   - RunTruthMatchExtraction runs the full pipeline: MC graph decode,
//     pruning, reco graph assembly, truth matching, and the CSV summary
//     row (event_id, pruned edges, matching vector, y-family match
//     status, exist_matched_y).
//
// Field-naming convention. A record's textual fields are named by a fixed
// per-block and per-family scheme (see fields.go): "{block}_n",
// "{block}_lund", "{block}_ndaus", "{block}_d{k}lund", "{block}_d{k}idx"
// for each reconstruction block in graph extraction; "mc_n_vertices",
// "mc_from_vertices", "mc_to_vertices", "mc_lund_id" (and the matching
// "reco_*" columns) for the flat graphs in truth-match extraction; and
// "{family}_reco_idx"/"{family}mcidx" for each final-state family's
// detector-level seed arrays, grounded on extract_recograph.cc and
// extract_truth_match.cc's column layout.
//
// Logging uses a *zap.Logger with structured fields: one line per
// skipped/failed event (event_id, error_kind, message) and a summary line
// per batch (processed, skipped, matched_y), per SPEC_FULL.md §1.
package runner
