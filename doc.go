// Package graphtruth extracts reconstruction-level decay graphs from
// detector records and matches them against simulated truth.
//
// A single-threaded pipeline, processing one event at a time, that brings
// together:
//
//   - RecordSource: a read-only cursor over text-valued columns, backed by
//     either a CSV file or a PostgreSQL DECLARE CURSOR/FETCH loop
//   - BlockIndex + EdgeAssembler + GraphBuilder: block-structured
//     reconstruction records assembled into one decay graph per event
//   - MCPruner: simulated-truth graphs rewritten down to the vertices a
//     reconstruction can plausibly match
//   - TruthMatcher: a postorder match of reconstructed candidates against
//     pruned truth, seeded by detector-level final-state associations
//   - GraphEmitter: graphviz-style dumps of any stage's graph, for
//     --examine debugging
//
// Everything is organized under one subpackage per stage:
//
//	recordsource/  — CSV and PostgreSQL record cursors
//	blockindex/    — per-block size/global-index bookkeeping
//	edgeassembler/ — per-block mother/daughter adjacency decoding
//	dgraph/        — the decay graph itself (generational-arena storage)
//	graphbuilder/  — graph construction from block and flat-edge-list input
//	mcpruner/      — simulated-truth graph rewriting
//	truthmatcher/  — reconstruction-to-truth matching
//	graphemitter/  — graphviz-style graph description output
//	runner/        — per-event pipeline orchestration
//	config/        — TOML + flag configuration
//	cmd/           — extract_graph and extract_truth_match CLI entrypoints
//
// See cmd/extract_graph and cmd/extract_truth_match for the two CLI
// entrypoints built on this module.
package graphtruth
