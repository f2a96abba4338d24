// Package blockindex maintains the global vertex numbering derived from
// heterogeneous, per-event particle-family blocks (§4.3).
//
// A BlockIndex is constructed once with the declared block names and
// capacities (process-scoped configuration); SetSizes is then called once
// per event with that event's current block sizes, after which Start, Size,
// and GlobalIndex answer queries in O(1).
//
// Complexity: construction and SetSizes are O(numBlocks); all queries are
// O(1) (or O(numBlocks) for name lookup, bounded by a handful of blocks).
package blockindex
