// Package edgeassembler converts a single reconstruction block's daughter-slot
// arrays into a per-mother adjacency list (§4.4).
//
// Input shape note (preserved deliberately — see spec Open Questions): the
// mother-indexed slices (lund, ndaus) are mother-major, length n; the
// daughter-slot slices (daulund_slots, dauidx_slots) are slot-major, length
// Dmax, each inner slice indexed by mother. The daughter for mother i, slot j
// is (daulundSlots[j][i], dauIdxSlots[j][i]) — note j and i swap position
// between the two representations. This asymmetry comes from the upstream
// column layout and must not be "fixed" by transposing.
package edgeassembler
