// Package particletable implements a bidirectional particle name <-> lund
// id lookup table, loaded from a two-column text file ("name id" per
// line), grounded on ParticleTable.h.
//
// It exists to give graphemitter.LabelSource's name-lookup variant a
// realizable implementation: Table.Label satisfies graphemitter.LabelSource
// directly.
package particletable
