package particletable

import "errors"

// Sentinel errors for particletable operations.
var (
	// ErrUnknownName indicates ID was called with a name absent from the
	// table.
	ErrUnknownName = errors.New("particletable: unknown particle name")

	// ErrUnknownID indicates Name was called with a lund id absent from
	// the table.
	ErrUnknownID = errors.New("particletable: unknown lund id")

	// ErrMalformedLine indicates a line of the source file was not a
	// "name id" pair.
	ErrMalformedLine = errors.New("particletable: malformed line")
)

// Table is a bidirectional name <-> lund id lookup, built once and read
// many times; it performs no locking since it is never mutated after
// Load returns.
type Table struct {
	name2id map[string]int64
	id2name map[int64]string
}
