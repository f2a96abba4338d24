package arraydecode

import "errors"

// Sentinel errors for arraydecode operations.
var (
	// ErrMalformedArray indicates the input text lacks the required
	// opening/closing bracket structure.
	ErrMalformedArray = errors.New("arraydecode: malformed array text")

	// ErrNumberFormat indicates an element failed numeric conversion.
	ErrNumberFormat = errors.New("arraydecode: element is not a valid number")
)

// Kind selects the numeric conversion applied to element text.
type Kind int

const (
	// KindInt64 parses elements as base-10 signed 64-bit integers.
	KindInt64 Kind = iota
)

const (
	openBracket  = '{'
	closeBracket = '}'
	quoteChar    = '"'
)
