package arraydecode

import (
	"fmt"
	"strconv"
	"strings"
)

// DecodeScalar converts a single textual value per kind.
// Complexity: O(len(text)).
func DecodeScalar(text string, kind Kind) (int64, error) {
	text = unquote(text)
	switch kind {
	case KindInt64:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, text)
		}

		return v, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %d", ErrNumberFormat, kind)
	}
}

// DecodeArray parses bracketed, comma-separated array text into a sequence
// of integers. An empty array is two adjacent brackets ("{}"). The text may
// be wrapped in a single pair of quote characters, which are stripped before
// bracket parsing.
//
// Returns ErrMalformedArray if the bracket structure is absent, or
// ErrNumberFormat if any element fails numeric conversion.
// Complexity: O(len(text)).
func DecodeArray(text string, kind Kind) ([]int64, error) {
	inner, err := unwrapBrackets(text)
	if err != nil {
		return nil, err
	}
	if inner == "" {
		return []int64{}, nil
	}

	parts := strings.Split(inner, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, derr := DecodeScalar(p, kind)
		if derr != nil {
			return nil, derr
		}
		out = append(out, v)
	}

	return out, nil
}

// unquote strips a single matching pair of surrounding quote characters, if
// present. Unquoted input passes through unchanged.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == quoteChar && s[len(s)-1] == quoteChar {
		return s[1 : len(s)-1]
	}

	return s
}

// unwrapBrackets strips optional quotes then the mandatory enclosing
// brackets, returning the interior text (empty string for "{}").
func unwrapBrackets(text string) (string, error) {
	text = unquote(text)
	if len(text) < 2 || text[0] != openBracket || text[len(text)-1] != closeBracket {
		return "", fmt.Errorf("%w: %q", ErrMalformedArray, text)
	}

	return text[1 : len(text)-1], nil
}
