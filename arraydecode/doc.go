// Package arraydecode parses the bracketed numeric array text produced by the
// tabular record store into integer sequences, and re-encodes sequences back
// into the same wire form for CSV output.
//
// Wire form: "{}" for an empty array, "{v1,v2,...,vn}" otherwise, with
// optional surrounding quote characters (stripped on decode, never emitted
// on encode). Whitespace outside element text is not permitted.
//
// Complexity: O(n) in the length of the input/output text for both
// directions.
package arraydecode
