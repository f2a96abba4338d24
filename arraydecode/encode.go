package arraydecode

import (
	"strconv"
	"strings"
)

// EncodeArray emits the bracketed wire form of v, the inverse of DecodeArray:
// decode_array(encode_array(v)) == v for every sequence. Never emits
// surrounding quotes.
// Complexity: O(n).
func EncodeArray(v []int64) string {
	if len(v) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte(openBracket)
	for i, e := range v {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(e, 10))
	}
	b.WriteByte(closeBracket)

	return b.String()
}
