package arraydecode_test

import (
	"testing"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeArray(t *testing.T) {
	v, err := arraydecode.DecodeArray("{}", arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, v)

	v, err = arraydecode.DecodeArray("{1,-2,3}", arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, -2, 3}, v)

	// quoted form is accepted
	v, err = arraydecode.DecodeArray(`"{5,6}"`, arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6}, v)
}

func TestDecodeArrayMalformed(t *testing.T) {
	_, err := arraydecode.DecodeArray("1,2,3", arraydecode.KindInt64)
	require.ErrorIs(t, err, arraydecode.ErrMalformedArray)

	_, err = arraydecode.DecodeArray("", arraydecode.KindInt64)
	require.ErrorIs(t, err, arraydecode.ErrMalformedArray)
}

func TestDecodeArrayNumberFormat(t *testing.T) {
	_, err := arraydecode.DecodeArray("{1,x,3}", arraydecode.KindInt64)
	require.ErrorIs(t, err, arraydecode.ErrNumberFormat)
}

func TestRoundTrip(t *testing.T) {
	for _, v := range [][]int64{
		{},
		{0},
		{1, -1, 2, -2},
		{70553, -70553, 521},
	} {
		encoded := arraydecode.EncodeArray(v)
		decoded, err := arraydecode.DecodeArray(encoded, arraydecode.KindInt64)
		require.NoError(t, err)
		assert.Equal(t, v, decoded)
	}
}

func TestEncodeDecodeCanonicalizesQuotes(t *testing.T) {
	decoded, err := arraydecode.DecodeArray(`"{1,2}"`, arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, "{1,2}", arraydecode.EncodeArray(decoded))
}

func TestDecodeScalar(t *testing.T) {
	v, err := arraydecode.DecodeScalar("42", arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)

	_, err = arraydecode.DecodeScalar("abc", arraydecode.KindInt64)
	require.ErrorIs(t, err, arraydecode.ErrNumberFormat)
}
