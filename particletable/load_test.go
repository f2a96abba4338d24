package particletable_test

import (
	"strings"
	"testing"

	"github.com/bdtaunu/graphtruth/particletable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `
B0 511
B0bar -511
pi+ 211

gamma 22
`

func TestLoadFromRoundTrip(t *testing.T) {
	tbl, err := particletable.LoadFrom(strings.NewReader(fixture))
	require.NoError(t, err)

	id, err := tbl.ID("B0")
	require.NoError(t, err)
	assert.Equal(t, int64(511), id)

	name, err := tbl.Name(211)
	require.NoError(t, err)
	assert.Equal(t, "pi+", name)
}

func TestLabelFallsBackToRawLund(t *testing.T) {
	tbl, err := particletable.LoadFrom(strings.NewReader(fixture))
	require.NoError(t, err)

	assert.Equal(t, "gamma", tbl.Label(22))
	assert.Equal(t, "99999", tbl.Label(99999))
}

func TestLoadFromMalformedLine(t *testing.T) {
	_, err := particletable.LoadFrom(strings.NewReader("B0 511 extra\n"))
	require.ErrorIs(t, err, particletable.ErrMalformedLine)
}

func TestUnknownLookups(t *testing.T) {
	tbl, err := particletable.LoadFrom(strings.NewReader(fixture))
	require.NoError(t, err)

	_, err = tbl.ID("does-not-exist")
	require.ErrorIs(t, err, particletable.ErrUnknownName)

	_, err = tbl.Name(424242)
	require.ErrorIs(t, err, particletable.ErrUnknownID)
}
