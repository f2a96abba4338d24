package pid_test

import (
	"testing"

	"github.com/bdtaunu/graphtruth/pid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFinalState(t *testing.T) {
	cases := []struct {
		lund int64
		want bool
	}{
		{11, true}, {-13, true}, {211, true}, {-321, true},
		{22, true}, {2212, true}, {-2112, true},
		{511, false}, {12, false}, {0, false},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, pid.IsFinalState(c.lund), "lund=%d", c.lund)
	}
}

func TestIsUndetectable(t *testing.T) {
	assert.True(t, pid.IsUndetectable(12))
	assert.True(t, pid.IsUndetectable(-16))
	assert.True(t, pid.IsUndetectable(311))
	assert.False(t, pid.IsUndetectable(211))
}

func TestIsAcceptablePhotonMother(t *testing.T) {
	assert.True(t, pid.IsAcceptablePhotonMother(111))
	assert.True(t, pid.IsAcceptablePhotonMother(-413))
	assert.True(t, pid.IsAcceptablePhotonMother(423))
	assert.False(t, pid.IsAcceptablePhotonMother(521))
}

func TestBlockFor(t *testing.T) {
	name, err := pid.BlockFor(521)
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	name, err = pid.BlockFor(-211)
	require.NoError(t, err)
	assert.Equal(t, "h", name)

	_, err = pid.BlockFor(999999)
	require.ErrorIs(t, err, pid.ErrUnknownLund)
}

func TestCapacitiesAndDMax(t *testing.T) {
	caps := pid.Capacities()
	require.Len(t, caps, len(pid.BlockNames))
	assert.Equal(t, 800, caps[0])
	assert.Equal(t, 100, caps[len(caps)-1])

	assert.Equal(t, 2, pid.DMax("y"))
	assert.Equal(t, 4, pid.DMax("b"))
	assert.Equal(t, 0, pid.DMax("gamma"))
	assert.Equal(t, -1, pid.DMax("nonexistent"))
}
