package csvsource_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bdtaunu/graphtruth/recordsource"
	"github.com/bdtaunu/graphtruth/recordsource/csvsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestCsvSourceIteratesRows(t *testing.T) {
	path := writeFixture(t, "event_id,lund\n1,511\n2,413\n")
	src, err := csvsource.New(path, []string{"event_id", "lund"})
	require.NoError(t, err)
	defer src.Close()

	ctx := context.Background()

	ok, err := src.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	v, err := src.Get("event_id")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	ok, err = src.Next(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	v, err = src.Get("lund")
	require.NoError(t, err)
	assert.Equal(t, "413", v)

	ok, err = src.Next(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCsvSourceUnknownFieldAtOpen(t *testing.T) {
	path := writeFixture(t, "event_id\n1\n")
	_, err := csvsource.New(path, []string{"does_not_exist"})
	require.ErrorIs(t, err, recordsource.ErrUnknownField)
}

func TestCsvSourceCloseIsIdempotent(t *testing.T) {
	path := writeFixture(t, "event_id\n1\n")
	src, err := csvsource.New(path, []string{"event_id"})
	require.NoError(t, err)

	require.NoError(t, src.Close())
	require.NoError(t, src.Close())
}
