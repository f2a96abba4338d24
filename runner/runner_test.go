package runner_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/bdtaunu/graphtruth/recordsource"
	"github.com/bdtaunu/graphtruth/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a minimal in-memory recordsource.Source, enough to drive
// Runner without a CSV file or database on disk.
type fakeSource struct {
	rows   []map[string]string
	pos    int
	closed bool
}

func (f *fakeSource) Next(ctx context.Context) (bool, error) {
	if f.pos >= len(f.rows) {
		return false, nil
	}
	f.pos++

	return true, nil
}

func (f *fakeSource) Get(field string) (string, error) {
	v, ok := f.rows[f.pos-1][field]
	if !ok {
		return "", recordsource.ErrUnknownField
	}

	return v, nil
}

func (f *fakeSource) Close() error {
	f.closed = true

	return nil
}

func enc(v ...int64) string {
	return arraydecode.EncodeArray(v)
}

func TestRunGraphExtractionBuildsCrossBlockGraph(t *testing.T) {
	row := map[string]string{
		"eid": "evt1",

		"y_n": "0", "y_lund": enc(), "y_ndaus": enc(),
		"y_d1lund": enc(), "y_d1idx": enc(), "y_d2lund": enc(), "y_d2idx": enc(),

		"b_n": "0", "b_lund": enc(), "b_ndaus": enc(),
		"b_d1lund": enc(), "b_d1idx": enc(), "b_d2lund": enc(), "b_d2idx": enc(),
		"b_d3lund": enc(), "b_d3idx": enc(), "b_d4lund": enc(), "b_d4idx": enc(),

		"d_n": "1", "d_lund": enc(413), "d_ndaus": enc(2),
		"d_d1lund": enc(211), "d_d1idx": enc(0), "d_d2lund": enc(321), "d_d2idx": enc(1),
		"d_d3lund": enc(0), "d_d3idx": enc(0), "d_d4lund": enc(0), "d_d4idx": enc(0),
		"d_d5lund": enc(0), "d_d5idx": enc(0),

		"c_n": "0", "c_lund": enc(), "c_ndaus": enc(),
		"c_d1lund": enc(), "c_d1idx": enc(), "c_d2lund": enc(), "c_d2idx": enc(),

		"h_n": "2", "h_lund": enc(211, 321), "h_ndaus": enc(0, 0),
		"h_d1lund": enc(0, 0), "h_d1idx": enc(0, 0), "h_d2lund": enc(0, 0), "h_d2idx": enc(0, 0),

		"l_n": "0", "l_lund": enc(), "l_ndaus": enc(),
		"l_d1lund": enc(), "l_d1idx": enc(), "l_d2lund": enc(), "l_d2idx": enc(), "l_d3lund": enc(), "l_d3idx": enc(),

		"gamma_n": "0", "gamma_lund": enc(), "gamma_ndaus": enc(),
	}

	src := &fakeSource{rows: []map[string]string{row}}
	r := runner.New(nil, nil)

	var out bytes.Buffer
	stats, err := r.RunGraphExtraction(context.Background(), src, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, runner.Stats{Processed: 1}, stats)

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row1 := records[1]
	assert.Equal(t, "evt1", row1[0])
	assert.Equal(t, "3", row1[1], "n_vertices")
	assert.Equal(t, "2", row1[2], "n_edges")

	from, err := arraydecode.DecodeArray(row1[3], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0}, from)

	to, err := arraydecode.DecodeArray(row1[4], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, to)

	lund, err := arraydecode.DecodeArray(row1[5], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{413, 211, 321}, lund)

	hIdx, err := arraydecode.DecodeArray(row1[10], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, hIdx, "h_reco_idx column")
}

func TestRunGraphExtractionSkipsFullBlock(t *testing.T) {
	row := map[string]string{"eid": "evt1"}
	for _, b := range []string{"y", "b", "d", "c", "l", "gamma"} {
		row[b+"_n"] = "0"
	}
	row["h_n"] = "100" // h's declared capacity

	src := &fakeSource{rows: []map[string]string{row}}
	r := runner.New(nil, nil)

	var out bytes.Buffer
	stats, err := r.RunGraphExtraction(context.Background(), src, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, runner.Stats{Skipped: 1}, stats)

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1, "header only, no data row for the saturated event")
}

func TestRunTruthMatchExtractionFullTree(t *testing.T) {
	row := map[string]string{
		"eid": "evt1",

		"mc_n_vertices":    "6",
		"mc_n_edges":       "5",
		"mc_from_vertices": enc(0, 1, 2, 2, 3),
		"mc_to_vertices":   enc(2, 2, 3, 4, 5),
		"mc_lund_id":       enc(9999, 9998, 511, 413, 321, 211),

		"reco_n_vertices":    "4",
		"reco_n_edges":       "3",
		"reco_from_vertices": enc(0, 0, 1),
		"reco_to_vertices":   enc(1, 2, 3),
		"reco_lund_id":       enc(511, 413, 321, 211),

		"h_reco_idx": enc(2, 3), "hmcidx": enc(4, 5),
		"l_reco_idx": enc(), "lmcidx": enc(),
		"gamma_reco_idx": enc(), "gammamcidx": enc(),

		"y_reco_idx": enc(0),
	}

	src := &fakeSource{rows: []map[string]string{row}}
	r := runner.New(nil, nil)

	var out bytes.Buffer
	stats, err := r.RunTruthMatchExtraction(context.Background(), src, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	assert.Equal(t, 1, stats.MatchedY)

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	row1 := records[1]
	assert.Equal(t, "evt1", row1[0])

	from, err := arraydecode.DecodeArray(row1[1], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 2, 3}, from, "pruned_mc_from_vertices")

	to, err := arraydecode.DecodeArray(row1[2], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5}, to, "pruned_mc_to_vertices")

	matching, err := arraydecode.DecodeArray(row1[3], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 4, 5}, matching)

	yStatus, err := arraydecode.DecodeArray(row1[4], arraydecode.KindInt64)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, yStatus)

	assert.Equal(t, "1", row1[5], "exist_matched_y")
}

func TestRunTruthMatchExtractionSkipsOnDecodeFailure(t *testing.T) {
	badRow := map[string]string{
		"eid":              "evt-bad",
		"mc_n_vertices":    "not-a-number",
		"mc_n_edges":       "0",
		"mc_from_vertices": enc(),
		"mc_to_vertices":   enc(),
		"mc_lund_id":       enc(),
	}
	src := &fakeSource{rows: []map[string]string{badRow}}
	r := runner.New(nil, nil)

	var out bytes.Buffer
	stats, err := r.RunTruthMatchExtraction(context.Background(), src, &out, nil)
	require.NoError(t, err)
	assert.Equal(t, runner.Stats{Skipped: 1}, stats)
}
