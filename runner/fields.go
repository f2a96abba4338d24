package runner

import "fmt"

// blockFields names the textual columns a single reconstruction block
// contributes for a given event (§3 Reconstruction Record, §6 Reco-graph
// extraction column set): "{b}_n", "{b}_lund", "{b}_ndaus", and, for each
// of dmax daughter slots (1-indexed to match the upstream producer's
// d1lund/d1idx naming), "{b}_d{k}lund"/"{b}_d{k}idx".
type blockFields struct {
	n        string
	lund     string
	ndaus    string
	dauLund  []string
	dauIndex []string
}

func newBlockFields(block string, dmax int) blockFields {
	bf := blockFields{
		n:        block + "_n",
		lund:     block + "_lund",
		ndaus:    block + "_ndaus",
		dauLund:  make([]string, dmax),
		dauIndex: make([]string, dmax),
	}
	for k := 1; k <= dmax; k++ {
		bf.dauLund[k-1] = fmt.Sprintf("%s_d%dlund", block, k)
		bf.dauIndex[k-1] = fmt.Sprintf("%s_d%didx", block, k)
	}

	return bf
}

// recoIdxColumn names the per-block passthrough global-index column
// emitted by the graph-extraction CSV ("{b}_reco_idx", §6 Output CSV).
func recoIdxColumn(block string) string {
	return block + "_reco_idx"
}

// familySeedFields names a final-state family's seed columns in the
// truth-match extraction's input (§6: "h_reco_idx"/"hmcidx",
// "l_reco_idx"/"lmcidx", "gamma_reco_idx"/"gammamcidx").
func familySeedFields(family string) (recoIdx, mcIdx string) {
	return family + "_reco_idx", family + "mcidx"
}

// graphExtractionFields is the full input column set for RunGraphExtraction
// (§6 Reco-graph extraction): "eid" plus every block's columns.
func graphExtractionFields(blocks []blockFields) []string {
	fields := []string{"eid"}
	for _, bf := range blocks {
		fields = append(fields, bf.n, bf.lund, bf.ndaus)
		fields = append(fields, bf.dauLund...)
		fields = append(fields, bf.dauIndex...)
	}

	return fields
}

// truthMatchFields is the full input column set for RunTruthMatchExtraction
// (§6 Truth-match extraction).
func truthMatchFields() []string {
	fields := []string{
		"eid",
		"mc_n_vertices", "mc_n_edges", "mc_from_vertices", "mc_to_vertices", "mc_lund_id",
		"reco_n_vertices", "reco_n_edges", "reco_from_vertices", "reco_to_vertices", "reco_lund_id",
		"y_reco_idx",
	}
	for _, fam := range finalStateFamilies {
		recoIdx, mcIdx := familySeedFields(fam)
		fields = append(fields, recoIdx, mcIdx)
	}

	return fields
}
