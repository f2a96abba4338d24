package runner

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/bdtaunu/graphtruth/graphemitter"
	"github.com/bdtaunu/graphtruth/mcpruner"
	"github.com/bdtaunu/graphtruth/recordsource"
	"github.com/bdtaunu/graphtruth/truthmatcher"
)

var truthMatchHeader = []string{
	"eid", "pruned_mc_from_vertices", "pruned_mc_to_vertices", "matching", "y_match_status", "exist_matched_y",
}

// ExamineWriters names the per-event graph-description sinks gated by
// --examine (§3 SUPPLEMENTED FEATURES). Any field left nil skips that
// output. TruthMatch renders the reco graph annotated with the computed
// matching vector, mirroring examine_truth_match.cc's TruthMatchGraphPrinter.
type ExamineWriters struct {
	MCGraph       io.Writer
	PrunedMCGraph io.Writer
	Reco          io.Writer
	TruthMatch    io.Writer
}

// RunTruthMatchExtraction reads already-assembled MC and reco graphs plus
// detector-level final-state seeds from src, computes the truth matching
// for each event, and writes one CSV row per event to out (§4.7, §4.9,
// §6 "Truth-match file columns"). Failures within an event are logged
// and the event is skipped; iteration continues.
func (r *Runner) RunTruthMatchExtraction(ctx context.Context, src recordsource.Source, out io.Writer, examine *ExamineWriters) (Stats, error) {
	w := csv.NewWriter(out)
	if err := w.Write(truthMatchHeader); err != nil {
		return Stats{}, err
	}

	emitter := graphemitter.NewEmitter(r.style)
	labels := r.labelSource()

	var stats Stats
	for {
		ok, err := src.Next(ctx)
		if err != nil {
			return stats, err
		}
		if !ok {
			break
		}

		eid, err := src.Get("eid")
		if err != nil {
			return stats, err
		}

		matchedY, err := r.processTruthMatchRecord(src, eid, w, emitter, labels, examine)
		if err != nil {
			r.logEventFailure(eid, err)
			stats.Skipped++

			continue
		}

		stats.Processed++
		if matchedY {
			stats.MatchedY++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return stats, err
	}

	r.logSummary(stats)

	return stats, nil
}

func (r *Runner) processTruthMatchRecord(
	src recordsource.Source,
	eid string,
	w *csv.Writer,
	emitter *graphemitter.Emitter,
	labels graphemitter.LabelSource,
	examine *ExamineWriters,
) (bool, error) {
	mcGraph, err := buildGraphFromFields(src, "mc_n_vertices", "mc_from_vertices", "mc_to_vertices", "mc_lund_id")
	if err != nil {
		return false, err
	}

	pruned, err := mcpruner.Prune(mcGraph)
	if err != nil {
		return false, err
	}

	recoGraph, err := buildGraphFromFields(src, "reco_n_vertices", "reco_from_vertices", "reco_to_vertices", "reco_lund_id")
	if err != nil {
		return false, err
	}

	seeds, err := decodeSeeds(src)
	if err != nil {
		return false, err
	}

	matching, err := truthmatcher.Match(recoGraph, pruned, seeds)
	if err != nil {
		return false, err
	}

	yRecoIdx, err := getIntArray(src, "y_reco_idx")
	if err != nil {
		return false, err
	}
	yMatchStatus, existMatchedY := computeYMatchStatus(matching, yRecoIdx)

	if err := writeTruthMatchRow(w, eid, pruned, matching, yMatchStatus, existMatchedY); err != nil {
		return false, err
	}

	if examine != nil {
		if err := emitExamineOutputs(emitter, labels, mcGraph, pruned, recoGraph, matching, examine); err != nil {
			return false, err
		}
	}

	return existMatchedY, nil
}

func buildGraphFromFields(src recordsource.Source, nField, fromField, toField, lundField string) (*dgraph.Graph, error) {
	n, err := getScalarInt(src, nField)
	if err != nil {
		return nil, err
	}
	from, err := getIntArray(src, fromField)
	if err != nil {
		return nil, err
	}
	to, err := getIntArray(src, toField)
	if err != nil {
		return nil, err
	}
	lund, err := getIntArray(src, lundField)
	if err != nil {
		return nil, err
	}

	return graphbuilder.Build(n, toIntSlice(from), toIntSlice(to), lund)
}

// decodeSeeds reads every final-state family's parallel reco/mc index
// sequences and concatenates them into the matcher's seed list (§4.7
// Seeds). Fails with ErrShapeError if a family's two sequences disagree
// in length.
func decodeSeeds(src recordsource.Source) ([]truthmatcher.Seed, error) {
	var seeds []truthmatcher.Seed

	for _, fam := range finalStateFamilies {
		recoField, mcField := familySeedFields(fam)

		recoIdx, err := getIntArray(src, recoField)
		if err != nil {
			return nil, err
		}
		mcIdx, err := getIntArray(src, mcField)
		if err != nil {
			return nil, err
		}
		if len(recoIdx) != len(mcIdx) {
			return nil, fmt.Errorf("%w: family %q: %d reco indices, %d mc indices", ErrShapeError, fam, len(recoIdx), len(mcIdx))
		}

		for i := range recoIdx {
			seeds = append(seeds, truthmatcher.Seed{
				RecoLocalIndex:    int(recoIdx[i]),
				MatchedLocalIndex: int(mcIdx[i]),
			})
		}
	}

	return seeds, nil
}

// computeYMatchStatus derives, for each y-family candidate's reco local
// index, 1 if it ended up matched and -1 otherwise (§4.9), plus the
// event's existMatchedY flag: true iff at least one entry is matched.
func computeYMatchStatus(matching []int, yRecoIdx []int64) ([]int64, bool) {
	status := make([]int64, len(yRecoIdx))
	exists := false
	for i, ri := range yRecoIdx {
		idx := int(ri)
		if idx >= 0 && idx < len(matching) && matching[idx] >= 0 {
			status[i] = 1
			exists = true
		} else {
			status[i] = -1
		}
	}

	return status, exists
}

func writeTruthMatchRow(w *csv.Writer, eid string, pruned *mcpruner.Pruned, matching []int, yMatchStatus []int64, existMatchedY bool) error {
	from, to, err := prunedEdges(pruned)
	if err != nil {
		return err
	}

	matchingWide := make([]int64, len(matching))
	for i, m := range matching {
		matchingWide[i] = int64(m)
	}

	exist := int64(0)
	if existMatchedY {
		exist = 1
	}

	return w.Write([]string{
		eid,
		arraydecode.EncodeArray(from),
		arraydecode.EncodeArray(to),
		arraydecode.EncodeArray(matchingWide),
		arraydecode.EncodeArray(yMatchStatus),
		fmt.Sprintf("%d", exist),
	})
}

// prunedEdges walks the pruned MC graph's surviving vertices in original
// local_index order and emits its edge list in those terms, the form
// downstream consumers expect (§6 "pruned_mc_from_vertices"/"_to_vertices").
func prunedEdges(pruned *mcpruner.Pruned) ([]int64, []int64, error) {
	var from, to []int64
	for _, ref := range pruned.Graph.LiveVertices() {
		li, err := pruned.Graph.LocalIndex(ref)
		if err != nil {
			return nil, nil, err
		}
		children, err := pruned.Graph.OutEdges(ref)
		if err != nil {
			return nil, nil, err
		}
		for _, child := range children {
			childLi, err := pruned.Graph.LocalIndex(child)
			if err != nil {
				return nil, nil, err
			}
			from = append(from, int64(li))
			to = append(to, int64(childLi))
		}
	}

	return from, to, nil
}

func emitExamineOutputs(
	emitter *graphemitter.Emitter,
	labels graphemitter.LabelSource,
	mcGraph *dgraph.Graph,
	pruned *mcpruner.Pruned,
	recoGraph *dgraph.Graph,
	matching []int,
	examine *ExamineWriters,
) error {
	if examine.MCGraph != nil {
		if err := emitter.Emit(examine.MCGraph, mcGraph, labels, nil); err != nil {
			return err
		}
	}
	if examine.PrunedMCGraph != nil {
		if err := emitter.Emit(examine.PrunedMCGraph, pruned.Graph, labels, nil); err != nil {
			return err
		}
	}
	if examine.Reco != nil {
		if err := emitter.Emit(examine.Reco, recoGraph, labels, nil); err != nil {
			return err
		}
	}
	if examine.TruthMatch != nil {
		if err := emitter.Emit(examine.TruthMatch, recoGraph, labels, matching); err != nil {
			return err
		}
	}

	return nil
}
