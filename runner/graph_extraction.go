package runner

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/bdtaunu/graphtruth/arraydecode"
	"github.com/bdtaunu/graphtruth/blockindex"
	"github.com/bdtaunu/graphtruth/dgraph"
	"github.com/bdtaunu/graphtruth/graphbuilder"
	"github.com/bdtaunu/graphtruth/graphemitter"
	"github.com/bdtaunu/graphtruth/pid"
	"github.com/bdtaunu/graphtruth/recordsource"
	"go.uber.org/zap"
)

var graphExtractionHeader = []string{
	"eid", "n_vertices", "n_edges", "from", "to", "lund_id",
	"y_reco_idx", "b_reco_idx", "d_reco_idx", "c_reco_idx", "h_reco_idx", "l_reco_idx", "gamma_reco_idx",
}

// RunGraphExtraction reads block-structured reconstruction records from
// src and writes one reco-graph CSV row per event to out (§6 Output CSV,
// "Graph file columns"). Events whose BlockIndex saturates any block are
// skipped without error (§4.9, §7 "any_full() filter is a domain guard,
// not an error"); any other decode/build failure is logged and the event
// is skipped, and iteration continues. If examineReco is non-nil, a
// graphviz-style description of each surviving event's reco graph is
// additionally written to it (§3 SUPPLEMENTED FEATURES, --examine).
func (r *Runner) RunGraphExtraction(ctx context.Context, src recordsource.Source, out io.Writer, examineReco io.Writer) (Stats, error) {
	blockDescs := make([]blockFields, len(pid.BlockNames))
	for i, name := range pid.BlockNames {
		blockDescs[i] = newBlockFields(name, pid.DMax(name))
	}

	idx, err := blockindex.New(pid.BlockNames, pid.Capacities())
	if err != nil {
		return Stats{}, err
	}

	w := csv.NewWriter(out)
	if err := w.Write(graphExtractionHeader); err != nil {
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

		skip, err := r.processGraphExtractionRecord(src, idx, blockDescs, eid, w, emitter, labels, examineReco)
		if err != nil {
			r.logEventFailure(eid, err)
			stats.Skipped++

			continue
		}
		if skip {
			stats.Skipped++

			continue
		}

		stats.Processed++
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return stats, err
	}

	r.logSummary(stats)

	return stats, nil
}

// processGraphExtractionRecord builds and emits a single event. The bool
// return reports an any_full skip (not an error).
func (r *Runner) processGraphExtractionRecord(
	src recordsource.Source,
	idx *blockindex.BlockIndex,
	blockDescs []blockFields,
	eid string,
	w *csv.Writer,
	emitter *graphemitter.Emitter,
	labels graphemitter.LabelSource,
	examineReco io.Writer,
) (bool, error) {
	sizes := make([]int, len(blockDescs))
	for i, bf := range blockDescs {
		n, err := getScalarInt(src, bf.n)
		if err != nil {
			return false, err
		}
		sizes[i] = n
	}
	if err := idx.SetSizes(sizes); err != nil {
		return false, err
	}
	if idx.AnyFull() {
		return true, nil
	}

	blocks := make([]graphbuilder.BlockInput, len(blockDescs))
	for i, bf := range blockDescs {
		adj, err := decodeBlockAdjacency(src, bf, sizes[i], pid.DMax(pid.BlockNames[i]))
		if err != nil {
			return false, err
		}
		blocks[i] = graphbuilder.BlockInput{Name: pid.BlockNames[i], Adjacency: adj}
	}

	g, err := graphbuilder.BuildReco(idx, blocks)
	if err != nil {
		return false, err
	}

	if err := writeGraphExtractionRow(w, eid, idx, g); err != nil {
		return false, err
	}

	if examineReco != nil {
		if err := emitter.Emit(examineReco, g, labels, nil); err != nil {
			return false, err
		}
	}

	return false, nil
}

func writeGraphExtractionRow(w *csv.Writer, eid string, idx *blockindex.BlockIndex, g *dgraph.Graph) error {
	total := idx.Total()

	var from, to, lund []int64
	for li := 0; li < total; li++ {
		ref, ok := g.ByLocalIndex(li)
		if !ok {
			continue
		}
		p, err := g.PID(ref)
		if err != nil {
			return err
		}
		lund = append(lund, p)

		children, err := g.OutEdges(ref)
		if err != nil {
			return err
		}
		for _, child := range children {
			childLi, err := g.LocalIndex(child)
			if err != nil {
				return err
			}
			from = append(from, int64(li))
			to = append(to, int64(childLi))
		}
	}

	row := []string{
		eid,
		strconv.Itoa(total),
		strconv.Itoa(len(from)),
		arraydecode.EncodeArray(from),
		arraydecode.EncodeArray(to),
		arraydecode.EncodeArray(lund),
	}
	for _, block := range pid.BlockNames {
		row = append(row, arraydecode.EncodeArray(blockIdxRange(idx, block)))
	}

	return w.Write(row)
}

// blockIdxRange returns the current event's global-index range for block,
// [start, start+size), the passthrough column downstream truth-match
// extraction consumes as its family seed reco indices (§6).
func blockIdxRange(idx *blockindex.BlockIndex, block string) []int64 {
	start, err := idx.Start(block)
	if err != nil {
		return nil
	}
	size, err := idx.Size(block)
	if err != nil {
		return nil
	}

	out := make([]int64, size)
	for i := range out {
		out[i] = int64(start + i)
	}

	return out
}

func (r *Runner) logEventFailure(eid string, err error) {
	if r.logger == nil {
		return
	}
	r.logger.Info("skipping event",
		zap.String("event_id", eid),
		zap.String("error_kind", classifyError(err)),
		zap.String("message", err.Error()),
	)
}

func (r *Runner) logSummary(stats Stats) {
	if r.logger == nil {
		return
	}
	r.logger.Info("batch complete",
		zap.Int("processed", stats.Processed),
		zap.Int("skipped", stats.Skipped),
		zap.Int("matched_y", stats.MatchedY),
	)
}
