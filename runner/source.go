package runner

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bdtaunu/graphtruth/config"
	"github.com/bdtaunu/graphtruth/pid"
	"github.com/bdtaunu/graphtruth/recordsource"
	"github.com/bdtaunu/graphtruth/recordsource/csvsource"
	"github.com/bdtaunu/graphtruth/recordsource/pgsource"
)

// GraphExtractionInputFields is the full input column set RunGraphExtraction
// reads from its source: "eid" plus every block's columns (§6 Reco-graph
// extraction). Exported so cmd/ can pass it to OpenSource without
// duplicating pid's block registry.
func GraphExtractionInputFields() []string {
	blocks := make([]blockFields, len(pid.BlockNames))
	for i, name := range pid.BlockNames {
		blocks[i] = newBlockFields(name, pid.DMax(name))
	}

	return graphExtractionFields(blocks)
}

// TruthMatchInputFields is the full input column set RunTruthMatchExtraction
// reads from its source (§6 Truth-match extraction).
func TruthMatchInputFields() []string {
	return truthMatchFields()
}

// OpenSource constructs the RecordSource named by cfg.Source.Kind, scoped
// to exactly the columns in fields (§4.1 RecordSource). csv opens the file
// directly; postgres dials a pool and declares a cursor over cfg.Source.Table
// sized by cfg.Source.FetchSize. Fails with config.ErrInvalid on an unknown
// kind — Load already rejects this earlier, but OpenSource re-checks since
// it can be called independently of Load's validation.
func OpenSource(ctx context.Context, cfg *config.Config, fields []string) (recordsource.Source, error) {
	switch cfg.Source.Kind {
	case "csv":
		return csvsource.New(cfg.Source.CSVPath, fields)
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Source.PGConnString)
		if err != nil {
			return nil, fmt.Errorf("%w: connect: %v", recordsource.ErrSourceError, err)
		}

		src, err := pgsource.New(ctx, pool, cfg.Source.Table, fields, cfg.Source.FetchSize)
		if err != nil {
			pool.Close()

			return nil, err
		}

		return src, nil
	default:
		return nil, fmt.Errorf("%w: unknown source.kind %q", config.ErrInvalid, cfg.Source.Kind)
	}
}
