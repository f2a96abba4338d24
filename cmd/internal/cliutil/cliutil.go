// Package cliutil holds the process wiring shared by cmd/extract_graph and
// cmd/extract_truth_match: flag registration, config resolution, logger
// construction, and output-file handling. Neither entrypoint is large
// enough on its own to justify duplicating this by hand.
package cliutil

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bdtaunu/graphtruth/config"
	"github.com/bdtaunu/graphtruth/particletable"
)

// Flags bundles the CLI-flag values common to both entrypoints (spec.md
// §6 "CLI shape"). The four *Output paths only take effect when Examine is
// set.
type Flags struct {
	DBName          string
	TableName       string
	OutputFname     string
	CursorFetchSize int
	PDTFname        string
	Examine         bool

	MCGraphOutput       string
	PrunedMCGraphOutput string
	RecoGraphOutput     string
	TruthMatchOutput    string
}

// Register adds the shared flag set to cmd, grounded on spec.md §6's named
// option set. CursorFetchSize stays 0 when the flag is absent, so the
// config file's fetch_size, or config's built-in default of 5000, applies.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.DBName, "dbname", "", "target database connection string (selects a postgres source)")
	fs.StringVar(&f.TableName, "table_name", "", "cursor source table name")
	fs.StringVar(&f.OutputFname, "output_fname", "", "CSV sink path")
	fs.IntVar(&f.CursorFetchSize, "cursor_fetch_size", 0, "rows per cursor fetch (default 5000)")
	fs.StringVar(&f.PDTFname, "pdt_fname", "", "particle name table path")
	fs.BoolVar(&f.Examine, "examine", false, "additionally emit per-event graph descriptions")
	fs.StringVar(&f.MCGraphOutput, "mcgraph_output", "", "MC graph description sink (truth-match examine)")
	fs.StringVar(&f.PrunedMCGraphOutput, "pruned_mcgraph_output", "", "pruned MC graph description sink (truth-match examine)")
	fs.StringVar(&f.RecoGraphOutput, "recograph_output", "", "reco graph description sink (examine)")
	fs.StringVar(&f.TruthMatchOutput, "truth_match_output", "", "matched reco graph description sink (truth-match examine)")

	return f
}

// LoadConfig resolves a Config from the optional positional configPath
// layered under these flags, CLI overrides winning (§1 AMBIENT STACK
// "program_options precedence: CLI > config file > default").
func (f *Flags) LoadConfig(configPath string) (*config.Config, error) {
	opts := []config.Option{
		config.WithOutputCSVPath(f.OutputFname),
		config.WithFetchSize(f.CursorFetchSize),
		config.WithParticleTablePath(f.PDTFname),
		config.WithExamine(f.Examine),
		config.WithMCGraphOutputPath(f.MCGraphOutput),
		config.WithPrunedMCGraphOutputPath(f.PrunedMCGraphOutput),
		config.WithRecoGraphOutputPath(f.RecoGraphOutput),
		config.WithTruthMatchOutputPath(f.TruthMatchOutput),
	}
	if f.DBName != "" {
		opts = append(opts, config.WithSourceKind("postgres"), config.WithPGConnString(f.DBName))
	}
	if f.TableName != "" {
		opts = append(opts, config.WithTable(f.TableName))
	}

	return config.Load(configPath, opts...)
}

// NewLogger builds a console-encoded *zap.Logger at info level, writing to
// stderr so it never interleaves with CSV/graph-description output on
// stdout or a file sink.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			MessageKey:     "msg",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return cfg.Build()
}

// LoadParticleTable loads the particle name table named by cfg, or returns
// a nil table if none was configured — Runner falls back to raw-pid
// labeling in that case.
func LoadParticleTable(path string) (*particletable.Table, error) {
	if path == "" {
		return nil, nil
	}

	return particletable.Load(path)
}

// CreateOutput opens path for writing, truncating any existing file.
// Returns an error wrapped with path context on failure.
func CreateOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	return f, nil
}
