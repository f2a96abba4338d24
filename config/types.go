package config

import "errors"

// Sentinel errors for config operations.
var (
	// ErrReadFile indicates the config file could not be read.
	ErrReadFile = errors.New("config: failed to read file")

	// ErrDecode indicates the config file's contents were not valid TOML
	// or did not match the expected schema.
	ErrDecode = errors.New("config: failed to decode")

	// ErrInvalid indicates the fully-resolved configuration (file
	// defaults plus overrides) fails a semantic check, e.g. an unknown
	// source kind.
	ErrInvalid = errors.New("config: invalid configuration")
)

// SourceConfig selects and parameterizes the RecordSource backend.
type SourceConfig struct {
	// Kind is "csv" or "postgres".
	Kind string `toml:"kind"`

	CSVPath string `toml:"csv_path"`

	PGConnString string `toml:"pg_conn_string"`
	Table        string `toml:"table"`
	FetchSize    int    `toml:"fetch_size"`
}

// OutputConfig names the per-event artifact destinations. The CSV path is
// always written; the graph-description paths are only written when
// Examine is set (§3 SUPPLEMENTED FEATURES, `--examine`).
type OutputConfig struct {
	CSVPath             string `toml:"csv_output"`
	MCGraphPath         string `toml:"mcgraph_output"`
	PrunedMCGraphPath   string `toml:"pruned_mcgraph_output"`
	RecoGraphPath       string `toml:"recograph_output"`
	TruthMatchGraphPath string `toml:"truth_match_output"`
}

// Config is the fully-resolved process configuration.
type Config struct {
	Source            SourceConfig `toml:"source"`
	Output            OutputConfig `toml:"output"`
	ParticleTablePath string       `toml:"particle_table_path"`
	Examine           bool         `toml:"examine"`
}

// Option mutates a Config after it has been decoded from file, used to
// layer CLI-flag overrides on top of file-provided defaults.
type Option func(*Config)

// defaultConfig returns the built-in defaults applied before the config
// file is decoded over them.
func defaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Kind:      "csv",
			FetchSize: 5000,
		},
	}
}
