package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Load reads the TOML config file at path over the built-in defaults,
// then applies overrides in order (later overrides win) — typically
// flags parsed by cobra/pflag in cmd/. Fails with ErrReadFile or
// ErrDecode on the file read/parse, or ErrInvalid if the resolved
// configuration names an unrecognized source kind or lacks the settings
// its source kind needs.
func Load(path string, overrides ...Option) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
		}
	}

	for _, opt := range overrides {
		opt(cfg)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Source.Kind {
	case "csv":
		if cfg.Source.CSVPath == "" {
			return fmt.Errorf("%w: source.kind=csv requires source.csv_path", ErrInvalid)
		}
	case "postgres":
		if cfg.Source.PGConnString == "" || cfg.Source.Table == "" {
			return fmt.Errorf("%w: source.kind=postgres requires pg_conn_string and table", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown source.kind %q", ErrInvalid, cfg.Source.Kind)
	}

	return nil
}
