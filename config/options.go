package config

// WithSourceKind overrides the RecordSource backend selection. A blank
// kind is a no-op.
func WithSourceKind(kind string) Option {
	return func(c *Config) {
		if kind != "" {
			c.Source.Kind = kind
		}
	}
}

// WithCSVPath overrides the CSV input path. A blank path is a no-op.
func WithCSVPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Source.CSVPath = path
		}
	}
}

// WithPGConnString overrides the PostgreSQL connection string. A blank
// value is a no-op.
func WithPGConnString(conn string) Option {
	return func(c *Config) {
		if conn != "" {
			c.Source.PGConnString = conn
		}
	}
}

// WithTable overrides the source table name. A blank value is a no-op.
func WithTable(table string) Option {
	return func(c *Config) {
		if table != "" {
			c.Source.Table = table
		}
	}
}

// WithFetchSize overrides the cursor fetch batch size. A non-positive
// value is a no-op.
func WithFetchSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Source.FetchSize = n
		}
	}
}

// WithParticleTablePath overrides the particle name-lookup table path. A
// blank value is a no-op.
func WithParticleTablePath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.ParticleTablePath = path
		}
	}
}

// WithExamine sets the --examine flag, gating GraphEmitter output. A false
// value is a no-op.
func WithExamine(examine bool) Option {
	return func(c *Config) {
		if examine {
			c.Examine = true
		}
	}
}

// WithOutputCSVPath overrides the CSV output path. A blank value is a
// no-op.
func WithOutputCSVPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Output.CSVPath = path
		}
	}
}

// WithMCGraphOutputPath overrides the MC graph description output path.
func WithMCGraphOutputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Output.MCGraphPath = path
		}
	}
}

// WithPrunedMCGraphOutputPath overrides the pruned MC graph description
// output path.
func WithPrunedMCGraphOutputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Output.PrunedMCGraphPath = path
		}
	}
}

// WithRecoGraphOutputPath overrides the reconstruction graph description
// output path.
func WithRecoGraphOutputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Output.RecoGraphPath = path
		}
	}
}

// WithTruthMatchOutputPath overrides the matched reco graph description
// output path.
func WithTruthMatchOutputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.Output.TruthMatchGraphPath = path
		}
	}
}
