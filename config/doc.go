// Package config loads and overrides the process configuration (§9
// "Configuration"): a positional TOML config file decoded with
// github.com/pelletier/go-toml/v2, overridable by functional Options —
// typically built from command-line flags parsed with cobra/pflag in
// cmd/. Precedence is CLI flag > config file value > built-in default,
// matching the original's Boost program_options precedence.
package config
