package main

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is the TOML run configuration. Every field has a default aimed at
// the fixed dataset paths, so running with no config file processes the
// standard dataset end to end.
type Config struct {
	Input struct {
		Path      string `toml:"path"`
		HasHeader bool   `toml:"has_header"`
		Delimiter string `toml:"delimiter"`
		Strict    bool   `toml:"strict"`
	} `toml:"input"`
	Output struct {
		Path      string `toml:"path"`
		Format    string `toml:"format"` // csv|parquet|jsonl
		Delimiter string `toml:"delimiter"`
	} `toml:"output"`
	Clean struct {
		IQRMultiplier float64  `toml:"iqr_multiplier"`
		SkipColumns   []string `toml:"skip_columns"`
	} `toml:"clean"`
	Regions struct {
		Enabled bool   `toml:"enabled"`
		Config  string `toml:"config"` // YAML region mapping; empty uses built-ins
		Column  string `toml:"column"`
		Dir     string `toml:"dir"`
	} `toml:"regions"`
	Steps []Step `toml:"steps"`
}

// Step is an optional pre-cleaning transform, applied in config order
// before the fixed clean/derive stages.
type Step struct {
	Type    string            `toml:"type"`
	Column  string            `toml:"column"`
	Pattern string            `toml:"pattern"`
	Replace string            `toml:"replace"`
	Min     *float64          `toml:"min"`
	Max     *float64          `toml:"max"`
	Values  []string          `toml:"values"`
	Map     map[string]string `toml:"map"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Input.Path = "Bangladesh_Environmental_Climate_Change_Impact.csv"
	cfg.Input.HasHeader = true
	cfg.Output.Path = "data/processed_climate_data.csv"
	cfg.Output.Format = "csv"
	cfg.Clean.IQRMultiplier = 1.5
	cfg.Regions.Column = "District"
	cfg.Regions.Dir = "data/regions"
	return cfg
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
