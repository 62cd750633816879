// Package config holds the file locations and thresholds for a report run.
// Values come from defaults, then an optional YAML file, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pable/splitstats/internal/aggregator"
	"github.com/pable/splitstats/internal/logging"
)

const (
	DefaultInputRecordsPath = "./data/raw/pitchdata.csv"
	DefaultCombinationsPath = "./data/reference/combinations.txt"
	DefaultOutputPath       = "./data/processed/output.csv"
)

// Config is the run configuration.
type Config struct {
	InputRecordsPath string         `yaml:"input_records_path"`
	CombinationsPath string         `yaml:"combinations_path"`
	OutputPath       string         `yaml:"output_path"`
	MinPA            int            `yaml:"min_pa"`
	Log              logging.Config `yaml:"log"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		InputRecordsPath: DefaultInputRecordsPath,
		CombinationsPath: DefaultCombinationsPath,
		OutputPath:       DefaultOutputPath,
		MinPA:            aggregator.DefaultMinPA,
		Log:              logging.Config{Level: "info", Format: "console"},
	}
}

// Load returns the defaults overlaid with the YAML file at path. An empty path
// returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every path is set and the PA floor is positive.
func (c *Config) Validate() error {
	var errs []error
	if c.InputRecordsPath == "" {
		errs = append(errs, errors.New("input_records_path is required"))
	}
	if c.CombinationsPath == "" {
		errs = append(errs, errors.New("combinations_path is required"))
	}
	if c.OutputPath == "" {
		errs = append(errs, errors.New("output_path is required"))
	}
	if c.MinPA < 1 {
		errs = append(errs, fmt.Errorf("min_pa must be at least 1, got %d", c.MinPA))
	}
	return errors.Join(errs...)
}
