// Package config loads the numeric training and selection parameters from a
// YAML file, applying defaults for anything left unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Selection holds the hidden-state search parameters.
type Selection struct {
	MinStates      int `yaml:"min_states"`
	MaxStates      int `yaml:"max_states"`
	ConstantStates int `yaml:"constant_states"`
	MaxFolds       int `yaml:"max_folds"`
}

// Training holds the model-fitting parameters.
type Training struct {
	MaxIterations int   `yaml:"max_iterations"`
	RandomSeed    int64 `yaml:"random_seed"`
	Verbose       bool  `yaml:"verbose"`
}

// Root is the full configuration document.
type Root struct {
	Selection Selection `yaml:"selection"`
	Training  Training  `yaml:"training"`
	Paths     struct {
		Dataset string `yaml:"dataset"`
	} `yaml:"paths"`
}

// Default returns the configuration with every parameter at its default.
func Default() *Root {
	cfg := &Root{}
	cfg.applyDefaults()
	return cfg
}

func (c *Root) applyDefaults() {
	if c.Selection.MinStates == 0 {
		c.Selection.MinStates = 2
	}
	if c.Selection.MaxStates == 0 {
		c.Selection.MaxStates = 10
	}
	if c.Selection.ConstantStates == 0 {
		c.Selection.ConstantStates = 3
	}
	if c.Selection.MaxFolds == 0 {
		c.Selection.MaxFolds = 3
	}
	if c.Training.MaxIterations == 0 {
		c.Training.MaxIterations = 1000
	}
	if c.Training.RandomSeed == 0 {
		c.Training.RandomSeed = 14
	}
}

// LoadFile reads the configuration from path.
func LoadFile(path string) (*Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Root
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Load probes the conventional configuration locations and returns the
// first file that parses, or the defaults if none exists.
func Load() (*Root, error) {
	env := os.Getenv("CONFIG_ENV")
	if env == "" {
		env = "dev"
	}
	guess := []string{
		filepath.Join("config", env, "config.yaml"),
		"config.yaml",
	}
	for _, p := range guess {
		if cfg, err := LoadFile(p); err == nil {
			return cfg, nil
		}
	}
	return Default(), nil
}
