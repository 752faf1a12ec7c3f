// Package numatcfg loads the small YAML configuration document that
// overrides the scheduler's worker count and row-tile threshold and the
// equality and tiny-divisor tolerances the mat package's testable
// properties and CLI use by default. Absence of a config file is not an error: Load returns
// the built-in defaults.
package numatcfg

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the overridable scheduler and tolerance knobs.
type Config struct {
	// Scheduler.Workers is the worker count passed to schedule.Parallelize;
	// 0 means "use runtime.GOMAXPROCS(0)".
	Scheduler struct {
		Workers      int `yaml:"workers"`
		MinSliceSize int `yaml:"minSliceSize"`
	} `yaml:"scheduler"`

	Tolerance struct {
		Equal float64 `yaml:"equal"`
		Tiny  float64 `yaml:"tiny"`
	} `yaml:"tolerance"`
}

// Default returns the built-in configuration: no worker override, the
// scheduler's own MinSliceSize, and the mat package's default tolerances.
func Default() Config {
	var c Config
	c.Scheduler.Workers = 0
	c.Scheduler.MinSliceSize = 64
	c.Tolerance.Equal = 1e-10
	c.Tolerance.Tiny = 1e-300
	return c
}

// Load reads a YAML configuration document from path, overlaying it onto
// Default(). A missing file is not an error: Load returns Default()
// unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
