// Package config loads study defaults for the josemltools CLI from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/pkg/log"
)

// Config holds the tunable defaults of a study run. Command-line flags
// override whatever the file sets.
type Config struct {
	// Bins is the histogram bin count of continuous studies.
	Bins int `yaml:"bins"`

	// FenceMultiplier scales the interquartile range when placing the
	// Tukey fences. 1.5 is the conventional value.
	FenceMultiplier float64 `yaml:"fence_multiplier"`

	// Alpha is the significance level of the normality test.
	Alpha float64 `yaml:"alpha"`

	// Plot holds the figure geometry.
	Plot PlotConfig `yaml:"plot"`

	// OutDir is where plots and artifacts are written.
	OutDir string `yaml:"out_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// PlotConfig is the figure geometry in centimeters.
type PlotConfig struct {
	WidthCm  float64 `yaml:"width_cm"`
	HeightCm float64 `yaml:"height_cm"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Bins:            20,
		FenceMultiplier: 1.5,
		Alpha:           0.05,
		Plot:            PlotConfig{WidthCm: 16, HeightCm: 10},
		OutDir:          ".",
		LogLevel:        "info",
	}
}

// Load reads a YAML configuration file. Fields absent from the file keep
// their Default values; the result is validated before being returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: reading %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config: %s", path)
	}
	return cfg, nil
}

// Validate checks every field and reports the first offending one.
func (c Config) Validate() error {
	if c.Bins <= 0 {
		return errors.NewValidationError("bins", "must be a positive integer", c.Bins)
	}
	if c.FenceMultiplier <= 0 {
		return errors.NewValidationError("fence_multiplier", "must be positive", c.FenceMultiplier)
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return errors.NewValidationError("alpha", "must be in (0, 1)", c.Alpha)
	}
	if c.Plot.WidthCm <= 0 || c.Plot.HeightCm <= 0 {
		return errors.NewValidationError("plot", "width_cm and height_cm must be positive", c.Plot)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.NewValidationError("log_level", "must be one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Level parses the configured log level. Validate must have passed.
func (c Config) Level() log.Level {
	return log.ParseLevel(c.LogLevel)
}
