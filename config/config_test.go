package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Josemvg/josemltools/pkg/errors"
	"github.com/Josemvg/josemltools/pkg/log"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eda.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Bins != 20 || cfg.FenceMultiplier != 1.5 || cfg.Alpha != 0.05 {
		t.Errorf("Default() = %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
	if cfg.Level() != log.LevelInfo {
		t.Errorf("Level() = %v, want info", cfg.Level())
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
bins: 30
alpha: 0.01
plot:
  width_cm: 20
  height_cm: 12
log_level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Bins != 30 || cfg.Alpha != 0.01 {
		t.Errorf("Load() = %+v", cfg)
	}
	// Absent fields keep defaults.
	if cfg.FenceMultiplier != 1.5 {
		t.Errorf("FenceMultiplier = %v, want default 1.5", cfg.FenceMultiplier)
	}
	if cfg.Plot.WidthCm != 20 || cfg.Plot.HeightCm != 12 {
		t.Errorf("Plot = %+v", cfg.Plot)
	}
	if cfg.Level() != log.LevelDebug {
		t.Errorf("Level() = %v, want debug", cfg.Level())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
	if _, err := Load(writeConfig(t, "bins: [not a number")); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		param  string
	}{
		{"zero bins", func(c *Config) { c.Bins = 0 }, "bins"},
		{"negative fence", func(c *Config) { c.FenceMultiplier = -1 }, "fence_multiplier"},
		{"alpha too large", func(c *Config) { c.Alpha = 1 }, "alpha"},
		{"zero plot width", func(c *Config) { c.Plot.WidthCm = 0 }, "plot"},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			var vErr *errors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if vErr.ParamName != tt.param {
				t.Errorf("ParamName = %q, want %q", vErr.ParamName, tt.param)
			}
		})
	}
}
