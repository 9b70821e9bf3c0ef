package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Unit != "oscillator" {
		t.Errorf("expected unit oscillator, got %s", cfg.Unit)
	}
	if cfg.Count <= 0 {
		t.Error("count should be positive")
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(c *Config) {}, true},
		{"zero count", func(c *Config) { c.Count = 0 }, true},
		{"negative count", func(c *Config) { c.Count = -1 }, false},
		{"zero dt", func(c *Config) { c.Dt = 0 }, false},
		{"negative duration", func(c *Config) { c.Duration = -1 }, false},
		{"chain without length", func(c *Config) { c.Unit = "chain"; c.Params.ChainLen = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	cfg := DefaultConfig()
	cfg.Unit = "chain"
	cfg.Count = 5
	cfg.Params.ChainLen = 7
	cfg.Init = []float64{0.1, 0.2}
	cfg.Drive.Frequency = 2.5

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Unit != "chain" || loaded.Count != 5 {
		t.Errorf("roundtrip lost unit/count: %s/%d", loaded.Unit, loaded.Count)
	}
	if loaded.Params.ChainLen != 7 {
		t.Errorf("roundtrip lost chain_len: %d", loaded.Params.ChainLen)
	}
	if len(loaded.Init) != 2 || loaded.Init[1] != 0.2 {
		t.Errorf("roundtrip lost init: %v", loaded.Init)
	}
	if loaded.Drive.Frequency != 2.5 {
		t.Errorf("roundtrip lost drive: %v", loaded.Drive)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("oscillator", "relaxed")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Stiffness != 4.0 {
		t.Errorf("expected stiffness 4.0, got %f", cfg.Params.Stiffness)
	}

	if GetPreset("oscillator", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "relaxed") != nil {
		t.Error("expected nil for nonexistent unit")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("integrator")) == 0 {
		t.Error("expected presets for integrator")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent unit")
	}
}

func TestInitValue(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Init = []float64{0.5}

	if got := cfg.InitValue(0); got != 0.5 {
		t.Errorf("InitValue(0) = %v, want configured 0.5", got)
	}
	// Beyond the configured values, units get staggered defaults.
	if got := cfg.InitValue(2); got != 2.0 {
		t.Errorf("InitValue(2) = %v, want 2.0", got)
	}
}
