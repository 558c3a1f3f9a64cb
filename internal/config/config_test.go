package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Dim != 10 {
		t.Errorf("expected dim 10, got %d", cfg.Dim)
	}
	if cfg.Params.CouplingConst != 1.0 || cfg.Params.Beta != 1.0 {
		t.Errorf("unexpected params: %+v", cfg.Params)
	}
	if cfg.Output.InitFile != "init.txt" || cfg.Output.FinalFile != "final.txt" {
		t.Errorf("unexpected output files: %+v", cfg.Output)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestStepCount(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.StepCount(); got != 100 {
		t.Errorf("StepCount() = %d, want 100", got)
	}
	cfg.Steps = 7
	if got := cfg.StepCount(); got != 7 {
		t.Errorf("StepCount() = %d, want 7", got)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ising.yaml")
	data := []byte("dim: 32\nseed: 9\nparams:\n  beta: 0.25\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Dim != 32 || cfg.Seed != 9 {
		t.Errorf("unexpected dim/seed: %d/%d", cfg.Dim, cfg.Seed)
	}
	if cfg.Params.Beta != 0.25 {
		t.Errorf("beta = %v, want 0.25", cfg.Params.Beta)
	}
	if cfg.Params.CouplingConst != DefaultCouplingConst {
		t.Errorf("coupling not defaulted: %v", cfg.Params.CouplingConst)
	}
	if cfg.Output.FinalFile != DefaultFinalFile {
		t.Errorf("final file not defaulted: %q", cfg.Output.FinalFile)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ising.yaml")
	cfg := GetPreset("critical")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	_ = os.WriteFile(bad, []byte("dim: [1, 2"), 0644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	_ = os.WriteFile(invalid, []byte("dim: 0\n"), 0644)
	if _, err := Load(invalid); err == nil {
		t.Error("expected error for zero dim")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero dim", func(c *Config) { c.Dim = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -1 }},
		{"nan beta", func(c *Config) { c.Params.Beta = math.NaN() }},
		{"infinite coupling", func(c *Config) { c.Params.CouplingConst = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestIsingParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.MagField = 0.5
	p := cfg.IsingParams()
	if p.CouplingConst != 1 || p.Beta != 1 || p.MagField != 0.5 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("critical")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Beta != CriticalBeta {
		t.Errorf("expected beta %v, got %v", CriticalBeta, cfg.Params.Beta)
	}

	cfg.Dim = 1
	if Presets["critical"].Dim == 1 {
		t.Error("GetPreset returned shared preset")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
