package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultConfig()
	if *cfg != *def {
		t.Fatalf("expected defaults %+v, got %+v", def, cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte(`{"threshold": 0.9, "debug": true}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 0.9 || !cfg.Debug {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.TopK != 5 || cfg.HintDelayMs != 1500 {
		t.Fatalf("unspecified fields must keep defaults: %+v", cfg)
	}
}

func TestLoad_BadJSONReturnsDefaultsWithError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	if err := os.WriteFile(path, []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("bad JSON must surface an error")
	}
	if cfg == nil || cfg.Threshold != 0.80 {
		t.Fatalf("defaults must still be usable: %+v", cfg)
	}
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{Threshold: 1.5, TopK: -3, HintDelayMs: -1}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Threshold != 0.80 {
		t.Fatalf("threshold not clamped: %v", cfg.Threshold)
	}
	if cfg.TopK != 5 {
		t.Fatalf("top_k not clamped: %v", cfg.TopK)
	}
	if cfg.HintDelayMs != 1500 {
		t.Fatalf("hint delay not clamped: %v", cfg.HintDelayMs)
	}
	if cfg.ModelPath == "" {
		t.Fatal("model path not defaulted")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.Threshold = 0.65
	cfg.TopK = 3
	cfg.ForegroundWindow = false
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *cfg {
		t.Fatalf("round trip mismatch: saved %+v, loaded %+v", cfg, got)
	}
}
