package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Selection.MinStates != 2 || cfg.Selection.MaxStates != 10 {
		t.Errorf("search range = [%d,%d], want [2,10]",
			cfg.Selection.MinStates, cfg.Selection.MaxStates)
	}
	if cfg.Selection.ConstantStates != 3 {
		t.Errorf("ConstantStates = %d, want 3", cfg.Selection.ConstantStates)
	}
	if cfg.Selection.MaxFolds != 3 {
		t.Errorf("MaxFolds = %d, want 3", cfg.Selection.MaxFolds)
	}
	if cfg.Training.MaxIterations != 1000 {
		t.Errorf("MaxIterations = %d, want 1000", cfg.Training.MaxIterations)
	}
	if cfg.Training.RandomSeed != 14 {
		t.Errorf("RandomSeed = %d, want 14", cfg.Training.RandomSeed)
	}
	if cfg.Training.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoadFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "config.yaml")
	doc := []byte(`
selection:
  min_states: 3
  max_states: 6
training:
  random_seed: 7
  verbose: true
`)
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Selection.MinStates != 3 || cfg.Selection.MaxStates != 6 {
		t.Errorf("search range = [%d,%d], want [3,6]",
			cfg.Selection.MinStates, cfg.Selection.MaxStates)
	}
	if cfg.Training.RandomSeed != 7 {
		t.Errorf("RandomSeed = %d, want 7", cfg.Training.RandomSeed)
	}
	if !cfg.Training.Verbose {
		t.Error("Verbose should be true")
	}

	// Unset fields fall back to defaults.
	if cfg.Selection.ConstantStates != 3 {
		t.Errorf("ConstantStates = %d, want default 3", cfg.Selection.ConstantStates)
	}
	if cfg.Training.MaxIterations != 1000 {
		t.Errorf("MaxIterations = %d, want default 1000", cfg.Training.MaxIterations)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
