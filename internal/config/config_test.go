package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEditor_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadEditor(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadEditor() error: %v", err)
	}
	if cfg != DefaultEditor() {
		t.Errorf("LoadEditor() on missing file = %+v; want defaults %+v", cfg, DefaultEditor())
	}
}

func TestLoadEditor_Overrides(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "editor.yaml")
	yml := "beginner_mode: false\nreport:\n  show_table: true\n  show_coverage: false\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEditor(path)
	if err != nil {
		t.Fatalf("LoadEditor() error: %v", err)
	}
	if cfg.BeginnerMode {
		t.Error("BeginnerMode = true; want false")
	}
	if !cfg.Report.ShowTable {
		t.Error("Report.ShowTable = false; want true")
	}
	if cfg.Report.ShowCoverage {
		t.Error("Report.ShowCoverage = true; want false")
	}
}

func TestLoadEditor_BadYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("beginner_mode: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadEditor(path); err == nil {
		t.Error("LoadEditor() on broken yaml = nil error; want error")
	}
}
