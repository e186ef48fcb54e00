package asmconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Execution.MaxCycles != 1_000_000 {
		t.Errorf("MaxCycles = %d, want 1000000", cfg.Execution.MaxCycles)
	}
	if !cfg.Execution.Strict {
		t.Error("expected Strict to default to true")
	}
	if cfg.Display.NumberFormat != "hex" {
		t.Errorf("NumberFormat = %q, want hex", cfg.Display.NumberFormat)
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Execution.MaxCycles != DefaultConfig().Execution.MaxCycles {
		t.Error("expected defaults when the config file does not exist")
	}
}

func TestLoadFromValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[execution]
max_cycles = 42
strict = false
default_output = "run.out"

[display]
number_format = "dec"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Execution.MaxCycles != 42 {
		t.Errorf("MaxCycles = %d, want 42", cfg.Execution.MaxCycles)
	}
	if cfg.Execution.Strict {
		t.Error("expected Strict to be overridden to false")
	}
	if cfg.Execution.DefaultOut != "run.out" {
		t.Errorf("DefaultOut = %q, want run.out", cfg.Execution.DefaultOut)
	}
	if cfg.Display.NumberFormat != "dec" {
		t.Errorf("NumberFormat = %q, want dec", cfg.Display.NumberFormat)
	}
}

func TestLoadFromMalformedFileIsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("this is not valid = = toml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error for a malformed config file")
	}
}
