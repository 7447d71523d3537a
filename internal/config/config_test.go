package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://localhost:3000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q", cfg.Format)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != Default().BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
}

func TestLoadPartialConfigNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: http://api.example.test\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.BaseURL != "http://api.example.test" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.DataDir != Default().DataDir {
		t.Errorf("DataDir = %q, want default", cfg.DataDir)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want default", cfg.Format)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("base_url: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed YAML should error")
	}
}

func TestNormalizeInvalidFormat(t *testing.T) {
	cfg := &Config{Format: "xml"}
	cfg.Normalize()
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}
