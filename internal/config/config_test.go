package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultDays != 30 {
		t.Errorf("DefaultDays = %d, want 30", cfg.General.DefaultDays)
	}
	if cfg.General.Locale != "" {
		t.Errorf("Locale = %q, want empty (auto-detect)", cfg.General.Locale)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.General.DefaultDays = 90
	cfg.General.Locale = "ja"
	cfg.Report.OutputDir = "/tmp/reports"
	cfg.Report.OpenBrowser = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("roundtrip mismatch: got %+v, want %+v", got, cfg)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfgDir := filepath.Join(dir, "cwrapped")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not = [valid"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load on malformed config should error")
	}
}

func TestClaudeDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.ClaudeDir = "/custom/claude"
	if got := ClaudeDir(cfg); got != "/custom/claude" {
		t.Fatalf("ClaudeDir = %q, want /custom/claude", got)
	}

	cfg.General.ClaudeDir = ""
	if got := ClaudeDir(cfg); filepath.Base(got) != ".claude" {
		t.Fatalf("default ClaudeDir = %q, want */.claude", got)
	}
}
