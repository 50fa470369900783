package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Run.Words != 10 || cfg.TimeLimit() != 60 {
		t.Errorf("run config = %+v", cfg.Run)
	}
	if cfg.Serve.Address != ":23235" || cfg.Log.Level != "warn" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v", cfg.IdleTimeout())
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letra.yaml")
	data := "run:\n  words: 5\n  preset: hard\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Run.Words != 5 || cfg.TimeLimit() != 30 || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}
	// Unset keys fall back to defaults.
	if cfg.Storage.Path != "~/.letra/letra.db" {
		t.Errorf("storage path = %q", cfg.Storage.Path)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "[run]\nwords = 8\npreset = \"custom\"\ntime_limit = 45\n\n[serve]\naddress = \":2222\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Run.Words != 8 || cfg.TimeLimit() != 45 || cfg.Serve.Address != ":2222" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".letra")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[run]\npreset = \"easy\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TimeLimit() != 90 {
		t.Errorf("TimeLimit() = %d, want 90", cfg.TimeLimit())
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("run: [unclosed"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset string
		custom int
		want   int
	}{
		{"easy", 0, 90},
		{"normal", 0, 60},
		{"", 0, 60},
		{"HARD", 0, 30},
		{"custom", 120, 120},
		{"custom", 0, 60},
		{"bogus", 0, 60},
	}
	for _, tt := range tests {
		cfg := Config{Run: RunConfig{Preset: tt.preset, TimeLimit: tt.custom}}
		if got := cfg.TimeLimit(); got != tt.want {
			t.Errorf("preset %q custom %d: TimeLimit() = %d, want %d", tt.preset, tt.custom, got, tt.want)
		}
	}

	if _, err := ParsePreset("bogus"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if got := ExpandHome("~/.letra/letra.db"); got != filepath.Join(home, ".letra/letra.db") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
