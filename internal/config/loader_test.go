package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) error = %v", err)
	}
	if cfg != DefaultPacmenConfig() {
		t.Errorf("embedded defaults = %+v\nexpected %+v", cfg, DefaultPacmenConfig())
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "tick_interval: 100ms\nspawn:\n  speed: 1.5\n  behavior: follow-mouse\nunknown_key: ignored\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TickInterval != 100*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 100ms", cfg.TickInterval)
	}
	if cfg.Spawn.Speed != 1.5 {
		t.Errorf("Spawn.Speed = %v, expected 1.5", cfg.Spawn.Speed)
	}
	if cfg.Spawn.Size != 40 {
		t.Errorf("Spawn.Size = %v, expected default 40", cfg.Spawn.Size)
	}
	if cfg.Sprite.Margin != 50 {
		t.Errorf("Sprite.Margin = %v, expected default 50", cfg.Sprite.Margin)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}

	tests := []struct {
		name string
		data string
	}{
		{"malformed yaml", "spawn: [unterminated"},
		{"zero interval", "tick_interval: 0s"},
		{"inverted size range", "controls:\n  min_size: 300"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load() should reject %q", tc.data)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultPacmenConfig() {
		t.Errorf("Load() without files = %+v, expected defaults", cfg)
	}

	// Local configs directory.
	writeConfig(t, filepath.Join(work, "configs", "pacmen.yaml"), "initial_count: 7\n")
	cfg, _ = Load("")
	if cfg.InitialCount != 7 {
		t.Errorf("InitialCount = %d, expected 7 from ./configs", cfg.InitialCount)
	}

	// User directory wins over the local one.
	writeConfig(t, filepath.Join(home, ".pacmen", "configs", "pacmen.yaml"), "initial_count: 9\n")
	cfg, _ = Load("")
	if cfg.InitialCount != 9 {
		t.Errorf("InitialCount = %d, expected 9 from ~/.pacmen", cfg.InitialCount)
	}

	// An invalid user file is skipped.
	writeConfig(t, filepath.Join(home, ".pacmen", "configs", "pacmen.yaml"), "initial_count: -1\n")
	cfg, _ = Load("")
	if cfg.InitialCount != 7 {
		t.Errorf("InitialCount = %d, expected fallback to ./configs", cfg.InitialCount)
	}
}

func writeConfig(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestSpawnOptions(t *testing.T) {
	cfg := DefaultPacmenConfig()
	if got := cfg.SpawnOptions().String(); got != "behavior=normal speed=0.2 size=40" {
		t.Errorf("SpawnOptions() = %q", got)
	}
}

func TestLoadIgnoresUnknownSpawnBehavior(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pacmen.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  behavior: dance\n  speed: 0.7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v, unknown behavior should be ignored", err)
	}
	opts := cfg.SpawnOptions()
	if _, ok := opts.Behavior(); ok {
		t.Error("unknown behavior should be left unset")
	}
	if speed, _ := opts.Speed(); speed != 0.7 {
		t.Errorf("speed = %v, expected 0.7", speed)
	}
}
