package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirRespectsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() failed: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", "brewrecent") {
		t.Errorf("Dir() = %q, want /tmp/xdg/brewrecent", dir)
	}
}

func TestDirDefaultsToHomeConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir() failed: %v", err)
	}
	if !strings.HasSuffix(dir, filepath.Join(".config", "brewrecent")) {
		t.Errorf("Dir() = %q, want a ~/.config/brewrecent path", dir)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := Default()
	if cfg != want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "days: 30\nhide_looked_up: true\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Days != 30 {
		t.Errorf("Days = %d, want 30", cfg.Days)
	}
	if !cfg.HideLookedUp {
		t.Error("HideLookedUp = false, want true")
	}
	// Keys absent from the file keep their defaults.
	if cfg.TruncateChars != 25 {
		t.Errorf("TruncateChars = %d, want default 25", cfg.TruncateChars)
	}
	if !cfg.DimLookedUp {
		t.Error("DimLookedUp = false, want default true")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("days: [not a number"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}
