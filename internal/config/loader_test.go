package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultSkyshotConfig() {
		t.Errorf("embedded YAML differs from DefaultSkyshotConfig():\n%+v\n%+v", cfg, DefaultSkyshotConfig())
	}
}

func TestDefaultGeometry(t *testing.T) {
	cfg := DefaultSkyshotConfig()
	if cfg.LevelWidth() != 1920 {
		t.Errorf("LevelWidth() = %d, expected 1920", cfg.LevelWidth())
	}
	if cfg.Obstacles.Count != 10 {
		t.Errorf("default obstacle count = %d, expected 10", cfg.Obstacles.Count)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte("character:\n  gravity: 0.1\nobstacles:\n  count: 3\n")
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Character.Gravity != 0.1 {
		t.Errorf("gravity = %f, expected 0.1", cfg.Character.Gravity)
	}
	if cfg.Obstacles.Count != 3 {
		t.Errorf("count = %d, expected 3", cfg.Obstacles.Count)
	}
	// Untouched keys keep their defaults
	if cfg.Character.JumpPower != -2 || cfg.Viewport.Width != 640 {
		t.Errorf("defaults not preserved: jump=%f viewport=%d", cfg.Character.JumpPower, cfg.Viewport.Width)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("viewport: [not, a, map")); err == nil {
		t.Error("Parse() should fail on malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SkyshotConfig)
		wantErr string
	}{
		{"defaults", func(*SkyshotConfig) {}, ""},
		{"zero viewport", func(c *SkyshotConfig) { c.Viewport.Width = 0 }, "viewport"},
		{"no screens", func(c *SkyshotConfig) { c.Level.Screens = 0 }, "level.screens"},
		{"negative count", func(c *SkyshotConfig) { c.Obstacles.Count = -1 }, "obstacles.count"},
		{"inverted sizes", func(c *SkyshotConfig) { c.Obstacles.MinSize = 90 }, "size range"},
		{"single screen leaves no x room", func(c *SkyshotConfig) { c.Level.Screens = 1 }, "x range"},
		{"empty y range", func(c *SkyshotConfig) { c.Obstacles.MinY = 400 }, "y range"},
		{"no obstacles skips ranges", func(c *SkyshotConfig) { c.Level.Screens = 1; c.Obstacles.Count = 0 }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSkyshotConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadSkyshotCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("projectile:\n  speed: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSkyshot(path)
	if err != nil {
		t.Fatalf("LoadSkyshot() failed: %v", err)
	}
	if cfg.Projectile.Speed != 12 {
		t.Errorf("speed = %f, expected 12", cfg.Projectile.Speed)
	}
}

func TestLoadSkyshotMissingCustomPath(t *testing.T) {
	cfg, err := LoadSkyshot(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadSkyshot() should fail for a missing custom path")
	}
	if cfg != DefaultSkyshotConfig() {
		t.Error("failed load should return defaults")
	}
}

func TestLoadSkyshotInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: -4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSkyshot(path); err == nil {
		t.Error("LoadSkyshot() should reject a config that fails validation")
	}
}

func TestResolvePathCustom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if got := ResolvePath(path); got != path {
		t.Errorf("ResolvePath(existing) = %q, expected %q", got, path)
	}
	if got := ResolvePath(filepath.Dir(path)); got == filepath.Dir(path) {
		t.Error("ResolvePath should not return a directory")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Writes to other files in the directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("obstacles:\n  count: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case r := <-w.Reloads:
		if r.Err != nil {
			t.Fatalf("reload error: %v", r.Err)
		}
		if r.Config.Obstacles.Count != 7 {
			t.Errorf("reloaded count = %d, expected 7", r.Config.Obstacles.Count)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if _, ok := <-w.Reloads; ok {
		t.Error("Reloads should be closed after Close()")
	}
}
