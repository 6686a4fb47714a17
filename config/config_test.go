package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// clearEnv blanks every override so the host environment cannot leak in
func clearEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, EnvPrefix) {
			t.Setenv(key, "")
		}
	}
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFiles_Defaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := LoadFiles("", filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Expected defaults (-want +got):\n%s", diff)
	}
	if got := cfg.Background.FrameInterval(); got != time.Second/60 {
		t.Errorf("Expected 60 Hz interval, got %v", got)
	}
}

func TestLoadFiles_Layers(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := writeFile(t, dir, "wallcal.toml", `
debug = true

[server]
addr = ":9000"
language = "ru"
shutdown_timeout = "10s"

[background]
fps = 30
seed = 42

[palette]
lived = "#eeeeee"
`)
	envFile := writeFile(t, dir, ".env", "WALLCAL_FPS=24\nWALLCAL_BASE_URL=https://wall.example\n")
	t.Setenv("WALLCAL_FPS", "50")
	t.Setenv("WALLCAL_REDUCED_MOTION", "true")

	cfg, err := LoadFiles(path, envFile)
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}

	want := Default()
	want.Debug = true
	want.Server.Addr = ":9000"
	want.Server.Language = "ru"
	want.Server.ShutdownTimeout = 10 * time.Second
	want.Server.BaseURL = "https://wall.example"
	want.Background.FPS = 50
	want.Background.Seed = 42
	want.Background.ReducedMotion = true
	want.Palette.Lived = "#eeeeee"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Layered config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFiles_Errors(t *testing.T) {
	tests := []struct {
		name    string
		toml    string
		env     map[string]string
		wantSub string
	}{
		{"Unknown key", "[server]\nport = 80\n", nil, "unknown keys server.port"},
		{"Bad TOML", "[server\n", nil, "wallcal.toml"},
		{"Bad env int", "", map[string]string{"WALLCAL_FPS": "fast"}, "WALLCAL_FPS"},
		{"Bad env bool", "", map[string]string{"WALLCAL_DEBUG": "maybe"}, "WALLCAL_DEBUG"},
		{"FPS out of range", "[background]\nfps = 500\n", nil, "background.fps"},
		{"Bad ratio", "[snapshot]\npixel_ratio = 0.0\n", nil, "pixel_ratio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			dir := t.TempDir()
			path := writeFile(t, dir, "wallcal.toml", tt.toml)

			_, err := LoadFiles(path, "")
			if err == nil || !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Expected error containing %q, got %v", tt.wantSub, err)
			}
		})
	}
}

func TestLoadFiles_MissingTOML(t *testing.T) {
	clearEnv(t)
	if _, err := LoadFiles(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Error("Expected error for explicit missing config file")
	}
}
