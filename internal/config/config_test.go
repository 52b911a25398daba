package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), ".env")
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFrom(nil, missingEnvFile(t), noEnv)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.FPS != 60 || cfg.HoldWindow != 550*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestPrecedence(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "BOING_FPS=30\nBOING_MUTE=true\nBOING_ASSET=dotenv.wav\n"
	if err := os.WriteFile(envFile, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	env := envMap(map[string]string{
		"BOING_FPS":  "45",
		"BOING_HOLD": "300ms",
	})

	cfg, err := LoadFrom([]string{"-fps", "90", "flag.mp3"}, envFile, env)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.FPS != 90 {
		t.Fatalf("expected flag to win for fps, got %d", cfg.FPS)
	}
	if cfg.HoldWindow != 300*time.Millisecond {
		t.Fatalf("expected env hold window, got %v", cfg.HoldWindow)
	}
	if !cfg.Mute {
		t.Fatal("expected mute from .env")
	}
	if cfg.Asset != "flag.mp3" {
		t.Fatalf("expected positional asset, got %q", cfg.Asset)
	}
}

func TestEnvBeatsDotenv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("BOING_FPS=30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(nil, envFile, envMap(map[string]string{"BOING_FPS": "45"}))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.FPS != 45 {
		t.Fatalf("expected 45, got %d", cfg.FPS)
	}
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"fps zero", []string{"-fps", "0"}, nil},
		{"fps too high", []string{"-fps", "1000"}, nil},
		{"negative hold", []string{"-hold", "-1s"}, nil},
		{"bad env bool", nil, map[string]string{"BOING_WINDOW": "maybe"}},
		{"bad env fps", nil, map[string]string{"BOING_FPS": "fast"}},
		{"bad env hold", nil, map[string]string{"BOING_HOLD": "soon"}},
		{"two assets", []string{"a.wav", "b.wav"}, nil},
		{"unknown flag", []string{"-loud"}, nil},
	}
	for _, tt := range tests {
		if _, err := LoadFrom(tt.args, missingEnvFile(t), envMap(tt.env)); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
}

func TestHelpFlag(t *testing.T) {
	_, err := LoadFrom([]string{"-h"}, missingEnvFile(t), noEnv)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if u := Usage(); !strings.Contains(u, "-window") || !strings.Contains(u, ".wav") {
		t.Fatalf("expected usage to list flags and formats, got %q", u)
	}
}
