package game

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/samdwyer/cryptgen/internal/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvWidth, "")
	t.Setenv(EnvHeight, "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvWidth, "40")
	t.Setenv(EnvHeight, "20")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Seed: 42, Width: 40, Height: 20}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so clear them.
	for _, key := range []string{EnvSeed, EnvWidth, EnvHeight} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	path := filepath.Join(t.TempDir(), "test.env")
	content := EnvSeed + "=7\n" + EnvWidth + "=" + strconv.Itoa(world.MinWidth) + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvWidth)
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Seed != 7 || cfg.Width != world.MinWidth || cfg.Height != world.DefaultHeight {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		key, value string
		tooSmall   bool
	}{
		{EnvSeed, "abc", false},
		{EnvWidth, "wide", false},
		{EnvHeight, "3", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(EnvSeed, "")
			t.Setenv(EnvWidth, "")
			t.Setenv(EnvHeight, "")
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
			if got := errors.Is(err, world.ErrLevelTooSmall); got != tt.tooSmall {
				t.Errorf("errors.Is(ErrLevelTooSmall) = %v for %v", got, err)
			}
		})
	}
}
