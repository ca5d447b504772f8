// Package game owns a generated level and the random source behind it, and
// exposes the query surface gameplay code consumes.
package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/cryptgen/internal/world"
)

// Environment variables read by LoadConfig.
const (
	EnvSeed   = "CRYPTGEN_SEED"
	EnvWidth  = "CRYPTGEN_WIDTH"
	EnvHeight = "CRYPTGEN_HEIGHT"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible level generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Level dimensions in cells.
	Width  int
	Height int
}

// DefaultConfig returns a time-seeded config with the default dimensions.
func DefaultConfig() Config {
	return Config{
		Width:  world.DefaultWidth,
		Height: world.DefaultHeight,
	}
}

// LoadConfig loads a .env file if one is present, then overlays the
// CRYPTGEN_* environment variables onto the defaults.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := DefaultConfig()
	if err := envInt64(EnvSeed, &cfg.Seed); err != nil {
		return Config{}, err
	}
	if err := envInt(EnvWidth, &cfg.Width); err != nil {
		return Config{}, err
	}
	if err := envInt(EnvHeight, &cfg.Height); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks that the level dimensions can hold a room.
func (c Config) Validate() error {
	if c.Width < world.MinWidth || c.Height < world.MinHeight {
		return fmt.Errorf("config %dx%d: %w", c.Width, c.Height, world.ErrLevelTooSmall)
	}
	return nil
}

func envInt64(key string, dst *int64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	*dst = n
	return nil
}

func envInt(key string, dst *int) error {
	n := int64(*dst)
	if err := envInt64(key, &n); err != nil {
		return err
	}
	*dst = int(n)
	return nil
}
