package game

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/cryptgen/internal/telemetry"
	"github.com/samdwyer/cryptgen/internal/world"
)

// Session holds a generated level and the random source that built it.
// The same source keeps serving placement draws after generation.
type Session struct {
	Seed     int64
	Level    *world.Level
	Passages []world.SecretPassage
	rng      world.Rand
}

// NewSession generates a level from cfg. A zero seed is replaced with a
// time-based one, recorded in Session.Seed.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := world.NewRand(seed)

	res, err := world.Generate(ctx, rng, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate level (seed %d): %w", seed, err)
	}

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("level.rooms", len(res.Level.Rooms)),
	)

	return &Session{
		Seed:     seed,
		Level:    res.Level,
		Passages: res.Passages,
		rng:      rng,
	}, nil
}

// Tile returns the tile at p.
func (s *Session) Tile(p world.Point) world.Tile {
	return s.Level.Tile(p)
}

// IsWalkable returns true if p can be walked on.
func (s *Session) IsWalkable(p world.Point) bool {
	return s.Level.IsWalkable(p)
}

// HasLineOfSight reports whether viewer can see target.
func (s *Session) HasLineOfSight(viewer, target world.Point) bool {
	return s.Level.HasLineOfSight(viewer, target)
}

// RandomLocation returns a random walkable cell for placing an actor.
func (s *Session) RandomLocation() (world.Point, error) {
	p, ok := s.Level.RandomWalkable(s.rng)
	if !ok {
		return world.Point{}, fmt.Errorf("no walkable cell in %dx%d level", s.Level.Width, s.Level.Height)
	}
	return p, nil
}

// StartLocation returns the centre of the first room, or a random walkable
// cell when no room was placed.
func (s *Session) StartLocation() (world.Point, error) {
	if len(s.Level.Rooms) > 0 {
		return s.Level.Rooms[0].Center(), nil
	}
	return s.RandomLocation()
}
