package game

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/cryptgen/internal/world"
)

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = seed
	s, err := NewSession(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionSeeded(t *testing.T) {
	s1 := newSession(t, 99)
	s2 := newSession(t, 99)

	if s1.Seed != 99 {
		t.Errorf("Seed = %d, want 99", s1.Seed)
	}
	if len(s1.Level.Rooms) != len(s2.Level.Rooms) {
		t.Fatalf("same seed produced %d and %d rooms", len(s1.Level.Rooms), len(s2.Level.Rooms))
	}
	for i := range s1.Level.Rooms {
		if s1.Level.Rooms[i] != s2.Level.Rooms[i] {
			t.Errorf("room %d differs: %v vs %v", i, s1.Level.Rooms[i], s2.Level.Rooms[i])
		}
	}
}

func TestNewSessionRandomSeed(t *testing.T) {
	s := newSession(t, 0)
	if s.Seed == 0 {
		t.Error("zero seed should be replaced")
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	_, err := NewSession(context.Background(), Config{Seed: 1, Width: 4, Height: 4})
	if !errors.Is(err, world.ErrLevelTooSmall) {
		t.Errorf("expected ErrLevelTooSmall, got %v", err)
	}
}

func TestSessionQueries(t *testing.T) {
	s := newSession(t, 2024)

	start, err := s.StartLocation()
	if err != nil {
		t.Fatalf("StartLocation: %v", err)
	}
	if !s.IsWalkable(start) || s.Tile(start) != world.TileFloor {
		t.Errorf("start %v is %v", start, s.Tile(start))
	}
	if !s.HasLineOfSight(start, start) {
		t.Error("start should see itself")
	}

	for i := 0; i < 20; i++ {
		p, err := s.RandomLocation()
		if err != nil {
			t.Fatalf("RandomLocation: %v", err)
		}
		if !s.IsWalkable(p) {
			t.Errorf("RandomLocation returned unwalkable %v", p)
		}
	}

	// Every floor cell of the start room is visible from its centre.
	room := s.Level.Rooms[0]
	for y := room.A.Y; y < room.B.Y; y++ {
		for x := room.A.X; x < room.B.X; x++ {
			if !s.HasLineOfSight(start, world.Pt(x, y)) {
				t.Errorf("%v cannot see (%d,%d) in its own room", start, x, y)
			}
		}
	}
}
