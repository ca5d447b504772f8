package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/cryptgen/internal/telemetry"
)

const (
	// Room placement parameters, in lattice units
	maxRooms      = 8
	placeAttempts = 1000
	minRoomWidth  = 3
	maxRoomWidth  = 5
	minRoomHeight = 2
	maxRoomHeight = 4
	roomPadding   = 2

	// Chance that a corridor intersection spawns a secret passage
	secretPassageChance = 0.2
)

// ErrLevelTooSmall is returned for dimensions that cannot hold a room.
var ErrLevelTooSmall = errors.New("level dimensions too small")

// SecretPassage is a corridor segment closed off by a secret door at each end.
// Start and End are equal when the passage is a single door. Path lists the
// cells strictly between the doors, from Start to End.
type SecretPassage struct {
	Start, End Point
	Path       []Point
}

// Result describes what generation produced besides the tiles.
type Result struct {
	Level    *Level
	Tunnels  int
	Passages []SecretPassage
}

// generator carries the level being carved and the random source.
type generator struct {
	level *Level
	rng   Rand
}

// Generate builds a new level of the given size. All random draws come from
// rng in this order: room placement, tunnels (room index order), then secret
// passages (intersection scan order).
func Generate(ctx context.Context, rng Rand, width, height int) (*Result, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "level.generate")
	defer span.End()

	startTime := time.Now()

	if width < MinWidth || height < MinHeight {
		err := fmt.Errorf("%dx%d (minimum %dx%d): %w", width, height, MinWidth, MinHeight, ErrLevelTooSmall)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	g := &generator{level: NewLevel(width, height), rng: rng}
	res, err := g.run()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("level.width", width),
		attribute.Int("level.height", height),
		attribute.Int("level.room_count", len(res.Level.Rooms)),
		attribute.Int("level.tunnel_count", res.Tunnels),
		attribute.Int("level.secret_passages", len(res.Passages)),
		attribute.Int64("level.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return res, nil
}

func (g *generator) run() (*Result, error) {
	l := g.level
	l.Rooms = g.placeRooms()

	// Fill with solid wall, then carve rooms
	l.Fill(l.Bounds(), TileWall)
	for _, room := range l.Rooms {
		l.Fill(room, TileFloor)
	}

	tunnels, err := g.connectRooms()
	if err != nil {
		return nil, err
	}

	passages, err := g.placeSecretPassages()
	if err != nil {
		return nil, err
	}

	g.placeRoomDoors()

	return &Result{Level: l, Tunnels: tunnels, Passages: passages}, nil
}

// placeRooms rejection-samples up to maxRooms rooms. Rooms are laid out on a
// 2-cell lattice: the first interior cell is odd, the exclusive corner even.
func (g *generator) placeRooms() []Rect {
	// Rooms sit at even lattice offsets that do not touch either boundary.
	places := Point{g.level.Width - 2, g.level.Height - 2}.Div(2)

	var rooms []Rect
	for i := 0; i < placeAttempts && len(rooms) < maxRooms; i++ {
		size := Point{
			g.rng.IntRange(minRoomWidth, maxRoomWidth),
			g.rng.IntRange(minRoomHeight, maxRoomHeight),
		}
		place := Point{
			g.rng.IntRange(0, places.X-size.X),
			g.rng.IntRange(0, places.Y-size.Y),
		}
		room := Rect{A: place.Mul(2).Add(Point{1, 1}), B: place.Add(size).Mul(2)}
		expanded := room.Expand(roomPadding)

		good := true
		for _, other := range rooms {
			if expanded.Intersects(other) {
				good = false
				break
			}
		}
		if good {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// placeRoomDoors turns every walkable cell just outside a room edge into a
// closed door, checked at lattice spacing.
func (g *generator) placeRoomDoors() {
	l := g.level
	door := func(p Point) {
		if l.IsWalkable(p) {
			l.Set(p, TileClosedDoor)
		}
	}
	for _, room := range l.Rooms {
		for x := room.A.X; x < room.B.X; x += 2 {
			door(Point{x, room.A.Y - 1})
			door(Point{x, room.B.Y})
		}
		for y := room.A.Y; y < room.B.Y; y += 2 {
			door(Point{room.A.X - 1, y})
			door(Point{room.B.X, y})
		}
	}
}
