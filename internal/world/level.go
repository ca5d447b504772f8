package world

import (
	"errors"
	"fmt"
)

const (
	// Default level dimensions
	DefaultWidth  = 80
	DefaultHeight = 24

	// MinWidth and MinHeight fit at least one room of the largest size.
	MinWidth  = 16
	MinHeight = 12
)

// ErrOutOfBounds is returned when a point lies outside the level.
var ErrOutOfBounds = errors.New("point out of bounds")

// Level is a fixed-size grid of tiles. A new level is all void.
//
// Reads outside the grid return TileVoid and writes outside it are dropped,
// so callers never need to bounds-check before a lookup.
type Level struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Rooms  []Rect
}

// NewLevel creates a level filled with void.
func NewLevel(width, height int) *Level {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
	}

	return &Level{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// Bounds returns the rectangle covering the whole level.
func (l *Level) Bounds() Rect {
	return R(0, 0, l.Width, l.Height)
}

// InBounds returns true if the point lies on the grid.
func (l *Level) InBounds(p Point) bool {
	return p.X >= 0 && p.X < l.Width && p.Y >= 0 && p.Y < l.Height
}

// Tile returns the tile at p, or TileVoid when p is off the grid.
func (l *Level) Tile(p Point) Tile {
	if !l.InBounds(p) {
		return TileVoid
	}
	return l.Tiles[p.Y][p.X]
}

// IsWalkable returns true if the tile at p can be walked on.
func (l *Level) IsWalkable(p Point) bool {
	return l.Tile(p).IsWalkable()
}

// Set assigns a tile kind. Writes outside the grid are ignored.
func (l *Level) Set(p Point, t Tile) {
	if !l.InBounds(p) {
		return
	}
	l.Tiles[p.Y][p.X] = t
}

// SetChecked assigns a tile kind and reports writes outside the grid.
func (l *Level) SetChecked(p Point, t Tile) error {
	if !l.InBounds(p) {
		return fmt.Errorf("set %v at (%d,%d): %w", t, p.X, p.Y, ErrOutOfBounds)
	}
	l.Tiles[p.Y][p.X] = t
	return nil
}

// Fill sets every cell of r (clipped to the grid) to t.
func (l *Level) Fill(r Rect, t Tile) {
	for y := max(r.A.Y, 0); y < min(r.B.Y, l.Height); y++ {
		for x := max(r.A.X, 0); x < min(r.B.X, l.Width); x++ {
			l.Tiles[y][x] = t
		}
	}
}

// Count returns how many cells hold the given tile kind.
func (l *Level) Count(t Tile) int {
	n := 0
	for y := range l.Tiles {
		for _, cell := range l.Tiles[y] {
			if cell == t {
				n++
			}
		}
	}
	return n
}

// RoomIndexAt returns the index of the room containing p, or -1 if not in a room.
func (l *Level) RoomIndexAt(p Point) int {
	for i, room := range l.Rooms {
		if room.Contains(p) {
			return i
		}
	}
	return -1
}

// OpenDoor turns a closed door into an open one. It returns false if there
// is no closed door at p.
func (l *Level) OpenDoor(p Point) bool {
	if l.Tile(p) != TileClosedDoor {
		return false
	}
	l.Set(p, TileOpenDoor)
	return true
}

// CloseDoor turns an open door into a closed one.
func (l *Level) CloseDoor(p Point) bool {
	if l.Tile(p) != TileOpenDoor {
		return false
	}
	l.Set(p, TileClosedDoor)
	return true
}

// RevealSecretDoor turns a discovered secret door into a closed door.
func (l *Level) RevealSecretDoor(p Point) bool {
	if l.Tile(p) != TileSecretDoor {
		return false
	}
	l.Set(p, TileClosedDoor)
	return true
}

// RandomWalkable returns a uniformly drawn walkable cell. Draws are made
// over the whole grid first; after width*height*4 misses it draws from the
// list of walkable cells instead, which is still uniform. ok is false only
// when the level has no walkable cell at all.
func (l *Level) RandomWalkable(rng Rand) (p Point, ok bool) {
	for i := 0; i < l.Width*l.Height*4; i++ {
		p = Point{rng.IntRange(0, l.Width-1), rng.IntRange(0, l.Height-1)}
		if l.IsWalkable(p) {
			return p, true
		}
	}
	var cells []Point
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Tiles[y][x].IsWalkable() {
				cells = append(cells, Point{x, y})
			}
		}
	}
	if len(cells) == 0 {
		return Point{}, false
	}
	return cells[rng.IntRange(0, len(cells)-1)], true
}
