package world

import (
	"errors"
	"fmt"
)

// ErrNoDoorCandidates is returned when two rooms have no walls facing each other.
var ErrNoDoorCandidates = errors.New("no facing door candidates")

// doorCandidate is a room cell on a wall facing another room, and the
// direction it faces.
type doorCandidate struct {
	pos Point
	dir Direction
}

// doorCandidates lists the cells of room that face other, spaced along the
// lattice.
func doorCandidates(room, other Rect) []doorCandidate {
	var out []doorCandidate
	if other.A.X > room.B.X {
		for y := room.A.Y; y < room.B.Y; y += 2 {
			out = append(out, doorCandidate{Point{room.B.X - 1, y}, East})
		}
	}
	if other.B.X < room.A.X {
		for y := room.A.Y; y < room.B.Y; y += 2 {
			out = append(out, doorCandidate{Point{room.A.X, y}, West})
		}
	}
	if other.A.Y > room.B.Y {
		for x := room.A.X; x < room.B.X; x += 2 {
			out = append(out, doorCandidate{Point{x, room.B.Y - 1}, South})
		}
	}
	if other.B.Y < room.A.Y {
		for x := room.A.X; x < room.B.X; x += 2 {
			out = append(out, doorCandidate{Point{x, room.A.Y}, North})
		}
	}
	return out
}

// connectRooms joins every room after the first to one earlier room, so the
// rooms form a spanning tree. It returns the number of tunnels carved.
func (g *generator) connectRooms() (int, error) {
	rooms := g.level.Rooms
	tunnels := 0
	for i := 1; i < len(rooms); i++ {
		j := g.rng.IntRange(0, i-1)
		err := g.carveTunnel(rooms[i], rooms[j])
		// Fall back to the other earlier rooms in index order. No draws are
		// consumed by a failed pairing.
		for k := 0; errors.Is(err, ErrNoDoorCandidates) && k < i; k++ {
			if k != j {
				err = g.carveTunnel(rooms[i], rooms[k])
			}
		}
		if err != nil {
			return tunnels, fmt.Errorf("connect room %d: %w", i, err)
		}
		tunnels++
	}
	return tunnels, nil
}

// carveTunnel digs an L-shaped corridor between a wall of roomA and a wall of
// roomB, turning once at a random point along the main axis.
func (g *generator) carveTunnel(roomA, roomB Rect) error {
	doorsA := doorCandidates(roomA, roomB)
	doorsB := doorCandidates(roomB, roomA)
	if len(doorsA) == 0 || len(doorsB) == 0 {
		return ErrNoDoorCandidates
	}
	doorA := doorsA[g.rng.IntRange(0, len(doorsA)-1)]
	doorB := doorsB[g.rng.IntRange(0, len(doorsB)-1)]

	// Step through the wall onto the lattice cell outside each room.
	pointA := doorA.pos.Add(doorA.dir.Offset().Mul(2))
	pointB := doorB.pos.Add(doorB.dir.Offset().Mul(2))

	delta := pointB.Sub(pointA)
	absDelta := delta.Abs().Div(2)
	stepMain := Point{1, 0}
	if delta.X <= 0 {
		stepMain.X = -1
	}
	stepSide := Point{0, 1}
	if delta.Y <= 0 {
		stepSide.Y = -1
	}
	if absDelta.Y > absDelta.X {
		absDelta.X, absDelta.Y = absDelta.Y, absDelta.X
		stepMain, stepSide = stepSide, stepMain
	}
	turn := g.rng.IntRange(0, absDelta.X)

	l := g.level
	point := pointA
	l.Set(point, TileFloor)
	dig := func(step Point) {
		point = point.Add(step)
		l.Set(point, TileFloor)
		point = point.Add(step)
		l.Set(point, TileFloor)
	}
	for i := 0; i < turn; i++ {
		dig(stepMain)
	}
	for i := 0; i < absDelta.Y; i++ {
		dig(stepSide)
	}
	for i := turn; i < absDelta.X; i++ {
		dig(stepMain)
	}

	// Open the walls between the rooms and the corridor ends.
	l.Set(doorA.pos.Add(doorA.dir.Offset()), TileFloor)
	l.Set(doorB.pos.Add(doorB.dir.Offset()), TileFloor)
	return nil
}
