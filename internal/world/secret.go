package world

import (
	"errors"
	"fmt"
)

// ErrSecretPassageRunaway is returned when a secret passage walk fails to
// reach a branch point within width*height steps.
var ErrSecretPassageRunaway = errors.New("secret passage walk did not terminate")

// intersections returns every lattice cell that is a true corridor junction:
// walkable, closed on all four diagonals, with at least three open sides.
func (l *Level) intersections() []Point {
	var out []Point
	diagonals := [4]Point{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for c := (Point{1, 1}); c.Y < l.Height-1; c.Y += 2 {
		for c.X = 1; c.X < l.Width-1; c.X += 2 {
			if !l.IsWalkable(c) {
				continue
			}
			open := true
			for _, d := range diagonals {
				if l.IsWalkable(c.Add(d)) {
					open = false
					break
				}
			}
			if !open {
				continue
			}
			paths := 0
			for _, d := range Directions {
				if l.IsWalkable(c.Add(d.Offset())) {
					paths++
				}
			}
			if paths >= 3 {
				out = append(out, c)
			}
		}
	}
	return out
}

// placeSecretPassages hides one branch of some corridor intersections behind
// a pair of secret doors.
func (g *generator) placeSecretPassages() ([]SecretPassage, error) {
	var passages []SecretPassage
	for _, point := range g.level.intersections() {
		if g.rng.Float64() >= secretPassageChance {
			continue
		}
		// An intersection has at least three open sides, so this terminates.
		var dir Direction
		for {
			dir = Directions[g.rng.IntRange(0, 3)]
			if g.level.Tile(point.Add(dir.Offset())) != TileWall {
				break
			}
		}
		passage, err := g.carveSecretPassage(point, dir)
		if err != nil {
			return passages, fmt.Errorf("secret passage at (%d,%d): %w", point.X, point.Y, err)
		}
		passages = append(passages, passage)
	}
	return passages, nil
}

// carveSecretPassage puts a secret door next to from in direction dir, then
// follows the corridor beyond it until the next branch point and closes that
// end with a second secret door. A dead end closes the passage where it stops.
func (g *generator) carveSecretPassage(from Point, dir Direction) (SecretPassage, error) {
	l := g.level
	step := dir.Offset()
	start := from.Add(step)
	l.Set(start, TileSecretDoor)

	var path []Point
	last, cur := start, start.Add(step)
	for steps := 0; steps <= l.Width*l.Height; steps++ {
		var exits []Point
		for _, d := range Directions {
			n := cur.Add(d.Offset())
			if n != last && l.IsWalkable(n) {
				exits = append(exits, n)
			}
		}
		if len(exits) != 1 {
			l.Set(last, TileSecretDoor)
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
			return SecretPassage{Start: start, End: last, Path: path}, nil
		}
		path = append(path, cur)
		last, cur = cur, exits[0]
	}
	return SecretPassage{}, ErrSecretPassageRunaway
}
