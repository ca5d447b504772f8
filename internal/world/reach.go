package world

import "github.com/zyedidia/generic/mapset"

// IsTraversable returns true if the tile can be crossed once any door on it
// is opened or found. It is used for connectivity checks, not movement.
func (t Tile) IsTraversable() bool {
	switch t {
	case TileFloor, TileOpenDoor, TileClosedDoor, TileSecretDoor:
		return true
	default:
		return false
	}
}

// Reachable flood-fills from start over 4-connected cells for which pass
// returns true and returns the set of cells reached.
func (l *Level) Reachable(start Point, pass func(Tile) bool) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !pass(l.Tile(start)) {
		return visited
	}
	visited.Put(start)
	queue := []Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range Directions {
			n := p.Add(d.Offset())
			if visited.Has(n) || !pass(l.Tile(n)) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}

// Connected reports whether every room can be reached from the first one
// through floor and doors.
func (l *Level) Connected() bool {
	if len(l.Rooms) == 0 {
		return true
	}
	reached := l.Reachable(l.Rooms[0].A, Tile.IsTraversable)
	for _, room := range l.Rooms[1:] {
		if !reached.Has(room.A) {
			return false
		}
	}
	return true
}
