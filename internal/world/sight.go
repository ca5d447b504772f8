package world

// peekOffsets are the neighbours tried, in order, when the direct ray to a
// target is blocked.
var peekOffsets = [8]Point{
	{1, 0}, {0, 1}, {-1, 0}, {0, -1},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// HasLineOfSight reports whether a viewer at viewer can see target.
//
// The direct ray (viewer excluded, target included) must cross only walkable
// cells. Failing that, the target counts as seen if any of its eight
// neighbours is walkable and reachable by an unobstructed ray, which lets a
// viewer peek at wall corners and door frames.
func (l *Level) HasLineOfSight(viewer, target Point) bool {
	if l.clearRay(viewer, target, false) {
		return true
	}
	for _, off := range peekOffsets {
		if l.clearRay(viewer, target.Add(off), true) {
			return true
		}
	}
	return false
}

func (l *Level) clearRay(viewer, target Point, isNeighbor bool) bool {
	if isNeighbor && !l.IsWalkable(target) {
		return false
	}
	for p := range NewGridLine(viewer, false, target, true).All() {
		if !l.IsWalkable(p) {
			return false
		}
	}
	return true
}

// DirectLineOfSight reports whether the direct ray alone reaches target,
// without neighbour peeking.
func (l *Level) DirectLineOfSight(viewer, target Point) bool {
	return l.clearRay(viewer, target, false)
}

// VisibleFrom returns every cell visible from viewer within radius
// (Chebyshev distance).
func (l *Level) VisibleFrom(viewer Point, radius int) []Point {
	var seen []Point
	for y := max(viewer.Y-radius, 0); y <= min(viewer.Y+radius, l.Height-1); y++ {
		for x := max(viewer.X-radius, 0); x <= min(viewer.X+radius, l.Width-1); x++ {
			p := Point{x, y}
			if l.HasLineOfSight(viewer, p) {
				seen = append(seen, p)
			}
		}
	}
	return seen
}
