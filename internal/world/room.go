package world

// Rect is an axis-aligned rectangle with an inclusive min corner A and an
// exclusive max corner B.
type Rect struct {
	A, B Point
}

// R builds a Rect from corner coordinates.
func R(ax, ay, bx, by int) Rect {
	return Rect{A: Point{ax, ay}, B: Point{bx, by}}
}

// Width returns the horizontal span.
func (r Rect) Width() int {
	return r.B.X - r.A.X
}

// Height returns the vertical span.
func (r Rect) Height() int {
	return r.B.Y - r.A.Y
}

// Contains returns true if the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.A.X && p.X < r.B.X && p.Y >= r.A.Y && p.Y < r.B.Y
}

// Intersects returns true if the half-open spans overlap on both axes.
func (r Rect) Intersects(other Rect) bool {
	return r.A.X < other.B.X &&
		r.B.X > other.A.X &&
		r.A.Y < other.B.Y &&
		r.B.Y > other.A.Y
}

// Expand grows the rectangle by n cells on every side.
func (r Rect) Expand(n int) Rect {
	return Rect{A: r.A.Sub(Point{n, n}), B: r.B.Add(Point{n, n})}
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() Point {
	return Point{r.A.X + r.Width()/2, r.A.Y + r.Height()/2}
}
