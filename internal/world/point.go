package world

// Point is an integer grid position or offset.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul scales both components by k.
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k}
}

// Div divides both components by k, truncating toward zero.
func (p Point) Div(k int) Point {
	return Point{p.X / k, p.Y / k}
}

// Abs returns the component-wise absolute value.
func (p Point) Abs() Point {
	return Point{abs(p.X), abs(p.Y)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in draw order.
// Random direction draws index into this table, so the order is part of the
// seed-reproducibility contract.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the unit step for the direction. Y grows southward.
func (d Direction) Offset() Point {
	switch d {
	case North:
		return Point{0, -1}
	case East:
		return Point{1, 0}
	case South:
		return Point{0, 1}
	case West:
		return Point{-1, 0}
	default:
		return Point{}
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}
