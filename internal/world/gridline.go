package world

import "iter"

// lineCursor is the Bresenham stepping state: one main-axis step per advance,
// plus a side-axis step whenever the error term goes negative.
type lineCursor struct {
	point     Point
	mainStep  Point
	sideStep  Point
	mainDelta int
	sideDelta int
	err       int
}

func (c *lineCursor) advance() {
	c.point = c.point.Add(c.mainStep)
	c.err -= c.sideDelta
	if c.err < 0 {
		c.point = c.point.Add(c.sideStep)
		c.err += c.mainDelta
	}
}

// GridLine is an 8-connected digital line between two cells. Each endpoint
// can be included or left out independently. The zero value is an empty line.
type GridLine struct {
	first lineCursor
	count int
}

// NewGridLine builds the line from a to b.
func NewGridLine(a Point, includeA bool, b Point, includeB bool) GridLine {
	mainDelta, sideDelta := abs(b.X-a.X), abs(b.Y-a.Y)
	mainStep, sideStep := West.Offset(), North.Offset()
	if a.X < b.X {
		mainStep = East.Offset()
	}
	if a.Y < b.Y {
		sideStep = South.Offset()
	}
	if sideDelta > mainDelta {
		mainDelta, sideDelta = sideDelta, mainDelta
		mainStep, sideStep = sideStep, mainStep
	}

	first := lineCursor{a, mainStep, sideStep, mainDelta, sideDelta, mainDelta / 2}

	// The walk from a reaches b after exactly mainDelta advances, with the
	// error term back at its starting value.
	count := mainDelta
	if includeB {
		count++
	}
	if !includeA && count > 0 {
		first.advance()
		count--
	}
	return GridLine{first: first, count: count}
}

// Len returns the number of cells the line produces.
func (g GridLine) Len() int {
	return g.count
}

// All yields the cells of the line in order. Ranging over it again restarts
// from the first cell.
func (g GridLine) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		c := g.first
		for i := 0; i < g.count; i++ {
			if !yield(c.point) {
				return
			}
			c.advance()
		}
	}
}

// Points collects the line into a slice.
func (g GridLine) Points() []Point {
	pts := make([]Point, 0, g.count)
	for p := range g.All() {
		pts = append(pts, p)
	}
	return pts
}
