package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cryptgen/internal/gamedata"
	"github.com/samdwyer/cryptgen/internal/world"
)

// Viewer is a line of sight overlay: only cells in Visible are drawn, and
// the viewer itself is drawn on top.
type Viewer struct {
	Pos     world.Point
	Visible map[world.Point]bool
}

// NewViewer computes the cells visible from pos within radius.
func NewViewer(level *world.Level, pos world.Point, radius int) *Viewer {
	visible := make(map[world.Point]bool)
	for _, p := range level.VisibleFrom(pos, radius) {
		visible[p] = true
	}
	return &Viewer{Pos: pos, Visible: visible}
}

// Renderer handles drawing levels to the screen.
type Renderer struct {
	screen     *Screen
	appearance *gamedata.Appearance
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, appearance *gamedata.Appearance) *Renderer {
	return &Renderer{screen: screen, appearance: appearance}
}

// Render draws the level and, when viewer is not nil, the line of sight
// overlay.
func (r *Renderer) Render(level *world.Level, viewer *Viewer) {
	r.screen.Clear()

	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			p := world.Pt(x, y)
			if viewer != nil && !viewer.Visible[p] {
				continue
			}
			tile := level.Tile(p)
			r.screen.SetContent(x, y, r.appearance.Glyph(tile), r.tileStyle(tile))
		}
	}

	// Draw viewer on top
	if viewer != nil {
		style := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(viewer.Pos.X, viewer.Pos.Y, '@', style)
	}

	r.screen.Show()
}

func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	return tcell.StyleDefault.Foreground(r.appearance.Color(tile))
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	r.screen.Show()
}
