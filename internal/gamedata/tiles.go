package gamedata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/cryptgen/internal/world"
)

// TileDef is the display descriptor of a tile kind, loaded from JSON.
type TileDef struct {
	Name  string `json:"name"`  // Matches world.Tile.Name (e.g., "wall")
	Glyph string `json:"glyph"` // Single character for rendering (e.g., "#")
	Color string `json:"color"` // Hex color code (e.g., "#0000AA")
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *TileDef) GlyphRune() rune {
	r, size := utf8.DecodeRuneInString(d.Glyph)
	if size == 0 || r == utf8.RuneError {
		return '?'
	}
	return r
}

// TCellColor returns the color as a tcell.Color.
func (d *TileDef) TCellColor() tcell.Color {
	color, err := parseColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// parseColor reads an "#RRGGBB" (or bare "RRGGBB") tile color.
func parseColor(s string) (tcell.Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("tile color %q: want 6 hex digits", s)
	}
	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("tile color %q: %w", s, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// TilesFile represents the structure of tiles.json.
type TilesFile struct {
	Tiles []TileDef `json:"tiles"`
}

// Appearance maps every tile kind to its display descriptor.
type Appearance struct {
	defs map[world.Tile]TileDef
}

// NewAppearance builds the table from loaded definitions. Every tile kind
// must have exactly one definition.
func NewAppearance(defs []TileDef) (*Appearance, error) {
	byName := make(map[string]world.Tile)
	for _, t := range world.AllTiles() {
		byName[t.Name()] = t
	}

	a := &Appearance{defs: make(map[world.Tile]TileDef, len(defs))}
	for _, def := range defs {
		t, ok := byName[def.Name]
		if !ok {
			return nil, fmt.Errorf("unknown tile %q", def.Name)
		}
		if _, dup := a.defs[t]; dup {
			return nil, fmt.Errorf("duplicate tile %q", def.Name)
		}
		if _, err := parseColor(def.Color); err != nil {
			return nil, fmt.Errorf("tile %q: %w", def.Name, err)
		}
		a.defs[t] = def
	}
	for name, t := range byName {
		if _, ok := a.defs[t]; !ok {
			return nil, fmt.Errorf("missing tile %q", name)
		}
	}
	return a, nil
}

// LoadAppearance loads the table from the embedded tiles.json.
func LoadAppearance() (*Appearance, error) {
	file, err := Load[TilesFile]("tiles.json")
	if err != nil {
		return nil, err
	}
	if len(file.Tiles) == 0 {
		return nil, errors.New("no tiles loaded from tiles.json")
	}
	return NewAppearance(file.Tiles)
}

// Glyph returns the display character for t.
func (a *Appearance) Glyph(t world.Tile) rune {
	def, ok := a.defs[t]
	if !ok {
		return '?'
	}
	return def.GlyphRune()
}

// Color returns the display color for t.
func (a *Appearance) Color(t world.Tile) tcell.Color {
	def, ok := a.defs[t]
	if !ok {
		return tcell.ColorDefault
	}
	return def.TCellColor()
}
