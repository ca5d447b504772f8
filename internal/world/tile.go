// Package world provides level generation, the tile grid and line of sight.
package world

// Tile is the kind of a single map cell.
type Tile uint8

const (
	TileVoid Tile = iota
	TileFloor
	TileWall
	// TileSecretDoor blocks movement and sight until revealed.
	TileSecretDoor
	TileClosedDoor
	TileOpenDoor

	numTiles
)

type tileType struct {
	walkable bool
	name     string
}

var tileTypes = [numTiles]tileType{
	TileVoid:       {false, "void"},
	TileFloor:      {true, "dirt floor"},
	TileWall:       {false, "wall"},
	TileSecretDoor: {false, "secret door"},
	TileClosedDoor: {false, "closed door"},
	TileOpenDoor:   {true, "open door"},
}

// AllTiles returns every tile kind in declaration order.
func AllTiles() []Tile {
	tiles := make([]Tile, 0, numTiles)
	for t := TileVoid; t < numTiles; t++ {
		tiles = append(tiles, t)
	}
	return tiles
}

// IsWalkable returns true if the tile can be walked on (and seen through).
func (t Tile) IsWalkable() bool {
	if t >= numTiles {
		return false
	}
	return tileTypes[t].walkable
}

// Name returns the human-readable tile name.
func (t Tile) Name() string {
	if t >= numTiles {
		return "unknown"
	}
	return tileTypes[t].name
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	return t.Name()
}
