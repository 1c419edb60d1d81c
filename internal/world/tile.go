// Package world provides the arena units move and fight in.
package world

// Tile represents a single arena cell.
type Tile rune

const (
	// TileWall is the arena boundary.
	TileWall Tile = '#'
	// TileFloor is open ground.
	TileFloor Tile = '.'
)

// IsPassable returns true if units may stand on the tile.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
