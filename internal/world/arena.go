package world

import (
	"github.com/samdwyer/simplerpg/internal/geom"
)

const (
	// Default arena dimensions, in arena units (one terminal cell each)
	DefaultWidth  = 20
	DefaultHeight = 12
)

// Arena is the walled rectangle units fight in. The outer ring of tiles is
// wall; positions are kept inside the floor area.
type Arena struct {
	Width  int
	Height int
	Tiles  [][]Tile
	Zones  []Zone // Spawn zones, indexed by PartyZone and EnemyZone
}

// NewArena creates a walled arena with a party zone on the left and an enemy
// zone on the right.
func NewArena(width, height int) *Arena {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				tiles[y][x] = TileWall
			} else {
				tiles[y][x] = TileFloor
			}
		}
	}

	half := width / 2
	return &Arena{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Zones: []Zone{
			{X: 1, Y: 1, Width: half - 1, Height: height - 2},
			{X: half, Y: 1, Width: width - half - 1, Height: height - 2},
		},
	}
}

// GetTile returns the tile at the given cell; anything outside is wall.
func (a *Arena) GetTile(x, y int) Tile {
	if x < 0 || x >= a.Width || y < 0 || y >= a.Height {
		return TileWall
	}
	return a.Tiles[y][x]
}

// Contains reports whether p lies on the floor area.
func (a *Arena) Contains(p geom.Vec2) bool {
	return p.X >= 1 && p.Y >= 1 && p.X <= float64(a.Width-2) && p.Y <= float64(a.Height-2)
}

// Clamp returns p moved onto the nearest floor position.
func (a *Arena) Clamp(p geom.Vec2) geom.Vec2 {
	maxX, maxY := float64(a.Width-2), float64(a.Height-2)
	return geom.Vec2{
		X: min(max(p.X, 1), maxX),
		Y: min(max(p.Y, 1), maxY),
	}
}

// Cell returns the tile coordinates containing p.
func (a *Arena) Cell(p geom.Vec2) (int, int) {
	return int(p.X + 0.5), int(p.Y + 0.5)
}

// Zone indexes into Zones.
const (
	PartyZone = 0
	EnemyZone = 1
)

// Place returns p when it lies on a passable floor cell, otherwise the center
// of the given spawn zone.
func (a *Arena) Place(p geom.Vec2, zone int) geom.Vec2 {
	if a.Contains(p) && a.GetTile(a.Cell(p)).IsPassable() {
		return p
	}
	x, y := a.Zones[zone].Center()
	return geom.V(float64(x), float64(y))
}
