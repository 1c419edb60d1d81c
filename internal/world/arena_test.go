package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/simplerpg/internal/geom"
)

func TestNewArenaWalls(t *testing.T) {
	a := NewArena(DefaultWidth, DefaultHeight)

	assert.Equal(t, TileWall, a.GetTile(0, 0))
	assert.Equal(t, TileWall, a.GetTile(a.Width-1, 5))
	assert.Equal(t, TileWall, a.GetTile(-3, 100), "outside reads as wall")
	assert.Equal(t, TileFloor, a.GetTile(1, 1))
	assert.True(t, a.GetTile(5, 5).IsPassable())
	assert.False(t, TileWall.IsPassable())
}

func TestClamp(t *testing.T) {
	a := NewArena(10, 8)

	tests := []struct {
		in   geom.Vec2
		want geom.Vec2
	}{
		{geom.V(3, 3), geom.V(3, 3)},
		{geom.V(-5, 3), geom.V(1, 3)},
		{geom.V(30, 30), geom.V(8, 6)},
		{geom.V(0.5, 6.5), geom.V(1, 6)},
	}

	for _, tt := range tests {
		got := a.Clamp(tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, a.Contains(got))
	}
	assert.False(t, a.Contains(geom.V(0, 0)))
}

func TestPlace(t *testing.T) {
	a := NewArena(DefaultWidth, DefaultHeight)

	tests := []struct {
		name string
		in   geom.Vec2
		zone int
		want geom.Vec2
	}{
		{"floor position kept", geom.V(8, 3), PartyZone, geom.V(8, 3)},
		{"floor in the other half kept", geom.V(3, 3), EnemyZone, geom.V(3, 3)},
		{"wall goes to party center", geom.V(0, 0), PartyZone, geom.V(5, 6)},
		{"outside goes to enemy center", geom.V(40, 2), EnemyZone, geom.V(14, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Place(tt.in, tt.zone))
		})
	}
}

func TestCell(t *testing.T) {
	a := NewArena(DefaultWidth, DefaultHeight)
	x, y := a.Cell(geom.V(2.4, 3.6))
	assert.Equal(t, 2, x)
	assert.Equal(t, 4, y)
}
