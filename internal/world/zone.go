package world

// Zone is a rectangular area of the arena.
type Zone struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the zone
}

// Center returns the center coordinates of the zone.
func (z Zone) Center() (int, int) {
	return z.X + z.Width/2, z.Y + z.Height/2
}
