package ui

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/gamedata"
	"github.com/samdwyer/simplerpg/internal/geom"
)

// Flash is a glyph drawn over a unit for a fixed lifetime. It is the
// terminal's combat.Visual.
type Flash struct {
	Glyph rune
	Style tcell.Style

	pos      geom.Vec2
	lifetime float64
	age      float64
	freed    bool
}

// SetPosition moves the flash.
func (f *Flash) SetPosition(p geom.Vec2) { f.pos = p }

// Position returns where the flash is drawn.
func (f *Flash) Position() geom.Vec2 { return f.pos }

// Update ages the flash by delta seconds.
func (f *Flash) Update(delta float64) { f.age += delta }

// IsComplete reports whether the lifetime has elapsed.
func (f *Flash) IsComplete() bool { return f.age >= f.lifetime }

// Free marks the flash for removal from its pool.
func (f *Flash) Free() { f.freed = true }

// FlashPool hands out flashes and keeps the live ones for drawing.
type FlashPool struct {
	flashes []*Flash
}

// NewFlashPool creates an empty pool.
func NewFlashPool() *FlashPool {
	return &FlashPool{}
}

// NewVisual creates a flash from def and tracks it until freed.
func (p *FlashPool) NewVisual(def gamedata.VisualDef) combat.Visual {
	f := &Flash{
		Glyph:    def.GlyphRune(),
		Style:    tcell.StyleDefault.Foreground(gamedata.ColorOr(def.Color, tcell.ColorYellow)).Bold(true),
		lifetime: def.Lifetime,
	}
	p.flashes = append(p.flashes, f)
	return f
}

// Active drops freed flashes and returns the rest.
func (p *FlashPool) Active() []*Flash {
	p.flashes = slices.DeleteFunc(p.flashes, func(f *Flash) bool { return f.freed })
	return p.flashes
}

var _ combat.Visual = (*Flash)(nil)
