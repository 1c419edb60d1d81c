// Package combat provides unit attributes, skills and the timed effects
// skills leave on their targets.
package combat

import "github.com/samdwyer/simplerpg/internal/geom"

// Target is anything that can cast skills or have effects applied to it.
// Units implement this interface.
type Target interface {
	GetName() string
	IsAlive() bool
	Attributes() *Attributes
	Position() geom.Vec2
	AddEffect(e Effect)
}

// Visual is a presentation handle attached to an effect. The simulation only
// moves it, advances it and polls it for completion; it never draws it.
type Visual interface {
	SetPosition(p geom.Vec2)
	Update(delta float64)
	IsComplete() bool
	Free()
}

// VisualSource returns a visual for the named effect, or nil for none.
type VisualSource func(effect string) Visual

// HeroClass is a unit's combat role.
type HeroClass int

const (
	ClassSupport HeroClass = iota
	ClassDPS
	ClassTank
)

// String returns the class name.
func (c HeroClass) String() string {
	switch c {
	case ClassSupport:
		return "Support"
	case ClassDPS:
		return "DPS"
	case ClassTank:
		return "Tank"
	default:
		return "Unknown"
	}
}

// ParseHeroClass maps a lower-case class id ("support", "dps", "tank") to a HeroClass.
func ParseHeroClass(id string) (HeroClass, bool) {
	switch id {
	case "support":
		return ClassSupport, true
	case "dps":
		return ClassDPS, true
	case "tank":
		return ClassTank, true
	default:
		return 0, false
	}
}
