package gamedata

import "github.com/gdamore/tcell/v2"

// UnitDef defines a unit archetype loaded from JSON.
type UnitDef struct {
	ID           string   `json:"id" validate:"required"`                  // Unique identifier (e.g., "dwarf_runemaster")
	Name         string   `json:"name" validate:"required"`                // Default display name
	Class        string   `json:"class" validate:"oneof=support dps tank"` // Hero class id
	Glyph        string   `json:"glyph" validate:"required"`               // Single character for rendering
	Color        string   `json:"color" validate:"hexcolor"`               // Hex colour code
	HP           float64  `json:"hp" validate:"gt=0"`                      // Maximum hit points
	Defence      float64  `json:"defence" validate:"gte=0"`                // Flat damage reduction
	MoveSpeed    float64  `json:"moveSpeed" validate:"gte=0"`              // Arena units per second
	AttackDelay  float64  `json:"attackDelay" validate:"gte=0"`            // Seconds between attacks
	CastDelay    float64  `json:"castDelay" validate:"gte=0"`              // Seconds between casts
	AttackRange  float64  `json:"attackRange" validate:"gte=0"`            // Arena units
	Intelligence float64  `json:"intelligence" validate:"gte=0"`           // Scales heals and wards
	Skills       []string `json:"skills" validate:"dive,required"`         // Skill IDs in slot order
}

// GlyphRune returns the glyph as a rune for rendering.
func (u *UnitDef) GlyphRune() rune {
	if len(u.Glyph) == 0 {
		return '?'
	}
	return rune(u.Glyph[0])
}

// TCellColor returns the colour as a tcell.Color.
func (u *UnitDef) TCellColor() tcell.Color {
	return ColorOr(u.Color, tcell.ColorWhite)
}

// UnitsFile represents the structure of units.json.
type UnitsFile struct {
	Units []UnitDef `json:"units" validate:"required,dive"`
}

// LoadUnits loads unit definitions from the embedded units.json file.
func LoadUnits() ([]UnitDef, error) {
	file, err := Load[UnitsFile]("units.json")
	if err != nil {
		return nil, err
	}
	return file.Units, nil
}
