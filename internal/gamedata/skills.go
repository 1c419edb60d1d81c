package gamedata

// =============================================================================
// SKILL DEFINITIONS
// =============================================================================
//
// Skills are defined in skills.json and turned into combat skills by the
// skill factory. Every skill produces one effect when activated:
//
//   kind     effect  magnitude
//   attack   fire    power (reduced by target defence, min 1)
//   heal     heal    power + caster intelligence
//   support  ward    power + caster intelligence / 2 defence, for duration seconds
//
// JSON Schema:
// ------------
// {
//   "id": "firebolt",
//   "name": "Firebolt",
//   "kind": "attack",
//   "power": 10,
//   "cooldown": 0,
//   "duration": 0,
//   "visual": { "glyph": "*", "color": "#FF4500", "lifetime": 0.4 }
// }

// VisualDef describes the presentation of an effect.
type VisualDef struct {
	Glyph    string  `json:"glyph"`
	Color    string  `json:"color" validate:"omitempty,hexcolor"`
	Lifetime float64 `json:"lifetime" validate:"gte=0"` // Seconds the visual stays on screen
}

// GlyphRune returns the glyph as a rune for rendering.
func (v *VisualDef) GlyphRune() rune {
	if len(v.Glyph) == 0 {
		return '*'
	}
	return rune(v.Glyph[0])
}

// SkillDef defines a skill loaded from JSON.
type SkillDef struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Kind     string     `json:"kind" validate:"oneof=attack heal support"`
	Power    float64    `json:"power" validate:"gte=0"`
	Cooldown float64    `json:"cooldown" validate:"gte=0"` // Seconds
	Duration float64    `json:"duration" validate:"gte=0"` // Seconds, support only
	Visual   *VisualDef `json:"visual,omitempty"`
}

// SkillsFile represents the structure of skills.json.
type SkillsFile struct {
	Skills []SkillDef `json:"skills" validate:"required,dive"`
}

// LoadSkills loads skill definitions from the embedded skills.json file.
func LoadSkills() ([]SkillDef, error) {
	file, err := Load[SkillsFile]("skills.json")
	if err != nil {
		return nil, err
	}
	return file.Skills, nil
}
