// Package factory builds units, skills and effects from gamedata definitions.
package factory

import (
	"fmt"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/gamedata"
	"github.com/samdwyer/simplerpg/internal/geom"
)

// VisualMaker creates presentation handles for effects. The terminal UI
// provides one; headless runs use none.
type VisualMaker interface {
	NewVisual(def gamedata.VisualDef) combat.Visual
}

// EffectFactory creates effects and dresses them with visuals.
type EffectFactory struct {
	visuals VisualMaker
}

// NewEffectFactory creates an effect factory. visuals may be nil.
func NewEffectFactory(visuals VisualMaker) *EffectFactory {
	return &EffectFactory{visuals: visuals}
}

// Source returns the visual source for effects drawn with def, or nil when
// there is nothing to draw.
func (f *EffectFactory) Source(def *gamedata.VisualDef) combat.VisualSource {
	if f.visuals == nil || def == nil {
		return nil
	}
	return func(string) combat.Visual {
		return f.visuals.NewVisual(*def)
	}
}

// Fire creates a fire effect against target.
func (f *EffectFactory) Fire(target combat.Target, value float64, def *gamedata.VisualDef) combat.Effect {
	return f.dress(combat.NewFireEffect(target, value), def)
}

// Heal creates a heal effect for target.
func (f *EffectFactory) Heal(target combat.Target, value float64, def *gamedata.VisualDef) combat.Effect {
	return f.dress(combat.NewHealEffect(target, value), def)
}

// Ward creates a ward effect for target.
func (f *EffectFactory) Ward(target combat.Target, value, duration float64, def *gamedata.VisualDef) combat.Effect {
	return f.dress(combat.NewWardEffect(target, value, duration), def)
}

func (f *EffectFactory) dress(e combat.Effect, def *gamedata.VisualDef) combat.Effect {
	if src := f.Source(def); src != nil {
		if v := src(e.Name()); v != nil {
			e.AttachVisual(v)
		}
	}
	return e
}

// For returns a combat.EffectBuilder whose effects are drawn with def.
func (f *EffectFactory) For(def *gamedata.VisualDef) combat.EffectBuilder {
	return dressed{f: f, def: def}
}

// dressed binds an EffectFactory to one visual definition.
type dressed struct {
	f   *EffectFactory
	def *gamedata.VisualDef
}

func (d dressed) Fire(target combat.Target, value float64) combat.Effect {
	return d.f.Fire(target, value, d.def)
}

func (d dressed) Heal(target combat.Target, value float64) combat.Effect {
	return d.f.Heal(target, value, d.def)
}

func (d dressed) Ward(target combat.Target, value, duration float64) combat.Effect {
	return d.f.Ward(target, value, duration, d.def)
}

// effectSetter is implemented by every skill in package combat.
type effectSetter interface {
	SetEffectBuilder(b combat.EffectBuilder)
}

// SkillFactory creates skills from definitions.
type SkillFactory struct {
	skills  *gamedata.SkillRegistry
	effects *EffectFactory
}

// NewSkillFactory creates a skill factory.
func NewSkillFactory(skills *gamedata.SkillRegistry, effects *EffectFactory) *SkillFactory {
	return &SkillFactory{skills: skills, effects: effects}
}

// Create builds the skill with the given ID for caster.
func (f *SkillFactory) Create(id string, caster combat.Target) (combat.Skill, error) {
	def, err := f.skills.Lookup(id)
	if err != nil {
		return nil, err
	}
	return f.FromDef(def, caster)
}

// FromDef builds a skill from a definition.
func (f *SkillFactory) FromDef(def *gamedata.SkillDef, caster combat.Target) (combat.Skill, error) {
	kind, ok := combat.ParseKind(def.Kind)
	if !ok {
		return nil, fmt.Errorf("skill %s: unknown kind %q", def.ID, def.Kind)
	}

	var skill combat.Skill
	switch kind {
	case combat.KindAttack:
		skill = combat.NewAttackSkill(def.Name, caster, def.Power, def.Cooldown)
	case combat.KindHeal:
		skill = combat.NewHealSkill(def.Name, caster, def.Power, def.Cooldown)
	case combat.KindSupport:
		skill = combat.NewSupportSkill(def.Name, caster, def.Power, def.Cooldown, def.Duration)
	}

	if es, ok := skill.(effectSetter); ok && f.effects != nil {
		es.SetEffectBuilder(f.effects.For(def.Visual))
	}
	return skill, nil
}

// EntityFactory creates units from definitions.
type EntityFactory struct {
	units  *gamedata.UnitRegistry
	skills *SkillFactory
}

// NewEntityFactory creates an entity factory.
func NewEntityFactory(units *gamedata.UnitRegistry, skills *SkillFactory) *EntityFactory {
	return &EntityFactory{units: units, skills: skills}
}

// CreateUnit builds a unit from the definition with the given ID. An empty
// name keeps the definition's name.
func (f *EntityFactory) CreateUnit(defID, name string, pos geom.Vec2) (*entity.Unit, error) {
	def, err := f.units.Lookup(defID)
	if err != nil {
		return nil, err
	}
	class, ok := combat.ParseHeroClass(def.Class)
	if !ok {
		return nil, fmt.Errorf("unit %s: unknown class %q", def.ID, def.Class)
	}
	if name == "" {
		name = def.Name
	}

	u := entity.NewUnit(name, class, def.HP)
	u.Symbol = def.GlyphRune()
	u.Color = def.TCellColor()
	u.SetPosition(pos)

	attrs := u.Attributes()
	attrs.Defence = def.Defence
	attrs.MoveSpeed = def.MoveSpeed
	attrs.AttackDelay = def.AttackDelay
	attrs.CastDelay = def.CastDelay
	attrs.AttackRange = def.AttackRange
	attrs.Intelligence = def.Intelligence

	for _, id := range def.Skills {
		skill, err := f.skills.Create(id, u)
		if err != nil {
			return nil, fmt.Errorf("unit %s: %w", def.ID, err)
		}
		u.AddSkill(skill)
	}
	return u, nil
}

// Defaults wires the three factories over the embedded definitions.
func Defaults(visuals VisualMaker) (*EntityFactory, error) {
	units, err := gamedata.LoadUnitRegistry()
	if err != nil {
		return nil, err
	}
	skills, err := gamedata.LoadSkillRegistry()
	if err != nil {
		return nil, err
	}
	effects := NewEffectFactory(visuals)
	return NewEntityFactory(units, NewSkillFactory(skills, effects)), nil
}
