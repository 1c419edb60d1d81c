package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/gamedata"
	"github.com/samdwyer/simplerpg/internal/geom"
)

// countingMaker hands out visuals that complete immediately and counts them.
type countingMaker struct {
	made []gamedata.VisualDef
}

func (m *countingMaker) NewVisual(def gamedata.VisualDef) combat.Visual {
	m.made = append(m.made, def)
	return &doneVisual{}
}

type doneVisual struct{ freed bool }

func (v *doneVisual) SetPosition(geom.Vec2) {}
func (v *doneVisual) Update(float64)        {}
func (v *doneVisual) IsComplete() bool      { return true }
func (v *doneVisual) Free()                 { v.freed = true }

func TestCreateUnitFromDefinition(t *testing.T) {
	f, err := Defaults(nil)
	require.NoError(t, err)

	u, err := f.CreateUnit("dwarf_runemaster", "Dwarf1", geom.V(1, 1))
	require.NoError(t, err)

	assert.Equal(t, "Dwarf1", u.GetName())
	assert.Equal(t, combat.ClassSupport, u.HeroClass())
	assert.Equal(t, geom.V(1, 1), u.Position())
	assert.Equal(t, 'R', u.Symbol)

	attrs := u.Attributes()
	assert.Equal(t, 30.0, attrs.HP())
	assert.Equal(t, 1.0, attrs.MoveSpeed)
	assert.Equal(t, 0.5, attrs.AttackDelay)
	assert.Equal(t, 0.5, attrs.CastDelay)
	assert.Equal(t, 5.0, attrs.AttackRange)
	assert.Equal(t, 5.0, attrs.Intelligence)

	require.Len(t, u.Skills(), 3)
	assert.Equal(t, combat.KindHeal, u.Skills()[0].Kind())
	assert.Equal(t, combat.KindSupport, u.Skills()[1].Kind())
	assert.Equal(t, combat.KindAttack, u.Skills()[2].Kind())
}

func TestCreateUnitDefaultsName(t *testing.T) {
	f, err := Defaults(nil)
	require.NoError(t, err)

	u, err := f.CreateUnit("goblin_ninja", "", geom.Vec2{})
	require.NoError(t, err)
	assert.Equal(t, "Goblin Ninja", u.GetName())
}

func TestCreateUnitUnknownDefinition(t *testing.T) {
	f, err := Defaults(nil)
	require.NoError(t, err)

	_, err = f.CreateUnit("dragon", "Smaug", geom.Vec2{})
	assert.ErrorIs(t, err, gamedata.ErrUnknownUnit)
}

func TestCreateUnitUnknownSkill(t *testing.T) {
	units := gamedata.NewUnitRegistry([]gamedata.UnitDef{{
		ID: "broken", Name: "Broken", Class: "dps", Glyph: "b", Color: "#FFFFFF", HP: 1,
		Skills: []string{"missing"},
	}})
	skills := gamedata.NewSkillRegistry(nil)
	f := NewEntityFactory(units, NewSkillFactory(skills, NewEffectFactory(nil)))

	_, err := f.CreateUnit("broken", "", geom.Vec2{})
	assert.ErrorIs(t, err, gamedata.ErrUnknownSkill)
}

func TestSkillsCarryVisuals(t *testing.T) {
	maker := &countingMaker{}
	f, err := Defaults(maker)
	require.NoError(t, err)

	goblin, err := f.CreateUnit("goblin_ninja", "", geom.Vec2{})
	require.NoError(t, err)
	dwarf, err := f.CreateUnit("dwarf_base", "", geom.V(1, 0))
	require.NoError(t, err)

	idx := entity.NewIndex()
	idx.Add(goblin)
	idx.Add(dwarf)
	goblin.SetTarget(dwarf)
	goblin.ActivateSkill(0)

	require.Len(t, maker.made, 1)
	assert.Equal(t, 0.4, maker.made[0].Lifetime)
	require.Len(t, dwarf.Effects(), 1)

	dwarf.Update(0.1)
	assert.Equal(t, 42.0, dwarf.Attributes().HP(), "firebolt 6 - defence 3")
	dwarf.Update(0.1)
	assert.Empty(t, dwarf.Effects())
}

func TestEffectFactory(t *testing.T) {
	maker := &countingMaker{}
	f := NewEffectFactory(maker)
	target := entity.NewUnit("T", combat.ClassTank, 50)
	target.Attributes().SetHP(10)

	vis := &gamedata.VisualDef{Glyph: "+", Lifetime: 1}
	heal := f.Heal(target, 15, vis)
	assert.Len(t, maker.made, 1)

	assert.False(t, heal.Update(0.1))
	assert.Equal(t, 25.0, target.Attributes().HP())
	assert.True(t, heal.Update(0.1))

	fire := f.Fire(target, 4, nil)
	assert.Len(t, maker.made, 1, "no visual definition, no visual")
	fire.Update(0.1)
	assert.Equal(t, 21.0, target.Attributes().HP())

	ward := f.Ward(target, 3, 1, nil)
	ward.Update(0.1)
	assert.Equal(t, 3.0, target.Attributes().Defence)

	assert.Nil(t, NewEffectFactory(nil).Source(vis))
}

func TestSkillActivationGoesThroughEffectFactory(t *testing.T) {
	maker := &countingMaker{}
	f, err := Defaults(maker)
	require.NoError(t, err)

	healer, err := f.CreateUnit("dwarf_runemaster", "", geom.V(1, 1))
	require.NoError(t, err)
	ally, err := f.CreateUnit("dwarf_base", "", geom.V(2, 1))
	require.NoError(t, err)
	ally.Attributes().SetHP(20)

	idx := entity.NewIndex()
	idx.Add(healer)
	idx.Add(ally)
	healer.SetTarget(ally)

	healer.ActivateSkill(0)
	healer.ActivateSkill(1)

	require.Len(t, maker.made, 2)
	assert.Equal(t, "+", maker.made[0].Glyph, "mend visual")
	assert.Equal(t, "o", maker.made[1].Glyph, "rune ward visual")

	ally.Update(0.1)
	assert.Equal(t, 30.0, ally.Attributes().HP(), "mend 5 + intelligence 5")
	assert.Equal(t, 3.0+2+2.5, ally.Attributes().Defence, "rune ward 2 + intelligence/2")
}
