package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/input"
)

// newBoundPair creates two units registered in a shared index.
func newBoundPair(t *testing.T) (*Index, *Unit, *Unit) {
	t.Helper()
	idx := NewIndex()
	a := NewUnit("A", combat.ClassDPS, 100)
	b := NewUnit("B", combat.ClassTank, 100)
	idx.Add(a)
	idx.Add(b)
	return idx, a, b
}

// stubVisual completes once done is set.
type stubVisual struct{ done bool }

func (v *stubVisual) SetPosition(geom.Vec2) {}
func (v *stubVisual) Update(float64)        {}
func (v *stubVisual) IsComplete() bool      { return v.done }
func (v *stubVisual) Free()                 {}

func TestNewUnitStartsIdle(t *testing.T) {
	u := NewUnit("Dwarf1", combat.ClassSupport, 30)

	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "idle", u.CurrentState().Name())
	assert.Equal(t, 30.0, u.Attributes().HP())
	assert.True(t, u.IsAlive())
	assert.Nil(t, u.Target())
}

func TestEmptyQueueActsIdle(t *testing.T) {
	u := NewUnit("A", combat.ClassDPS, 10)
	u.PopState()
	u.PopState()

	assert.Empty(t, u.States())
	assert.Equal(t, "idle", u.CurrentState().Name())
	assert.NotPanics(t, func() { u.Update(0.5) })
}

func TestHandleInputPushesState(t *testing.T) {
	_, a, b := newBoundPair(t)
	a.SetTarget(b)

	a.HandleInput(input.Command{Action: input.ActionFollow})
	assert.Equal(t, []string{"follow", "idle"}, a.States())

	a.HandleInput(input.None)
	assert.Equal(t, []string{"follow", "idle"}, a.States(), "no action, no transition")

	a.HandleInput(input.Command{Action: input.ActionSupport})
	assert.Equal(t, "follow", a.CurrentState().Name(), "support is gated on class")
}

func TestTargetIsWeak(t *testing.T) {
	idx, a, b := newBoundPair(t)
	a.SetTarget(b)
	require.Equal(t, b, a.TargetUnit())

	idx.Remove(b.ID)
	assert.Nil(t, a.TargetUnit())
	assert.Nil(t, a.Target())
	assert.Equal(t, uuid.Nil, a.TargetID(), "stale handle is dropped")
}

func TestDeadTargetResolvesToNil(t *testing.T) {
	_, a, b := newBoundPair(t)
	a.SetTarget(b)
	b.Attributes().SetHP(0)

	assert.Nil(t, a.Target())
}

func TestActivateSkillAttachesEffectsToTarget(t *testing.T) {
	_, a, b := newBoundPair(t)
	b.Attributes().Defence = 2
	a.AddSkill(combat.NewAttackSkill("slash", a, 10, 0))
	a.SetTarget(b)

	a.ActivateSkill(0)
	require.Len(t, b.Effects(), 1)
	assert.Empty(t, a.Effects())

	b.Update(0.1)
	assert.Equal(t, 92.0, b.Attributes().HP())
	b.Update(0.1)
	assert.Empty(t, b.Effects(), "finished effects are removed")
}

func TestActivateSkillIsFailSoft(t *testing.T) {
	_, a, b := newBoundPair(t)
	a.AddSkill(combat.NewAttackSkill("slash", a, 10, 0))

	assert.NotPanics(t, func() {
		a.ActivateSkill(0) // no target
		a.SetTarget(b)
		a.ActivateSkill(-1)
		a.ActivateSkill(5)
	})
	assert.Empty(t, b.Effects())
}

func TestEffectRemovalWaitsForVisual(t *testing.T) {
	u := NewUnit("A", combat.ClassDPS, 100)
	u.Attributes().Defence = 2
	visual := &stubVisual{}

	fire := combat.NewFireEffect(u, 10)
	fire.AttachVisual(visual)
	u.AddEffect(fire)

	u.Update(0.1)
	assert.Equal(t, 92.0, u.Attributes().HP())
	for i := 0; i < 5; i++ {
		u.Update(0.1)
		assert.Len(t, u.Effects(), 1)
	}
	assert.Equal(t, 92.0, u.Attributes().HP())

	visual.done = true
	u.Update(0.1)
	assert.Empty(t, u.Effects())
}

func TestSkillIndex(t *testing.T) {
	u := NewUnit("A", combat.ClassSupport, 10)
	u.AddSkill(combat.NewAttackSkill("slash", u, 1, 0))
	u.AddSkill(combat.NewSupportSkill("ward", u, 1, 0, 1))
	u.AddSkill(combat.NewHealSkill("mend", u, 1, 0))

	assert.Equal(t, 0, u.SkillIndex(combat.KindAttack))
	assert.Equal(t, 1, u.SkillIndex(combat.KindHeal, combat.KindSupport))
	assert.Equal(t, 2, u.SkillIndex(combat.KindHeal))

	empty := NewUnit("B", combat.ClassDPS, 10)
	assert.Equal(t, 0, empty.SkillIndex(combat.KindHeal))
}

func TestUpdateTicksCooldowns(t *testing.T) {
	_, a, b := newBoundPair(t)
	skill := combat.NewAttackSkill("slash", a, 10, 1)
	a.AddSkill(skill)
	a.SetTarget(b)

	a.ActivateSkill(0)
	assert.False(t, skill.Ready())
	a.Update(1)
	assert.True(t, skill.Ready())
}

func TestFollowThroughUnit(t *testing.T) {
	_, a, b := newBoundPair(t)
	a.Attributes().MoveSpeed = 2
	a.Attributes().AttackRange = 5
	b.SetPosition(geom.V(10, 0))
	a.SetTarget(b)

	a.HandleInput(input.Command{Action: input.ActionFollow})
	a.Update(1)
	assert.InDelta(t, 2.0, a.Position().X, 1e-9)

	for i := 0; i < 10 && a.CurrentState().Name() == "follow"; i++ {
		a.Update(1)
	}
	assert.Equal(t, []string{"idle"}, a.States())
}

func TestRosterSortAndRemoveDead(t *testing.T) {
	a := NewUnit("Alpha", combat.ClassDPS, 100)
	b := NewUnit("Bravo", combat.ClassDPS, 100)
	c := NewUnit("Charlie", combat.ClassDPS, 100)
	r := NewRoster(a, b, c)

	c.Attributes().SetHP(20)
	b.Attributes().SetHP(60)
	r.Sort()
	assert.Equal(t, []*Unit{c, b, a}, r.Units())
	assert.Equal(t, c, r.First())

	b.Attributes().SetHP(0)
	dead := r.RemoveDead()
	assert.Equal(t, []*Unit{b}, dead)
	assert.Equal(t, []*Unit{c, a}, r.Units())
	assert.False(t, r.Contains(b.ID))
	assert.Equal(t, 1, r.IndexOf(a.ID))
	assert.Nil(t, r.Get(7))
}

func TestCompareTiesByName(t *testing.T) {
	a := NewUnit("Alpha", combat.ClassDPS, 50)
	b := NewUnit("Bravo", combat.ClassDPS, 50)

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Zero(t, Compare(a, a))
}

func TestEmptyRoster(t *testing.T) {
	r := NewRoster()
	assert.Nil(t, r.First())
	assert.Empty(t, r.RemoveDead())
	assert.Equal(t, -1, r.IndexOf(uuid.New()))
}
