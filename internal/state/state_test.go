package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/input"
)

// fakeActor is a minimal Actor backed by a Queue.
type fakeActor struct {
	attrs     *combat.Attributes
	pos       geom.Vec2
	class     combat.HeroClass
	target    *fakeActor
	states    *Queue
	kinds     []combat.Kind
	activated []int
}

func newFakeActor(name string, pos geom.Vec2) *fakeActor {
	a := &fakeActor{
		attrs:  combat.NewAttributes(name, 100),
		pos:    pos,
		class:  combat.ClassDPS,
		states: NewQueue(&Idle{}),
	}
	return a
}

func (f *fakeActor) GetName() string                { return f.attrs.Name }
func (f *fakeActor) IsAlive() bool                  { return f.attrs.HP() > 0 }
func (f *fakeActor) Attributes() *combat.Attributes { return f.attrs }
func (f *fakeActor) Position() geom.Vec2            { return f.pos }
func (f *fakeActor) AddEffect(combat.Effect)        {}
func (f *fakeActor) SetPosition(p geom.Vec2)        { f.pos = p }
func (f *fakeActor) HeroClass() combat.HeroClass    { return f.class }
func (f *fakeActor) ActivateSkill(index int)        { f.activated = append(f.activated, index) }
func (f *fakeActor) PopState()                      { f.states.PopFront() }

func (f *fakeActor) SkillIndex(kinds ...combat.Kind) int {
	for i, k := range f.kinds {
		for _, want := range kinds {
			if k == want {
				return i
			}
		}
	}
	return 0
}

func (f *fakeActor) Target() combat.Target {
	if f.target == nil || !f.target.IsAlive() {
		return nil
	}
	return f.target
}

// tick updates the current state the way a unit does.
func (f *fakeActor) tick(delta float64) {
	if s := f.states.Front(); s != nil {
		s.Update(f, delta)
	}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name   string
		action input.Action
		class  combat.HeroClass
		want   string
	}{
		{"follow", input.ActionFollow, combat.ClassDPS, "follow"},
		{"move", input.ActionMove, combat.ClassDPS, "move"},
		{"attack", input.ActionAttack, combat.ClassTank, "attack"},
		{"support as support", input.ActionSupport, combat.ClassSupport, "support"},
		{"support as dps", input.ActionSupport, combat.ClassDPS, ""},
		{"none", input.ActionNone, combat.ClassDPS, ""},
	}

	current := []State{&Idle{}, &Follow{}, NewMove(geom.V(1, 1)), &Attack{}, &Support{}}
	for _, tt := range tests {
		for _, cur := range current {
			t.Run(cur.Name()+"/"+tt.name, func(t *testing.T) {
				a := newFakeActor("a", geom.Vec2{})
				a.class = tt.class

				next := cur.HandleInput(a, input.Command{Action: tt.action})
				if tt.want == "" {
					assert.Nil(t, next)
					return
				}
				require.NotNil(t, next)
				assert.Equal(t, tt.want, next.Name())
			})
		}
	}
}

func TestMoveTransitionCarriesDestination(t *testing.T) {
	a := newFakeActor("a", geom.Vec2{})
	next := Transition(a, input.Command{Action: input.ActionMove, Destination: geom.V(7, 2)})
	mv, ok := next.(*Move)
	require.True(t, ok)
	assert.Equal(t, geom.V(7, 2), mv.Destination())
}

func TestFollowScenario(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.MoveSpeed = 2
	a.attrs.AttackRange = 5
	a.target = newFakeActor("b", geom.V(10, 0))
	a.states.PushFront(&Follow{})

	a.tick(1)
	assert.InDelta(t, 2.0, a.pos.X, 1e-9)
	assert.InDelta(t, 0.0, a.pos.Y, 1e-9)
	assert.Equal(t, "follow", a.states.Front().Name())

	ticks := 1
	for a.states.Front().Name() == "follow" && ticks < 50 {
		before := a.pos.Dist(a.target.pos)
		a.tick(1)
		ticks++
		if a.states.Front().Name() == "follow" {
			assert.Less(t, a.pos.Dist(a.target.pos), before)
		}
	}

	assert.Equal(t, "idle", a.states.Front().Name(), "follow pops back to the previous state")
	assert.LessOrEqual(t, a.pos.Dist(a.target.pos), 5.1)
	assert.Equal(t, 4, ticks)
}

func TestFollowDoesNotPopBeforeRange(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.MoveSpeed = 0.5
	a.attrs.AttackRange = 1
	a.target = newFakeActor("b", geom.V(3, 0))
	a.states.PushFront(&Follow{})

	for i := 0; i < 3; i++ {
		dist := a.pos.Dist(a.target.pos)
		a.tick(1)
		if dist > 1.1 {
			assert.Equal(t, "follow", a.states.Front().Name(), "tick %d at distance %.2f", i, dist)
		}
	}
	// distance is now 1.5: one more step to 1.0, then the pop
	a.tick(1)
	assert.Equal(t, "follow", a.states.Front().Name())
	a.tick(1)
	assert.Equal(t, "idle", a.states.Front().Name())
}

func TestFollowWithoutTargetPops(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.states.PushFront(&Follow{})
	a.tick(0.1)
	assert.Equal(t, 1, a.states.Len())
	assert.Equal(t, geom.V(0, 0), a.pos)
}

func TestFollowNeverOvershoots(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.MoveSpeed = 100
	a.attrs.AttackRange = 0
	a.target = newFakeActor("b", geom.V(3, 4))
	a.states.PushFront(&Follow{})

	a.tick(1)
	assert.InDelta(t, 0.0, a.pos.Dist(a.target.pos), 1e-9)
}

func TestMoveArrivesAndPops(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.MoveSpeed = 3
	a.states.PushFront(NewMove(geom.V(0, 5)))

	a.tick(1)
	assert.InDelta(t, 3.0, a.pos.Y, 1e-9)
	a.tick(1)
	assert.InDelta(t, 5.0, a.pos.Y, 1e-9)
	assert.Equal(t, "move", a.states.Front().Name())
	a.tick(1)
	assert.Equal(t, "idle", a.states.Front().Name())
}

func TestAttackStrikesOnDelay(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.AttackRange = 2
	a.attrs.AttackDelay = 0.5
	a.kinds = []combat.Kind{combat.KindHeal, combat.KindAttack}
	a.target = newFakeActor("b", geom.V(1, 0))

	atk := &Attack{}
	atk.Enter(a)
	a.states.PushFront(atk)

	a.tick(0.3)
	assert.Empty(t, a.activated)
	a.tick(0.3)
	assert.Equal(t, []int{1}, a.activated)
	a.tick(0.3)
	assert.Equal(t, []int{1}, a.activated)
	a.tick(0.3)
	assert.Equal(t, []int{1, 1}, a.activated)
}

func TestAttackApproachesOutOfRangeTarget(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.attrs.AttackRange = 1
	a.attrs.MoveSpeed = 1
	a.target = newFakeActor("b", geom.V(5, 0))
	a.states.PushFront(&Attack{})

	a.tick(1)
	assert.InDelta(t, 1.0, a.pos.X, 1e-9)
	assert.Empty(t, a.activated)
}

func TestAttackPopsWhenTargetDies(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.target = newFakeActor("b", geom.V(1, 0))
	a.states.PushFront(&Attack{})

	a.target.attrs.SetHP(0)
	a.tick(0.1)
	assert.Equal(t, "idle", a.states.Front().Name())
}

func TestSupportUsesCastDelayAndHealSkill(t *testing.T) {
	a := newFakeActor("a", geom.V(0, 0))
	a.class = combat.ClassSupport
	a.attrs.AttackRange = 5
	a.attrs.CastDelay = 1
	a.attrs.AttackDelay = 100
	a.kinds = []combat.Kind{combat.KindAttack, combat.KindSupport, combat.KindHeal}
	a.target = newFakeActor("ally", geom.V(2, 2))
	a.states.PushFront(&Support{})

	a.tick(1)
	assert.Equal(t, []int{1}, a.activated)
}

func TestQueueDeque(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Front())
	assert.Nil(t, q.Back())
	assert.Nil(t, q.PopFront())
	assert.Nil(t, q.PopBack())

	idle, follow, atk := &Idle{}, &Follow{}, &Attack{}
	q.PushBack(idle)
	q.PushFront(follow)
	q.PushFront(atk)
	assert.Equal(t, []string{"attack", "follow", "idle"}, q.Names())
	assert.Equal(t, 3, q.Len())

	assert.Equal(t, State(atk), q.PopFront())
	assert.Equal(t, State(follow), q.Front(), "previous state resumes")
	assert.Equal(t, State(idle), q.PopBack())
	assert.Equal(t, []string{"follow"}, q.Names())
}
