package state

import (
	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/geom"
)

// Idle does nothing until input arrives.
type Idle struct{ base }

func (*Idle) Name() string          { return "idle" }
func (*Idle) Update(Actor, float64) {}

// Follow walks toward the target and finishes once within attack range.
type Follow struct{ base }

func (*Follow) Name() string { return "follow" }

func (*Follow) Update(a Actor, delta float64) {
	t := a.Target()
	if t == nil || InRange(a, t) {
		a.PopState()
		return
	}
	approach(a, t.Position(), delta)
}

// Move walks to a fixed destination.
type Move struct {
	base
	dest geom.Vec2
}

// NewMove creates a move state toward dest.
func NewMove(dest geom.Vec2) *Move {
	return &Move{dest: dest}
}

func (*Move) Name() string { return "move" }

// Destination returns where the state is heading.
func (s *Move) Destination() geom.Vec2 { return s.dest }

func (s *Move) Update(a Actor, delta float64) {
	if a.Position().Dist(s.dest) <= ArrivalEpsilon {
		a.PopState()
		return
	}
	approach(a, s.dest, delta)
}

// Attack closes in on the target and strikes every AttackDelay seconds.
type Attack struct {
	base
	timer float64
}

func (*Attack) Name() string { return "attack" }

func (s *Attack) Enter(Actor) { s.timer = 0 }

func (s *Attack) Update(a Actor, delta float64) {
	s.timer = engage(a, delta, s.timer, a.Attributes().AttackDelay, combat.KindAttack)
}

// Support stays near an ally and casts on it every CastDelay seconds.
type Support struct {
	base
	timer float64
}

func (*Support) Name() string { return "support" }

func (s *Support) Enter(Actor) { s.timer = 0 }

func (s *Support) Update(a Actor, delta float64) {
	s.timer = engage(a, delta, s.timer, a.Attributes().CastDelay, combat.KindHeal, combat.KindSupport)
}

// engage is the shared approach-then-act loop of Attack and Support.
// It returns the updated action timer.
func engage(a Actor, delta, timer, delay float64, kinds ...combat.Kind) float64 {
	t := a.Target()
	if t == nil {
		a.PopState()
		return 0
	}
	if !InRange(a, t) {
		approach(a, t.Position(), delta)
		return timer
	}
	timer += delta
	if timer >= delay {
		a.ActivateSkill(a.SkillIndex(kinds...))
		return 0
	}
	return timer
}

var (
	_ State = (*Idle)(nil)
	_ State = (*Follow)(nil)
	_ State = (*Move)(nil)
	_ State = (*Attack)(nil)
	_ State = (*Support)(nil)
)
