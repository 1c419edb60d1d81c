// Package state implements the per-unit behaviour state machine.
//
// Each unit keeps a Queue of states; the front is the current one. Input may
// produce a new state which is pushed to the front, superseding (not
// discarding) the previous one. A state that finishes pops itself, letting
// the one below resume.
package state

import (
	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/input"
)

// ArrivalEpsilon is the tolerance added to range checks against oscillation.
const ArrivalEpsilon = 0.1

// Actor is the unit view a state operates on.
type Actor interface {
	combat.Target
	SetPosition(p geom.Vec2)
	HeroClass() combat.HeroClass
	Target() combat.Target // nil when unset or no longer alive
	PopState()
	SkillIndex(kinds ...combat.Kind) int
	ActivateSkill(index int)
}

// State is one behaviour mode.
type State interface {
	Name() string
	Enter(a Actor)
	HandleInput(a Actor, cmd input.Command) State
	Update(a Actor, delta float64)
	Exit(a Actor)
}

// base provides no-op lifecycle hooks and the shared transition table.
type base struct{}

func (base) Enter(Actor) {}
func (base) Exit(Actor)  {}

func (base) HandleInput(a Actor, cmd input.Command) State {
	return Transition(a, cmd)
}

// Transition returns the state an action requests, or nil for none.
func Transition(a Actor, cmd input.Command) State {
	switch cmd.Action {
	case input.ActionFollow:
		return &Follow{}
	case input.ActionMove:
		return NewMove(cmd.Destination)
	case input.ActionAttack:
		return &Attack{}
	case input.ActionSupport:
		if a.HeroClass() == combat.ClassSupport {
			return &Support{}
		}
	}
	return nil
}

// InRange reports whether t is within the actor's attack range.
func InRange(a Actor, t combat.Target) bool {
	return a.Position().Dist(t.Position()) <= a.Attributes().AttackRange+ArrivalEpsilon
}

// approach moves the actor toward p at its move speed without passing it.
func approach(a Actor, p geom.Vec2, delta float64) {
	step := a.Attributes().MoveSpeed * delta
	a.SetPosition(a.Position().MoveToward(p, step))
}
