// Package entity provides units, the rosters that order them and the index
// used to resolve weak references between them.
package entity

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/simplerpg/internal/combat"
	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/input"
	"github.com/samdwyer/simplerpg/internal/state"
)

// idle stands in for the current state when a unit's queue is empty.
var idle state.State = &state.Idle{}

// Unit is a single combatant on either side.
type Unit struct {
	ID     uuid.UUID
	Class  combat.HeroClass
	Symbol rune        // Display glyph
	Color  tcell.Color // Display colour

	attrs   *combat.Attributes
	pos     geom.Vec2
	target  uuid.UUID // Weak handle resolved through dir
	dir     Directory
	states  *state.Queue
	effects []combat.Effect
	skills  []combat.Skill
}

// NewUnit creates a unit at full health, idle, with no skills.
func NewUnit(name string, class combat.HeroClass, maxHP float64) *Unit {
	return &Unit{
		ID:     uuid.New(),
		Class:  class,
		Symbol: '@',
		Color:  tcell.ColorWhite,
		attrs:  combat.NewAttributes(name, maxHP),
		states: state.NewQueue(&state.Idle{}),
	}
}

// =============================================================================
// combat.Target / state.Actor implementation
// =============================================================================

// GetName returns the unit's name.
func (u *Unit) GetName() string { return u.attrs.Name }

// IsAlive returns true if the unit has HP remaining.
func (u *Unit) IsAlive() bool { return u.attrs.HP() > 0 }

// Attributes returns the unit's stat block.
func (u *Unit) Attributes() *combat.Attributes { return u.attrs }

// Position returns the unit's position.
func (u *Unit) Position() geom.Vec2 { return u.pos }

// SetPosition moves the unit.
func (u *Unit) SetPosition(p geom.Vec2) { u.pos = p }

// HeroClass returns the unit's class.
func (u *Unit) HeroClass() combat.HeroClass { return u.Class }

// AddEffect hands ownership of e to this unit.
func (u *Unit) AddEffect(e combat.Effect) {
	u.effects = append(u.effects, e)
}

// Effects returns the unit's active effects.
func (u *Unit) Effects() []combat.Effect { return u.effects }

// =============================================================================
// Targeting
// =============================================================================

// Bind sets the directory used to resolve this unit's target handle.
func (u *Unit) Bind(dir Directory) { u.dir = dir }

// SetTarget points the unit at t. A nil t clears the target.
func (u *Unit) SetTarget(t *Unit) {
	if t == nil {
		u.target = uuid.Nil
		return
	}
	u.target = t.ID
}

// ClearTarget drops the target handle.
func (u *Unit) ClearTarget() { u.target = uuid.Nil }

// TargetID returns the raw target handle (uuid.Nil when unset).
func (u *Unit) TargetID() uuid.UUID { return u.target }

// TargetUnit resolves the target handle. A target that is gone or dead is
// forgotten and nil is returned.
func (u *Unit) TargetUnit() *Unit {
	if u.target == uuid.Nil || u.dir == nil {
		return nil
	}
	t := u.dir.Lookup(u.target)
	if t == nil || !t.IsAlive() {
		u.target = uuid.Nil
		return nil
	}
	return t
}

// Target returns the live target as a combat.Target, or nil.
func (u *Unit) Target() combat.Target {
	if t := u.TargetUnit(); t != nil {
		return t
	}
	return nil
}

// =============================================================================
// Skills
// =============================================================================

// AddSkill appends a skill.
func (u *Unit) AddSkill(s combat.Skill) {
	u.skills = append(u.skills, s)
}

// Skills returns the unit's skills in slot order.
func (u *Unit) Skills() []combat.Skill { return u.skills }

// SkillIndex returns the slot of the first skill of any of the given kinds,
// or 0 when none matches.
func (u *Unit) SkillIndex(kinds ...combat.Kind) int {
	for i, s := range u.skills {
		for _, k := range kinds {
			if s.Kind() == k {
				return i
			}
		}
	}
	return 0
}

// ActivateSkill uses the skill in slot index on the current target and hands
// the resulting effects to the units they target. An invalid slot or a
// missing target does nothing.
func (u *Unit) ActivateSkill(index int) {
	if index < 0 || index >= len(u.skills) {
		return
	}
	target := u.Target()
	if target == nil {
		return
	}
	skill := u.skills[index]
	effects := skill.Activate(target)
	for _, e := range effects {
		e.Target().AddEffect(e)
	}
	if len(effects) > 0 {
		slog.Debug("skill activated",
			"caster", u.GetName(),
			"skill", skill.Name(),
			"target", target.GetName(),
			"effects", len(effects))
	}
}

// =============================================================================
// State machine
// =============================================================================

// CurrentState returns the front state; an empty queue reads as idle.
func (u *Unit) CurrentState() state.State {
	if s := u.states.Front(); s != nil {
		return s
	}
	return idle
}

// States lists the queued state names, current first.
func (u *Unit) States() []string { return u.states.Names() }

// PushState enters s and makes it current.
func (u *Unit) PushState(s state.State) {
	s.Enter(u)
	u.states.PushFront(s)
}

// PopState exits and removes the current state.
func (u *Unit) PopState() {
	if s := u.states.PopFront(); s != nil {
		s.Exit(u)
	}
}

// HandleInput lets the current state react to cmd, pushing any state it requests.
func (u *Unit) HandleInput(cmd input.Command) {
	current := u.CurrentState()
	next := current.HandleInput(u, cmd)
	if next == nil {
		return
	}
	slog.Debug("state transition",
		"unit", u.GetName(),
		"action", cmd.Action,
		"from", current.Name(),
		"to", next.Name())
	u.PushState(next)
}

// Update advances cooldowns, effects and the current state by delta seconds.
// A unit killed by its effects does not act this tick.
func (u *Unit) Update(delta float64) {
	for _, s := range u.skills {
		s.Update(delta)
	}

	active := u.effects[:0]
	for _, e := range u.effects {
		if !e.Update(delta) {
			active = append(active, e)
		}
	}
	for i := len(active); i < len(u.effects); i++ {
		u.effects[i] = nil
	}
	u.effects = active

	if !u.IsAlive() {
		return
	}
	u.CurrentState().Update(u, delta)
}

// Ensure Unit implements the interfaces states and skills rely on.
var (
	_ combat.Target = (*Unit)(nil)
	_ state.Actor   = (*Unit)(nil)
)
