// Package input defines the abstract actions the simulation consumes from
// whatever front-end decodes keys, clicks or gestures.
package input

import (
	"github.com/google/uuid"

	"github.com/samdwyer/simplerpg/internal/geom"
)

// Action is an abstract player intent.
type Action int

const (
	// ActionNone means no input this tick.
	ActionNone Action = iota
	ActionMove
	ActionFollow
	ActionAttack
	ActionSupport
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMove:
		return "move"
	case ActionFollow:
		return "follow"
	case ActionAttack:
		return "attack"
	case ActionSupport:
		return "support"
	default:
		return "unknown"
	}
}

// Command is one decoded input event.
type Command struct {
	Action      Action
	Destination geom.Vec2 // Used by ActionMove
	Target      uuid.UUID // Optional unit the action is aimed at (uuid.Nil = keep current target)
}

// None is the empty command.
var None = Command{Action: ActionNone}

// Source is polled once per tick for the next command.
type Source interface {
	Poll() Command
}

// Queue is a FIFO Source. Each command is delivered exactly once;
// an empty queue yields None.
type Queue struct {
	pending []Command
}

// NewQueue creates a queue preloaded with the given commands.
func NewQueue(cmds ...Command) *Queue {
	q := &Queue{}
	q.pending = append(q.pending, cmds...)
	return q
}

// Push appends a command.
func (q *Queue) Push(cmd Command) {
	q.pending = append(q.pending, cmd)
}

// Poll removes and returns the oldest command.
func (q *Queue) Poll() Command {
	if len(q.pending) == 0 {
		return None
	}
	cmd := q.pending[0]
	q.pending = q.pending[1:]
	return cmd
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.pending)
}

var _ Source = (*Queue)(nil)
