package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/input"
)

// IntentKind classifies what a terminal event asks for.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentCommand
	IntentQuit
	IntentNextUnit
	IntentNextEnemy
)

// Intent is a mapped terminal event. Command is set for IntentCommand.
type Intent struct {
	Kind    IntentKind
	Command input.Command
}

// Focus supplies the handles that target-taking commands aim at.
type Focus struct {
	Enemy uuid.UUID // Selected enemy, for follow and attack
	Ally  uuid.UUID // Ally to support
}

// KeyMapper turns tcell events into intents. OriginX and OriginY are the
// screen cell where the arena's (0, 0) is drawn.
type KeyMapper struct {
	OriginX, OriginY int
}

// Map translates ev. Unhandled events map to IntentNone.
func (k KeyMapper) Map(ev tcell.Event, focus Focus) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return k.MapKey(ev.Key(), ev.Rune(), focus)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			return Intent{}
		}
		x, y := ev.Position()
		return k.MapClick(x, y)
	}
	return Intent{}
}

// MapKey translates a key press.
//
//	q / Esc / Ctrl-C  quit
//	Tab               select next party member
//	e                 select next enemy
//	f / a             follow / attack the selected enemy
//	s                 support the ally
func (k KeyMapper) MapKey(key tcell.Key, ch rune, focus Focus) Intent {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Kind: IntentQuit}
	case tcell.KeyTab:
		return Intent{Kind: IntentNextUnit}
	case tcell.KeyRune:
	default:
		return Intent{}
	}

	switch ch {
	case 'q', 'Q':
		return Intent{Kind: IntentQuit}
	case 'e':
		return Intent{Kind: IntentNextEnemy}
	case 'f':
		return command(input.ActionFollow, focus.Enemy)
	case 'a':
		return command(input.ActionAttack, focus.Enemy)
	case 's':
		return command(input.ActionSupport, focus.Ally)
	}
	return Intent{}
}

// MapClick turns a left click into a move to the clicked arena cell.
func (k KeyMapper) MapClick(x, y int) Intent {
	dest := geom.V(float64(x-k.OriginX), float64(y-k.OriginY))
	return Intent{
		Kind:    IntentCommand,
		Command: input.Command{Action: input.ActionMove, Destination: dest},
	}
}

func command(a input.Action, target uuid.UUID) Intent {
	return Intent{
		Kind:    IntentCommand,
		Command: input.Command{Action: a, Target: target},
	}
}
