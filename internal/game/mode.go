// Package game owns the session: the controller that drives every unit each
// tick, and the loops that feed it time and input.
package game

// Mode is the controller's coarse session state.
type Mode int

const (
	// ModeRunning is the default: units update every tick.
	ModeRunning Mode = iota
	// ModeGameOver is entered once either roster is empty. Update becomes a no-op.
	ModeGameOver
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}
