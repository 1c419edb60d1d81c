package combat

import "log/slog"

// WardEffect raises the target's defence for a fixed duration.
// The bonus is applied once on the first tick and removed when the effect finishes.
type WardEffect struct {
	effectBase
	value     float64
	remaining float64
}

// NewWardEffect creates a ward adding value defence for duration seconds.
func NewWardEffect(target Target, value, duration float64) *WardEffect {
	return &WardEffect{
		effectBase: effectBase{target: target},
		value:      value,
		remaining:  duration,
	}
}

// Name returns "ward".
func (e *WardEffect) Name() string { return "ward" }

// Update implements Effect.
func (e *WardEffect) Update(delta float64) bool {
	visualDone := e.tickVisual(delta)
	if !e.resolved {
		e.target.Attributes().Defence += e.value
		e.resolved = true
		slog.Debug("ward effect applied",
			"target", e.target.GetName(),
			"defence", e.target.Attributes().Defence)
		return false
	}

	e.remaining -= delta
	if e.remaining > 0 || !visualDone {
		return false
	}

	e.target.Attributes().Defence -= e.value
	e.release()
	slog.Debug("ward effect expired", "target", e.target.GetName())
	return true
}

var _ Effect = (*WardEffect)(nil)
