package combat

import "log/slog"

// HealEffect restores HP once, clamped to the target's maximum.
type HealEffect struct {
	effectBase
	value float64
}

// NewHealEffect creates a heal of the given amount for target.
func NewHealEffect(target Target, value float64) *HealEffect {
	if value < 0 {
		value = 0
	}
	return &HealEffect{effectBase: effectBase{target: target}, value: value}
}

// Name returns "heal".
func (e *HealEffect) Name() string { return "heal" }

// Update implements Effect.
func (e *HealEffect) Update(delta float64) bool {
	return e.step(delta, e.resolve)
}

func (e *HealEffect) resolve() {
	attrs := e.target.Attributes()
	healed := attrs.AddHP(e.value)
	slog.Debug("heal effect complete",
		"target", e.target.GetName(),
		"healed", healed,
		"hp", attrs.HP())
}

var _ Effect = (*HealEffect)(nil)
