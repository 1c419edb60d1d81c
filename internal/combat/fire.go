package combat

import "log/slog"

// FireEffect deals a single delayed hit reduced by the target's defence.
type FireEffect struct {
	effectBase
	value float64
}

// NewFireEffect creates a fire effect of the given raw value against target.
func NewFireEffect(target Target, value float64) *FireEffect {
	return &FireEffect{effectBase: effectBase{target: target}, value: value}
}

// Name returns "fire".
func (e *FireEffect) Name() string { return "fire" }

// Update implements Effect.
func (e *FireEffect) Update(delta float64) bool {
	return e.step(delta, e.resolve)
}

func (e *FireEffect) resolve() {
	attrs := e.target.Attributes()
	damage := FireDamage(e.value, attrs.Defence)
	attrs.AddHP(-damage)
	slog.Debug("fire effect complete",
		"target", e.target.GetName(),
		"damage", damage,
		"hp", attrs.HP())
}

// FireDamage returns max(1, value - defence).
func FireDamage(value, defence float64) float64 {
	damage := value - defence
	if damage < 1 {
		damage = 1
	}
	return damage
}

var _ Effect = (*FireEffect)(nil)
