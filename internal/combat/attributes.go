package combat

// Attributes is the numeric stat block owned by a single unit.
// HP is kept within [0, MaxHP]; the other stats are plain values.
type Attributes struct {
	Name         string
	MaxHP        float64
	Defence      float64
	MoveSpeed    float64 // Arena units per second
	AttackDelay  float64 // Seconds between attacks
	CastDelay    float64 // Seconds between casts
	AttackRange  float64
	Intelligence float64

	hp float64
}

// NewAttributes creates a stat block at full health.
func NewAttributes(name string, maxHP float64) *Attributes {
	if maxHP < 0 {
		maxHP = 0
	}
	return &Attributes{
		Name:  name,
		MaxHP: maxHP,
		hp:    maxHP,
	}
}

// HP returns current hit points.
func (a *Attributes) HP() float64 { return a.hp }

// SetHP sets hit points, clamped to [0, MaxHP].
func (a *Attributes) SetHP(hp float64) {
	a.hp = clamp(hp, 0, a.MaxHP)
}

// SetMaxHP changes the maximum and re-clamps current HP.
func (a *Attributes) SetMaxHP(maxHP float64) {
	if maxHP < 0 {
		maxHP = 0
	}
	a.MaxHP = maxHP
	a.hp = clamp(a.hp, 0, a.MaxHP)
}

// AddHP adds delta (negative for damage) and clamps the result.
// Returns the change actually applied.
func (a *Attributes) AddHP(delta float64) float64 {
	before := a.hp
	a.hp = clamp(a.hp+delta, 0, a.MaxHP)
	return a.hp - before
}

// HPRatio returns HP / MaxHP, or 0 for a zero MaxHP.
func (a *Attributes) HPRatio() float64 {
	if a.MaxHP == 0 {
		return 0
	}
	return a.hp / a.MaxHP
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
