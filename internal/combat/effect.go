package combat

// Effect is a timed consequence of a skill, owned by the unit it targets.
//
// Update is called once per tick by the owner. On the first tick the effect
// applies its numeric consequence exactly once and becomes resolved. It is
// finished (Update returns true) on a later tick, once any attached visual
// has also completed.
type Effect interface {
	Name() string
	Update(delta float64) bool
	Resolved() bool
	Target() Target
	AttachVisual(v Visual)
}

// effectBase holds the lifecycle shared by all effects.
type effectBase struct {
	target   Target
	visual   Visual
	resolved bool
}

func (b *effectBase) Target() Target { return b.target }

func (b *effectBase) Resolved() bool { return b.resolved }

func (b *effectBase) AttachVisual(v Visual) { b.visual = v }

// tickVisual follows the target and advances the visual.
// Reports true when there is no visual or it has completed.
func (b *effectBase) tickVisual(delta float64) bool {
	if b.visual == nil {
		return true
	}
	b.visual.SetPosition(b.target.Position())
	b.visual.Update(delta)
	return b.visual.IsComplete()
}

// release frees the visual, if any.
func (b *effectBase) release() {
	if b.visual != nil {
		b.visual.Free()
		b.visual = nil
	}
}

// step runs the one-shot lifecycle: resolve on the first tick, finish once
// resolved and the visual is done.
func (b *effectBase) step(delta float64, resolve func()) bool {
	visualDone := b.tickVisual(delta)
	if b.resolved {
		if visualDone {
			b.release()
			return true
		}
		return false
	}
	resolve()
	b.resolved = true
	return false
}

// EffectBuilder creates the effects skills spawn.
type EffectBuilder interface {
	Fire(target Target, value float64) Effect
	Heal(target Target, value float64) Effect
	Ward(target Target, value, duration float64) Effect
}

// PlainEffects builds effects without visuals.
type PlainEffects struct{}

func (PlainEffects) Fire(target Target, value float64) Effect { return NewFireEffect(target, value) }
func (PlainEffects) Heal(target Target, value float64) Effect { return NewHealEffect(target, value) }
func (PlainEffects) Ward(target Target, value, duration float64) Effect {
	return NewWardEffect(target, value, duration)
}

var _ EffectBuilder = PlainEffects{}
