package combat

// Kind classifies what a skill does.
type Kind int

const (
	KindAttack Kind = iota
	KindHeal
	KindSupport
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindAttack:
		return "attack"
	case KindHeal:
		return "heal"
	case KindSupport:
		return "support"
	default:
		return "unknown"
	}
}

// ParseKind maps a kind name back to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "attack":
		return KindAttack, true
	case "heal":
		return KindHeal, true
	case "support":
		return KindSupport, true
	default:
		return 0, false
	}
}

// Skill is an ability owned by one caster. Activate returns the effects to
// attach to their targets; an empty result means the activation did nothing
// (cooling down, or no live target).
type Skill interface {
	Name() string
	Kind() Kind
	Activate(target Target) []Effect
	Update(delta float64)
	Ready() bool
}

// skillBase holds the caster, cooldown and effect builder shared by all skills.
type skillBase struct {
	name      string
	caster    Target
	power     float64
	cooldown  float64
	remaining float64
	effects   EffectBuilder
}

func (s *skillBase) Name() string { return s.name }

// Ready reports whether the skill is off cooldown.
func (s *skillBase) Ready() bool { return s.remaining <= 0 }

// Update counts the cooldown down.
func (s *skillBase) Update(delta float64) {
	if s.remaining > 0 {
		s.remaining -= delta
	}
}

// SetEffectBuilder replaces the builder spawned effects come from.
// A nil builder restores PlainEffects.
func (s *skillBase) SetEffectBuilder(b EffectBuilder) { s.effects = b }

func (s *skillBase) builder() EffectBuilder {
	if s.effects == nil {
		return PlainEffects{}
	}
	return s.effects
}

// begin checks the activation guard and starts the cooldown.
func (s *skillBase) begin(target Target) bool {
	if target == nil || !target.IsAlive() || !s.Ready() {
		return false
	}
	s.remaining = s.cooldown
	return true
}

// AttackSkill hits the target with a fire effect of fixed power.
type AttackSkill struct{ skillBase }

// NewAttackSkill creates an attack skill for caster.
func NewAttackSkill(name string, caster Target, power, cooldown float64) *AttackSkill {
	return &AttackSkill{skillBase{name: name, caster: caster, power: power, cooldown: cooldown}}
}

// Kind returns KindAttack.
func (s *AttackSkill) Kind() Kind { return KindAttack }

// Activate implements Skill.
func (s *AttackSkill) Activate(target Target) []Effect {
	if !s.begin(target) {
		return nil
	}
	return []Effect{s.builder().Fire(target, s.power)}
}

// HealSkill heals the target for power plus the caster's intelligence.
type HealSkill struct{ skillBase }

// NewHealSkill creates a heal skill for caster.
func NewHealSkill(name string, caster Target, power, cooldown float64) *HealSkill {
	return &HealSkill{skillBase{name: name, caster: caster, power: power, cooldown: cooldown}}
}

// Kind returns KindHeal.
func (s *HealSkill) Kind() Kind { return KindHeal }

// Activate implements Skill.
func (s *HealSkill) Activate(target Target) []Effect {
	if !s.begin(target) {
		return nil
	}
	amount := s.power + s.caster.Attributes().Intelligence
	return []Effect{s.builder().Heal(target, amount)}
}

// SupportSkill wards the target, adding power plus half the caster's
// intelligence to its defence for duration seconds.
type SupportSkill struct {
	skillBase
	duration float64
}

// NewSupportSkill creates a support skill for caster.
func NewSupportSkill(name string, caster Target, power, cooldown, duration float64) *SupportSkill {
	return &SupportSkill{
		skillBase: skillBase{name: name, caster: caster, power: power, cooldown: cooldown},
		duration:  duration,
	}
}

// Kind returns KindSupport.
func (s *SupportSkill) Kind() Kind { return KindSupport }

// Activate implements Skill.
func (s *SupportSkill) Activate(target Target) []Effect {
	if !s.begin(target) {
		return nil
	}
	value := s.power + s.caster.Attributes().Intelligence/2
	return []Effect{s.builder().Ward(target, value, s.duration)}
}

var (
	_ Skill = (*AttackSkill)(nil)
	_ Skill = (*HealSkill)(nil)
	_ Skill = (*SupportSkill)(nil)
)
