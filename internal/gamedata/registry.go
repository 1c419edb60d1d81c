package gamedata

import (
	"errors"
	"fmt"
)

// ErrUnknownUnit is returned when a unit definition ID is not registered.
var ErrUnknownUnit = errors.New("unknown unit definition")

// ErrUnknownSkill is returned when a skill definition ID is not registered.
var ErrUnknownSkill = errors.New("unknown skill definition")

// =============================================================================
// UnitRegistry
// =============================================================================

// UnitRegistry holds loaded unit definitions keyed by ID.
type UnitRegistry struct {
	units map[string]*UnitDef
	all   []UnitDef
}

// NewUnitRegistry creates a registry from loaded unit definitions.
func NewUnitRegistry(units []UnitDef) *UnitRegistry {
	registry := &UnitRegistry{
		units: make(map[string]*UnitDef),
		all:   units,
	}
	for i := range units {
		registry.units[units[i].ID] = &units[i]
	}
	return registry
}

// LoadUnitRegistry loads and creates a registry from the embedded units.json.
func LoadUnitRegistry() (*UnitRegistry, error) {
	units, err := LoadUnits()
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, errors.New("no units loaded from units.json")
	}
	return NewUnitRegistry(units), nil
}

// MustLoadUnitRegistry loads a registry, panicking on error.
func MustLoadUnitRegistry() *UnitRegistry {
	registry, err := LoadUnitRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the unit definition with the given ID, or nil if not found.
func (r *UnitRegistry) GetByID(id string) *UnitDef {
	return r.units[id]
}

// Lookup is GetByID with an error for unknown IDs.
func (r *UnitRegistry) Lookup(id string) (*UnitDef, error) {
	def := r.units[id]
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, id)
	}
	return def, nil
}

// All returns all unit definitions.
func (r *UnitRegistry) All() []UnitDef {
	return r.all
}

// Count returns the number of unit definitions in the registry.
func (r *UnitRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// SkillRegistry
// =============================================================================

// SkillRegistry holds loaded skill definitions keyed by ID.
type SkillRegistry struct {
	skills map[string]*SkillDef
	all    []SkillDef
}

// NewSkillRegistry creates a registry from loaded skill definitions.
func NewSkillRegistry(skills []SkillDef) *SkillRegistry {
	registry := &SkillRegistry{
		skills: make(map[string]*SkillDef),
		all:    skills,
	}
	for i := range skills {
		registry.skills[skills[i].ID] = &skills[i]
	}
	return registry
}

// LoadSkillRegistry loads and creates a registry from the embedded skills.json.
func LoadSkillRegistry() (*SkillRegistry, error) {
	skills, err := LoadSkills()
	if err != nil {
		return nil, err
	}
	if len(skills) == 0 {
		return nil, errors.New("no skills loaded from skills.json")
	}
	return NewSkillRegistry(skills), nil
}

// MustLoadSkillRegistry loads a registry, panicking on error.
func MustLoadSkillRegistry() *SkillRegistry {
	registry, err := LoadSkillRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the skill definition with the given ID, or nil if not found.
func (r *SkillRegistry) GetByID(id string) *SkillDef {
	return r.skills[id]
}

// Lookup is GetByID with an error for unknown IDs.
func (r *SkillRegistry) Lookup(id string) (*SkillDef, error) {
	def := r.skills[id]
	if def == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSkill, id)
	}
	return def, nil
}

// GetMultiple returns skill definitions for a list of IDs.
// Missing IDs are silently skipped.
func (r *SkillRegistry) GetMultiple(ids []string) []*SkillDef {
	result := make([]*SkillDef, 0, len(ids))
	for _, id := range ids {
		if skill := r.skills[id]; skill != nil {
			result = append(result, skill)
		}
	}
	return result
}

// All returns all skill definitions.
func (r *SkillRegistry) All() []SkillDef {
	return r.all
}

// Count returns the number of skill definitions in the registry.
func (r *SkillRegistry) Count() int {
	return len(r.all)
}
