package game

import (
	"fmt"

	"github.com/samdwyer/simplerpg/internal/config"
	"github.com/samdwyer/simplerpg/internal/factory"
	"github.com/samdwyer/simplerpg/internal/geom"
	"github.com/samdwyer/simplerpg/internal/world"
)

// NewSession builds a controller for cfg and spawns its party and enemies
// from the embedded definitions. visuals may be nil for headless runs.
// opts are applied after the config-derived options.
func NewSession(cfg config.Config, visuals factory.VisualMaker, opts ...Option) (*Controller, error) {
	f, err := factory.Defaults(visuals)
	if err != nil {
		return nil, fmt.Errorf("loading definitions: %w", err)
	}

	base := []Option{
		WithArena(world.NewArena(cfg.Arena.Width, cfg.Arena.Height)),
		WithTimers(cfg.StatusUpdate, cfg.AIUpdate),
	}
	c := NewController(append(base, opts...)...)

	if err := Populate(c, f, cfg.Party, cfg.Enemies); err != nil {
		return nil, err
	}
	return c, nil
}

// Populate creates a unit for every spawn and adds it to the matching roster.
// Spawns off the arena floor start at the center of their side's zone.
func Populate(c *Controller, f *factory.EntityFactory, party, enemies []config.Spawn) error {
	for _, s := range party {
		u, err := f.CreateUnit(s.Def, s.Name, c.arena.Place(geom.V(s.X, s.Y), world.PartyZone))
		if err != nil {
			return fmt.Errorf("spawning party member %q: %w", s.Name, err)
		}
		c.AddPlayer(u)
	}
	for _, s := range enemies {
		u, err := f.CreateUnit(s.Def, s.Name, c.arena.Place(geom.V(s.X, s.Y), world.EnemyZone))
		if err != nil {
			return fmt.Errorf("spawning enemy %q: %w", s.Name, err)
		}
		c.AddEnemy(u)
	}
	return nil
}
