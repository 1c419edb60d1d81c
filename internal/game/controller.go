package game

import (
	"context"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/input"
	"github.com/samdwyer/simplerpg/internal/telemetry"
	"github.com/samdwyer/simplerpg/internal/world"
)

// Default timer periods, in seconds.
const (
	StatusUpdate = 1.0
	AIUpdate     = 1.0
)

// timerSlack absorbs float rounding so ten 0.1 s ticks make a full second.
const timerSlack = 1e-9

// Controller is the simulation root. It owns both rosters and advances every
// unit once per Update.
type Controller struct {
	players *entity.Roster
	enemies *entity.Roster
	index   *entity.Index
	arena   *world.Arena

	selectedUnit  uuid.UUID
	selectedEnemy uuid.UUID

	observers []Observer
	input     input.Source

	statusEvery float64
	aiEvery     float64
	statusTimer float64
	aiTimer     float64

	mode Mode

	ctx    context.Context
	tracer trace.Tracer
}

// Option configures a Controller.
type Option func(*Controller)

// WithInput sets the source polled once per Update.
func WithInput(src input.Source) Option {
	return func(c *Controller) { c.input = src }
}

// WithArena replaces the default arena.
func WithArena(a *world.Arena) Option {
	return func(c *Controller) { c.arena = a }
}

// WithTimers overrides the status re-sort and AI periods. Non-positive
// values keep the defaults.
func WithTimers(status, ai float64) Option {
	return func(c *Controller) {
		if status > 0 {
			c.statusEvery = status
		}
		if ai > 0 {
			c.aiEvery = ai
		}
	}
}

// WithTracer records controller spans under ctx.
func WithTracer(ctx context.Context, tracer trace.Tracer) Option {
	return func(c *Controller) {
		c.ctx = ctx
		c.tracer = tracer
	}
}

// NewController creates a running controller with empty rosters.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		players:     entity.NewRoster(),
		enemies:     entity.NewRoster(),
		index:       entity.NewIndex(),
		arena:       world.NewArena(world.DefaultWidth, world.DefaultHeight),
		input:       input.NewQueue(),
		statusEvery: StatusUpdate,
		aiEvery:     AIUpdate,
		mode:        ModeRunning,
		ctx:         context.Background(),
		tracer:      telemetry.NoopTracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// =============================================================================
// Rosters
// =============================================================================

// AddPlayer appends u to the player party. The first player added becomes
// the selected unit.
func (c *Controller) AddPlayer(u *entity.Unit) {
	c.index.Add(u)
	c.players.Add(u)
	if c.selectedUnit == uuid.Nil {
		c.selectedUnit = u.ID
	}
}

// AddEnemy appends u to the enemy party.
func (c *Controller) AddEnemy(u *entity.Unit) {
	c.index.Add(u)
	c.enemies.Add(u)
}

// PlayerParty returns the player roster in status order.
func (c *Controller) PlayerParty() *entity.Roster { return c.players }

// EnemyParty returns the enemy roster.
func (c *Controller) EnemyParty() *entity.Roster { return c.enemies }

// Lookup resolves a unit handle across both rosters.
func (c *Controller) Lookup(id uuid.UUID) *entity.Unit { return c.index.Lookup(id) }

// Arena returns the battlefield.
func (c *Controller) Arena() *world.Arena { return c.arena }

// Mode returns the session mode.
func (c *Controller) Mode() Mode { return c.mode }

// GameOver reports whether either side has been wiped out.
func (c *Controller) GameOver() bool { return c.mode == ModeGameOver }

// =============================================================================
// Selection
// =============================================================================

// SelectedUnit returns the player unit receiving input, or nil.
func (c *Controller) SelectedUnit() *entity.Unit { return c.index.Lookup(c.selectedUnit) }

// SelectedEnemy returns the highlighted enemy, or nil.
func (c *Controller) SelectedEnemy() *entity.Unit { return c.index.Lookup(c.selectedEnemy) }

// SetSelectedUnit selects u (nil clears) and notifies observers.
func (c *Controller) SetSelectedUnit(u *entity.Unit) {
	c.selectedUnit = handle(u)
	c.NotifyObservers()
}

// SetSelectedEnemy highlights u (nil clears) and notifies observers.
func (c *Controller) SetSelectedEnemy(u *entity.Unit) {
	c.selectedEnemy = handle(u)
	c.NotifyObservers()
}

// SelectNextUnit moves the selection to the next player in roster order,
// wrapping around.
func (c *Controller) SelectNextUnit() {
	c.SetSelectedUnit(next(c.players, c.selectedUnit))
}

// SelectNextEnemy moves the enemy highlight to the next enemy, wrapping around.
func (c *Controller) SelectNextEnemy() {
	c.SetSelectedEnemy(next(c.enemies, c.selectedEnemy))
}

func next(r *entity.Roster, current uuid.UUID) *entity.Unit {
	if r.Len() == 0 {
		return nil
	}
	return r.Get((r.IndexOf(current) + 1) % r.Len())
}

func handle(u *entity.Unit) uuid.UUID {
	if u == nil {
		return uuid.Nil
	}
	return u.ID
}

// =============================================================================
// Observers
// =============================================================================

// RegisterObserver adds o. Registering the same observer twice is a no-op.
func (c *Controller) RegisterObserver(o Observer) {
	if slices.Contains(c.observers, o) {
		return
	}
	c.observers = append(c.observers, o)
}

// RemoveObserver drops o if registered.
func (c *Controller) RemoveObserver(o Observer) {
	c.observers = slices.DeleteFunc(c.observers, func(x Observer) bool { return x == o })
}

// NotifyObservers calls ControllerUpdated on every observer in registration order.
func (c *Controller) NotifyObservers() {
	for _, o := range c.observers {
		o.ControllerUpdated()
	}
}

// =============================================================================
// Tick
// =============================================================================

// Update advances the session by delta seconds. It does nothing once the game
// is over.
func (c *Controller) Update(delta float64) {
	if c.mode == ModeGameOver {
		return
	}

	changed := c.applyInput(c.input.Poll())

	for _, u := range c.players.Units() {
		c.step(u, delta)
	}
	for _, u := range c.enemies.Units() {
		c.step(u, delta)
	}

	if c.removeDead() {
		changed = true
	}

	c.statusTimer += delta
	if c.statusTimer >= c.statusEvery-timerSlack {
		c.sortPlayers()
		c.statusTimer = 0
		changed = true
	}

	c.aiTimer += delta
	if c.aiTimer >= c.aiEvery-timerSlack {
		c.runAI()
		c.aiTimer = 0
		changed = true
	}

	if c.players.Len() == 0 || c.enemies.Len() == 0 {
		c.mode = ModeGameOver
		changed = true
		slog.Info("game over",
			"players", c.players.Len(),
			"enemies", c.enemies.Len())
	}

	if changed {
		c.NotifyObservers()
	}
}

// applyInput hands cmd to the selected unit. A command naming a target first
// retargets the selected unit; enemy targets also become the selected enemy.
// Reports whether the enemy selection changed.
func (c *Controller) applyInput(cmd input.Command) bool {
	if cmd.Action == input.ActionNone && cmd.Target == uuid.Nil {
		return false
	}
	sel := c.SelectedUnit()
	if sel == nil {
		return false
	}
	reselected := false
	if cmd.Target != uuid.Nil {
		if t := c.index.Lookup(cmd.Target); t != nil && t.IsAlive() {
			sel.SetTarget(t)
			if c.enemies.Contains(t.ID) && c.selectedEnemy != t.ID {
				c.selectedEnemy = t.ID
				reselected = true
			}
		}
	}
	sel.HandleInput(cmd)
	return reselected
}

func (c *Controller) step(u *entity.Unit, delta float64) {
	u.Update(delta)
	u.SetPosition(c.arena.Clamp(u.Position()))
}

// removeDead drops dead units from both rosters and forgets every handle
// pointing at them. A dead selected unit hands the selection to the first
// surviving player. Reports whether anyone died.
func (c *Controller) removeDead() bool {
	dead := append(c.players.RemoveDead(), c.enemies.RemoveDead()...)
	if len(dead) == 0 {
		return false
	}

	for _, d := range dead {
		_, span := c.tracer.Start(c.ctx, "unit.death")
		span.SetAttributes(
			attribute.String("unit.name", d.GetName()),
			attribute.String("unit.id", d.ID.String()),
		)
		span.End()

		slog.Debug("unit died", "unit", d.GetName())
		c.index.Remove(d.ID)
		c.forget(d.ID)
	}
	return true
}

func (c *Controller) forget(id uuid.UUID) {
	for _, r := range []*entity.Roster{c.players, c.enemies} {
		for _, u := range r.Units() {
			if u.TargetID() == id {
				u.ClearTarget()
			}
		}
	}
	if c.selectedUnit == id {
		c.selectedUnit = handle(c.players.First())
	}
	if c.selectedEnemy == id {
		c.selectedEnemy = uuid.Nil
	}
}

func (c *Controller) sortPlayers() {
	_, span := c.tracer.Start(c.ctx, "controller.sort")
	defer span.End()

	c.players.Sort()
	span.SetAttributes(attribute.Int("roster.size", c.players.Len()))
}
