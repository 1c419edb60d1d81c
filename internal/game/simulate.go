package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/simplerpg/internal/entity"
)

// UnitStatus is a point-in-time view of one unit.
type UnitStatus struct {
	Name  string
	HP    float64
	MaxHP float64
	State string
	X, Y  float64
}

// Report summarizes a headless run.
type Report struct {
	Ticks   int
	Elapsed float64
	Mode    Mode
	Party   []UnitStatus
	Enemies []UnitStatus
}

// Simulate advances c by ticks fixed steps of delta seconds, stopping early
// once the game is over.
func Simulate(ctx context.Context, tracer trace.Tracer, c *Controller, ticks int, delta float64) Report {
	_, span := tracer.Start(ctx, "session.simulate")
	defer span.End()

	var rep Report
	for rep.Ticks < ticks && !c.GameOver() {
		c.Update(delta)
		rep.Ticks++
		rep.Elapsed += delta
	}
	rep.Mode = c.Mode()
	rep.Party = Snapshot(c.PlayerParty())
	rep.Enemies = Snapshot(c.EnemyParty())

	span.SetAttributes(
		attribute.Int("simulate.ticks", rep.Ticks),
		attribute.Float64("simulate.elapsed", rep.Elapsed),
		attribute.String("simulate.mode", rep.Mode.String()),
		attribute.Int("simulate.party", len(rep.Party)),
		attribute.Int("simulate.enemies", len(rep.Enemies)),
	)
	slog.Info("simulation finished",
		"ticks", rep.Ticks,
		"elapsed", rep.Elapsed,
		"mode", rep.Mode)
	return rep
}

// Snapshot captures every unit of r in roster order.
func Snapshot(r *entity.Roster) []UnitStatus {
	out := make([]UnitStatus, 0, r.Len())
	for _, u := range r.Units() {
		a := u.Attributes()
		p := u.Position()
		out = append(out, UnitStatus{
			Name:  u.GetName(),
			HP:    a.HP(),
			MaxHP: a.MaxHP,
			State: u.CurrentState().Name(),
			X:     p.X,
			Y:     p.Y,
		})
	}
	return out
}

// Write prints the report as plain text.
func (r Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d ticks, %.1fs, %s\n", r.Ticks, r.Elapsed, r.Mode); err != nil {
		return err
	}
	for _, section := range []struct {
		title string
		units []UnitStatus
	}{{"party", r.Party}, {"enemies", r.Enemies}} {
		if _, err := fmt.Fprintf(w, "%s:\n", section.title); err != nil {
			return err
		}
		for _, u := range section.units {
			if _, err := fmt.Fprintf(w, "  %-10s %5.1f/%-5.1f %-8s (%.1f, %.1f)\n",
				u.Name, u.HP, u.MaxHP, u.State, u.X, u.Y); err != nil {
				return err
			}
		}
	}
	return nil
}
