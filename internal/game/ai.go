package game

import (
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
)

// runAI is the simple enemy pass: every enemy targets the first player in
// status order and fires its first skill.
func (c *Controller) runAI() {
	_, span := c.tracer.Start(c.ctx, "controller.ai")
	defer span.End()

	victim := c.players.First()
	if victim == nil {
		return
	}
	span.SetAttributes(
		attribute.String("ai.target", victim.GetName()),
		attribute.Int("ai.enemies", c.enemies.Len()),
	)

	for _, e := range c.enemies.Units() {
		e.SetTarget(victim)
		e.ActivateSkill(0)
	}
	slog.Debug("ai pass", "target", victim.GetName(), "enemies", c.enemies.Len())
}
