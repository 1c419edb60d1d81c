package game

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/simplerpg/internal/config"
	"github.com/samdwyer/simplerpg/internal/input"
	"github.com/samdwyer/simplerpg/internal/telemetry"
	"github.com/samdwyer/simplerpg/internal/ui"
)

// errQuit ends the loop goroutine and cancels the event reader with it.
var errQuit = errors.New("quit")

// Game is the interactive terminal session.
type Game struct {
	cfg        config.Config
	screen     *ui.Screen
	renderer   *ui.Renderer
	flashes    *ui.FlashPool
	keys       ui.KeyMapper
	commands   *input.Queue
	controller *Controller
}

// New creates a new game instance for cfg.
func New(cfg config.Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return newGame(cfg, screen), nil
}

func newGame(cfg config.Config, screen *ui.Screen) *Game {
	return &Game{
		cfg:      cfg,
		screen:   screen,
		flashes:  ui.NewFlashPool(),
		commands: input.NewQueue(),
	}
}

// Run sets up the session and drives it in real time until the player quits
// or ctx is cancelled. Terminal events are read on their own goroutine and
// handed to the loop, which is the only goroutine touching the controller.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	c, err := NewSession(g.cfg, g.flashes,
		WithInput(g.commands),
		WithTracer(ctx, tracer),
	)
	if err != nil {
		initSpan.RecordError(err)
		initSpan.End()
		g.screen.Close()
		return err
	}
	g.controller = c
	g.renderer = ui.NewRenderer(g.screen, c, g.flashes)
	c.RegisterObserver(g.renderer)

	initSpan.SetAttributes(
		attribute.Int("arena.width", c.Arena().Width),
		attribute.Int("arena.height", c.Arena().Height),
		attribute.Int("party.size", c.PlayerParty().Len()),
		attribute.Int("enemies.size", c.EnemyParty().Len()),
	)
	initSpan.End()
	slog.Info("session started",
		"party", c.PlayerParty().Len(),
		"enemies", c.EnemyParty().Len())

	events := make(chan tcell.Event, 16)
	grp, ctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		return g.pollEvents(ctx, events)
	})
	grp.Go(func() error {
		defer g.screen.Close()
		return g.loop(ctx, events)
	})
	err = grp.Wait()
	if errors.Is(err, errQuit) {
		err = nil
	}
	slog.Info("session ended", "mode", c.Mode())
	return err
}

// pollEvents forwards terminal events until the screen is closed.
func (g *Game) pollEvents(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// loop ticks the controller at the configured rate and applies events
// between ticks.
func (g *Game) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.TickRate))
	defer ticker.Stop()

	g.renderer.Render()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if g.handleEvent(ev) {
				return errQuit
			}
		case now := <-ticker.C:
			g.controller.Update(now.Sub(last).Seconds())
			last = now
			g.renderer.Render()
		}
	}
}

// handleEvent applies one terminal event. Reports true on quit.
func (g *Game) handleEvent(ev tcell.Event) bool {
	if _, ok := ev.(*tcell.EventResize); ok {
		g.screen.Sync()
		return false
	}

	c := g.controller
	intent := g.keys.Map(ev, ui.Focus{
		Enemy: handle(c.SelectedEnemy()),
		Ally:  handle(c.PlayerParty().First()),
	})
	switch intent.Kind {
	case ui.IntentQuit:
		return true
	case ui.IntentNextUnit:
		c.SelectNextUnit()
	case ui.IntentNextEnemy:
		c.SelectNextEnemy()
	case ui.IntentCommand:
		g.commands.Push(intent.Command)
	}
	return false
}
