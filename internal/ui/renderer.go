package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/simplerpg/internal/entity"
	"github.com/samdwyer/simplerpg/internal/world"
)

// View is the read side of the game controller the renderer draws from.
type View interface {
	PlayerParty() *entity.Roster
	EnemyParty() *entity.Roster
	SelectedUnit() *entity.Unit
	SelectedEnemy() *entity.Unit
	Arena() *world.Arena
	GameOver() bool
}

// Renderer handles drawing the game to the screen. The roster panel is
// rebuilt only when the controller reports an update.
type Renderer struct {
	screen  *Screen
	view    View
	flashes *FlashPool
	panel   []string
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, view View, flashes *FlashPool) *Renderer {
	r := &Renderer{screen: screen, view: view, flashes: flashes}
	r.ControllerUpdated()
	return r
}

// ControllerUpdated refreshes the roster panel.
func (r *Renderer) ControllerUpdated() {
	r.panel = StatusLines(r.view)
}

// Render draws the arena, units, flashes and the roster panel.
func (r *Renderer) Render() {
	r.screen.Clear()
	arena := r.view.Arena()

	for y := 0; y < arena.Height; y++ {
		for x := 0; x < arena.Width; x++ {
			tile := arena.GetTile(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.getTileStyle(tile))
		}
	}

	selected := r.view.SelectedUnit()
	enemy := r.view.SelectedEnemy()
	for _, roster := range []*entity.Roster{r.view.PlayerParty(), r.view.EnemyParty()} {
		for _, u := range roster.Units() {
			style := tcell.StyleDefault.Foreground(u.Color)
			if u == selected || u == enemy {
				style = style.Reverse(true).Bold(true)
			}
			x, y := arena.Cell(u.Position())
			r.screen.SetContent(x, y, u.Symbol, style)
		}
	}

	if r.flashes != nil {
		for _, f := range r.flashes.Active() {
			x, y := arena.Cell(f.Position())
			r.screen.SetContent(x, y, f.Glyph, f.Style)
		}
	}

	panelX := arena.Width + 2
	for i, line := range r.panel {
		r.RenderMessage(line, panelX, i)
	}

	help := "tab:unit e:enemy f:follow a:attack s:support click:move q:quit"
	if r.view.GameOver() {
		help = "GAME OVER - press q to quit"
	}
	r.RenderMessage(help, 0, arena.Height+1)

	r.screen.Show()
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message starting at (x, y).
func (r *Renderer) RenderMessage(msg string, x, y int) {
	r.screen.DrawText(x, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// StatusLines formats both rosters for the side panel, party in status order.
// The selected unit and enemy are marked with '>'.
func StatusLines(v View) []string {
	lines := []string{"Party"}
	lines = appendRoster(lines, v.PlayerParty(), v.SelectedUnit())
	lines = append(lines, "", "Enemies")
	lines = appendRoster(lines, v.EnemyParty(), v.SelectedEnemy())
	return lines
}

func appendRoster(lines []string, r *entity.Roster, selected *entity.Unit) []string {
	for _, u := range r.Units() {
		mark := ' '
		if u == selected {
			mark = '>'
		}
		a := u.Attributes()
		lines = append(lines, fmt.Sprintf("%c %-8s %3.0f/%-3.0f %s",
			mark, u.GetName(), a.HP(), a.MaxHP, u.CurrentState().Name()))
	}
	return lines
}
