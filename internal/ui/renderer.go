package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/fieldsim/internal/entity"
	"github.com/samdwyer/fieldsim/internal/field"
	"github.com/samdwyer/fieldsim/internal/gamedata"
	"github.com/samdwyer/fieldsim/internal/world"
)

// Layer is a draw pass. Later layers paint over earlier ones.
type Layer int

const (
	LayerTiles Layer = iota
	LayerSight
	LayerEnemies
	LayerPlayer
)

// DrawOrder lists the layers back to front.
var DrawOrder = [...]Layer{LayerTiles, LayerSight, LayerEnemies, LayerPlayer}

// cellWidth is the number of terminal columns per grid cell, which keeps
// the field roughly square.
const cellWidth = 2

// Renderer handles drawing the field to the screen.
type Renderer struct {
	screen     *Screen
	palette    gamedata.Palette
	footer     string
	sightLines bool
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// SetPalette replaces the colors used for subsequent frames.
func (r *Renderer) SetPalette(p gamedata.Palette) {
	r.palette = p
}

// SetFooter sets a line shown beneath the status lines.
func (r *Renderer) SetFooter(msg string) {
	r.footer = msg
}

// SetSightLines turns the enemy-to-player sight walk overlay on or off.
func (r *Renderer) SetSightLines(on bool) {
	r.sightLines = on
}

// SightLines reports whether the sight overlay is drawn.
func (r *Renderer) SightLines() bool {
	return r.sightLines
}

// Render draws the field and its status lines to the screen.
func (r *Renderer) Render(f *field.Field) {
	r.screen.Clear()

	for _, layer := range DrawOrder {
		switch layer {
		case LayerTiles:
			r.drawTiles(f)
		case LayerSight:
			if r.sightLines {
				r.drawSight(f)
			}
		case LayerEnemies:
			r.drawEnemies(f)
		case LayerPlayer:
			r.drawPlayer(f.Player())
		}
	}

	y := world.Height + 1
	for _, line := range StatusLines(f) {
		r.RenderMessage(line, y)
		y++
	}
	if r.footer != "" {
		r.RenderMessage(r.footer, y+1)
	}

	r.screen.Show()
}

func (r *Renderer) drawTiles(f *field.Field) {
	for y := 0; y < world.Height; y++ {
		for x := 0; x < world.Width; x++ {
			tile := f.TileAt(x, y)
			style := tcell.StyleDefault.
				Background(r.palette.Background).
				Foreground(tcell.ColorSilver)
			if tile.IsObstacle() {
				style = style.Background(r.palette.Tile).Foreground(tcell.ColorDarkGreen)
			}
			r.fillCell(x, y, tile.Rune(), style)
		}
	}
}

// drawSight marks the cells each enemy's sight walk toward the player
// enters, green when clear and red when blocked.
func (r *Renderer) drawSight(f *field.Field) {
	grid := f.Grid()
	px, py := f.Player().Cell()
	for _, e := range f.Enemies() {
		ex, ey := e.Cell()
		path, visible := world.Walk(&grid, ex, ey, px, py)
		color := tcell.ColorGreen
		if !visible {
			color = tcell.ColorRed
		}
		for _, p := range path {
			if !world.InBounds(p.X, p.Y) {
				break
			}
			bg := r.palette.Background
			if grid.TileAt(p.X, p.Y).IsObstacle() {
				bg = r.palette.Tile
			}
			r.fillCell(p.X, p.Y, '*', tcell.StyleDefault.Background(bg).Foreground(color))
		}
	}
}

func (r *Renderer) drawEnemies(f *field.Field) {
	for _, e := range f.Enemies() {
		x, y := e.Cell()
		if !world.InBounds(x, y) {
			continue
		}
		style := tcell.StyleDefault.
			Background(r.StateColor(e.State)).
			Foreground(tcell.ColorBlack)
		r.fillCell(x, y, StateGlyph(e.State), style)
	}
}

func (r *Renderer) drawPlayer(p entity.Player) {
	x, y := p.Cell()
	if !world.InBounds(x, y) {
		return
	}
	style := tcell.StyleDefault.
		Background(r.palette.Player).
		Foreground(tcell.ColorWhite).
		Bold(true)
	r.fillCell(x, y, '@', style)
}

// fillCell paints one grid cell, glyph in the first column.
func (r *Renderer) fillCell(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x*cellWidth, y, glyph, style)
	for dx := 1; dx < cellWidth; dx++ {
		r.screen.SetContent(x*cellWidth+dx, y, ' ', style)
	}
}

// StateColor returns the palette color for an enemy state.
func (r *Renderer) StateColor(s entity.State) tcell.Color {
	switch s {
	case entity.StateStop:
		return r.palette.Stop
	case entity.StateWander:
		return r.palette.Wander
	case entity.StateChase:
		return r.palette.Chase
	case entity.StateSearch:
		return r.palette.Search
	default:
		return tcell.ColorPurple
	}
}

// StateGlyph returns the character drawn on an enemy in the given state.
func StateGlyph(s entity.State) rune {
	switch s {
	case entity.StateStop:
		return 's'
	case entity.StateWander:
		return 'w'
	case entity.StateChase:
		return 'C'
	case entity.StateSearch:
		return '?'
	default:
		return 'e'
	}
}

// StatusLines summarizes the field for the lines under the grid.
func StatusLines(f *field.Field) []string {
	counts := f.Counts()
	parts := make([]string, 0, len(entity.States))
	for _, s := range entity.States {
		parts = append(parts, fmt.Sprintf("%c %s %d", StateGlyph(s), s, counts[s]))
	}

	stats := f.Scheduler().Stats()
	return []string{
		strings.Join(parts, "  "),
		fmt.Sprintf("visits %d  decisions %d  laps %d", stats.Visits, stats.Decisions, stats.Laps),
		fmt.Sprintf("seed %d", f.Seed()),
	}
}

// RenderMessage displays a message on row y, cut to the screen width.
func (r *Renderer) RenderMessage(msg string, y int) {
	width, _ := r.screen.Size()
	msg = runewidth.Truncate(msg, width, "…")

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
}
