package skyshot

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyshot/internal/core"
)

// DrawScene draws the world into any canvas: ground, obstacles, goal, screen
// dividers, character and projectiles, in that order.
func DrawScene(dst Canvas, w *World) {
	l := w.Level()
	cam := w.Camera()

	dst.FillRect(l.Ground, GroundPaint)

	for _, o := range w.Obstacles() {
		o.Draw(dst, cam)
	}

	if gx := l.Goal.X - cam; gx >= 0 && gx <= l.ViewportW {
		dst.FillRect(toView(l.Goal, cam), GoalPaint)
	}

	for i := 1; i < l.Screens; i++ {
		x := float64(i)*l.ViewportW - cam
		if x >= 0 && x <= l.ViewportW {
			dst.FillRect(core.NewBox(x-1, 0, 2, l.ViewportH), DividerPaint)
		}
	}

	w.Character().Draw(dst, cam)

	for _, p := range w.Projectiles() {
		p.Draw(dst, cam)
	}
}

// cellTransform maps viewport pixels onto the terminal grid.
// Row 0 is reserved for the HUD; the viewport fills the rows below it.
type cellTransform struct {
	sx, sy float64 // Pixels per cell
	top    int     // First screen row of the viewport
	cols   int
	rows   int
}

func newCellTransform(l Level, screenW, screenH int) cellTransform {
	top := 1
	rows := screenH - top
	if rows < 1 {
		top = 0
		rows = core.Max(screenH, 1)
	}
	cols := core.Max(screenW, 1)

	return cellTransform{
		sx:   l.ViewportW / float64(cols),
		sy:   l.ViewportH / float64(rows),
		top:  top,
		cols: cols,
		rows: rows,
	}
}

// ToViewport returns the viewport point at the centre of screen cell (cx, cy).
func (t cellTransform) ToViewport(cx, cy int) core.Vec2 {
	return core.Vec2{
		X: (float64(cx) + 0.5) * t.sx,
		Y: (float64(cy-t.top) + 0.5) * t.sy,
	}
}

// span returns the half-open cell range covering [lo, hi) pixels, clamped to
// [0, limit). Non-empty pixel ranges always cover at least one cell.
func span(lo, hi, unit float64, limit int) (int, int) {
	first := int(math.Floor(lo / unit))
	last := int(math.Ceil(hi / unit))
	if last <= first {
		last = first + 1
	}
	return core.Max(first, 0), core.Min(last, limit)
}

// screenCanvas draws onto a core.Screen through a cellTransform.
type screenCanvas struct {
	dst *core.Screen
	t   cellTransform
}

func (c screenCanvas) FillRect(b core.Box, p Paint) {
	x0, x1 := span(b.X, b.Right(), c.t.sx, c.t.cols)
	y0, y1 := span(b.Y, b.Bottom(), c.t.sy, c.t.rows)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	c.dst.DrawRect(core.NewRect(x0, y0+c.t.top, x1-x0, y1-y0), p.Glyph, p.Color)
}

func (c screenCanvas) FillCircle(center core.Vec2, radius float64, p Paint) {
	x0, x1 := span(center.X-radius, center.X+radius, c.t.sx, c.t.cols)
	y0, y1 := span(center.Y-radius, center.Y+radius, c.t.sy, c.t.rows)

	painted := false
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			px := (float64(cx) + 0.5) * c.t.sx
			py := (float64(cy) + 0.5) * c.t.sy
			if math.Hypot(px-center.X, py-center.Y) <= radius {
				c.dst.SetColored(cx, cy+c.t.top, p.Glyph, p.Color)
				painted = true
			}
		}
	}

	// Cells can be larger than the circle; mark the centre cell instead.
	if !painted {
		cx := int(math.Floor(center.X / c.t.sx))
		cy := int(math.Floor(center.Y / c.t.sy))
		if cx >= 0 && cx < c.t.cols && cy >= 0 && cy < c.t.rows {
			c.dst.SetColored(cx, cy+c.t.top, p.Glyph, p.Color)
		}
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	t := newCellTransform(g.world.Level(), dst.Width(), dst.Height())
	DrawScene(screenCanvas{dst: dst, t: t}, g.world)

	// Draw HUD
	if t.top > 0 {
		hud := fmt.Sprintf(" Skyshot  Progress: %3d%%  Hits: %d ", g.world.Progress(), g.world.Hits())
		dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
		hint := " click/space: shoot  r: restart  q: quit "
		if x := dst.Width() - len(hint); x > len(hud) {
			dst.DrawTextColored(x, 0, hint, core.ColorGray)
		}
	}

	switch {
	case g.world.State() == StateGameOver:
		g.drawCenteredMessage(dst, "GAME OVER", "Press R to restart")
	case g.world.State() == StateClear:
		g.drawCenteredMessage(dst, "CLEAR!", "Press R to restart")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
