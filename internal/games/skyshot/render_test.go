package skyshot

import (
	"strings"
	"testing"

	"github.com/vovakirdan/skyshot/internal/core"
)

// recordingCanvas counts draw calls.
type recordingCanvas struct {
	rects   []core.Box
	circles []core.Vec2
}

func (r *recordingCanvas) FillRect(b core.Box, _ Paint) {
	r.rects = append(r.rects, b)
}

func (r *recordingCanvas) FillCircle(center core.Vec2, _ float64, _ Paint) {
	r.circles = append(r.circles, center)
}

func TestCellTransformToViewport(t *testing.T) {
	tr := newCellTransform(testLevel(), 80, 24)

	tests := []struct {
		cx, cy int
		x, y   float64
	}{
		{0, 1, 4, 480.0 / 23 / 2},
		{40, 12, 324, 240},
		{79, 23, 636, 480 - 480.0/23/2},
	}

	for _, tc := range tests {
		p := tr.ToViewport(tc.cx, tc.cy)
		if !approx(p.X, tc.x) || !approx(p.Y, tc.y) {
			t.Errorf("ToViewport(%d, %d) = %+v, expected (%f, %f)", tc.cx, tc.cy, p, tc.x, tc.y)
		}
	}
}

func TestCellTransformTinyScreen(t *testing.T) {
	tr := newCellTransform(testLevel(), 0, 1)
	if tr.top != 0 || tr.rows != 1 || tr.cols != 1 {
		t.Errorf("tiny transform = %+v, expected top 0 rows 1 cols 1", tr)
	}
}

func TestDrawScene(t *testing.T) {
	g := newTestGame(42)
	g.Shoot(100, 100)

	rc := &recordingCanvas{}
	DrawScene(rc, g.World())

	// Ground, 10 obstacles, one divider at x=640, character.
	if len(rc.rects) != 13 {
		t.Errorf("rects = %d, expected 13", len(rc.rects))
	}
	if len(rc.circles) != 1 {
		t.Errorf("circles = %d, expected 1", len(rc.circles))
	}

	// At the end the goal is visible and the second divider sits on the left edge.
	w := g.World()
	w.camera = 1280
	rc = &recordingCanvas{}
	DrawScene(rc, w)
	if len(rc.rects) != 14 {
		t.Errorf("rects at the end = %d, expected 14", len(rc.rects))
	}
}

func TestRenderScene(t *testing.T) {
	g := newTestGame(42)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Progress:") {
		t.Errorf("HUD row = %q, expected progress", screen.Row(0))
	}

	// Character at (50, 50) covers cells 6..9, rows 3..4.
	cell := screen.GetCell(7, 3)
	if cell.Rune != CharacterPaint.Glyph || cell.Color != CharacterPaint.Color {
		t.Errorf("character cell = %+v, expected %+v", cell, CharacterPaint)
	}

	ground := screen.GetCell(0, 23)
	if ground.Rune != GroundPaint.Glyph {
		t.Errorf("ground cell = %q, expected %q", ground.Rune, GroundPaint.Glyph)
	}
}

func TestRenderMessages(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(g *Game)
		expected string
	}{
		{"game over", func(g *Game) { g.World().Character().Pos.Y = 1000; g.Update() }, "GAME OVER"},
		{"clear", func(g *Game) {
			g.World().obstacles = nil
			g.World().Character().Pos.X = 1869
			g.Update()
		}, "CLEAR!"},
		{"paused", func(g *Game) { g.SetPaused(true) }, "PAUSED"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(42)
			tc.setup(g)

			screen := core.NewScreen(80, 24)
			g.Render(screen)

			if !strings.Contains(screen.String(), tc.expected) {
				t.Errorf("screen should contain %q", tc.expected)
			}
			if !strings.Contains(screen.String(), "Press") {
				t.Error("screen should contain a hint")
			}
		})
	}
}

func TestScreenCanvasSmallCircle(t *testing.T) {
	screen := core.NewScreen(80, 24)
	c := screenCanvas{dst: screen, t: newCellTransform(testLevel(), 80, 24)}

	// Radius 1 does not reach any cell centre.
	c.FillCircle(core.Vec2{X: 100, Y: 100}, 1, ProjectilePaint)

	// x 100 / 8 = cell 12; y 100 / 20.87 = row 4, screen row 5.
	if screen.Get(12, 5) != ProjectilePaint.Glyph {
		t.Errorf("centre cell should be painted:\n%s", screen.String())
	}
}

func TestScreenCanvasClipsHUD(t *testing.T) {
	screen := core.NewScreen(80, 24)
	c := screenCanvas{dst: screen, t: newCellTransform(testLevel(), 80, 24)}

	c.FillRect(core.NewBox(0, -100, 640, 120), CharacterPaint)

	if screen.Get(0, 0) != ' ' {
		t.Error("scene drawing should not touch the HUD row")
	}
	if screen.Get(0, 1) != CharacterPaint.Glyph {
		t.Error("first viewport row should be painted")
	}
}
