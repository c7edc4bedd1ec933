// Package gui runs the game in a native window with Ebiten.
// Pointer coordinates are viewport pixels, so clicks map to shots directly.
package gui

import (
	"fmt"
	"image"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/games/skyshot"
)

// Options configure the window.
type Options struct {
	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Scale multiplies the window size; the logical size stays the viewport.
	Scale int
}

// frameInput is the input gathered for one tick.
type frameInput struct {
	clicks  []image.Point
	restart bool
	pause   bool
	quit    bool
}

// Window implements ebiten.Game on top of a skyshot.Game.
type Window struct {
	game    *skyshot.Game
	logger  *log.Logger
	face    ebtext.Face
	pauseUI *ebitenui.UI
	pending frameInput // Set by pause menu buttons, consumed next tick
	prev    skyshot.State
}

var _ ebiten.Game = (*Window)(nil)

// NewWindow wraps a game that has already been Reset.
func NewWindow(game *skyshot.Game, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		game:   game,
		logger: logger,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		prev:   game.World().State(),
	}
}

// Update polls input and advances the game by one tick.
func (w *Window) Update() error {
	in := w.pending
	w.pending = frameInput{}
	pollInput(&in)

	if w.game.Paused() {
		if w.pauseUI == nil {
			l := w.game.World().Level()
			w.pauseUI = newPauseUI(w, w.face, int(l.ViewportW), int(l.ViewportH))
		}
		w.pauseUI.Update()
	}

	return w.step(in)
}

// pollInput reads this tick's key and mouse presses.
func pollInput(in *frameInput) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.quit = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		in.restart = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.pause = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.clicks = append(in.clicks, image.Pt(x, y))
	}
}

// step applies one tick of input: quit, restart, pause, shots, then the update.
func (w *Window) step(in frameInput) error {
	if in.quit {
		w.logger.Info("window closed", "episode", w.game.Episode())
		return ebiten.Termination
	}

	if in.restart {
		w.game.Restart()
		w.prev = w.game.World().State()
		w.logger.Info("episode restarted", "episode", w.game.Episode())
	}

	if in.pause {
		w.game.SetPaused(!w.game.Paused())
		w.logger.Debug("pause toggled", "paused", w.game.Paused())
	}

	for _, c := range in.clicks {
		w.game.Shoot(float64(c.X), float64(c.Y))
	}

	w.game.Update()
	w.logTransition()
	return nil
}

// logTransition records the end of an episode once.
func (w *Window) logTransition() {
	world := w.game.World()
	cur := world.State()
	if cur == w.prev {
		return
	}
	w.prev = cur

	c := world.Character()
	w.logger.Info("episode ended",
		"state", cur,
		"tick", world.Tick(),
		"x", fmt.Sprintf("%.1f", c.Pos.X),
		"y", fmt.Sprintf("%.1f", c.Pos.Y),
		"hits", world.Hits(),
	)
}

// Draw renders the scene, the HUD and any status message.
func (w *Window) Draw(screen *ebiten.Image) {
	world := w.game.World()
	l := world.Level()

	screen.Fill(colorBackground)
	vector.FillRect(screen, 0, float32(l.ViewportH-l.TriggerH), float32(l.ViewportW), float32(l.TriggerH), colorTriggerBand, false)

	skyshot.DrawScene(imageCanvas{dst: screen}, world)

	w.drawText(screen, fmt.Sprintf("Progress %d%%  Hits %d  Episode %d", world.Progress(), world.Hits(), w.game.Episode()), 8, 6)

	switch world.State() {
	case skyshot.StateGameOver:
		w.drawCentered(screen, "GAME OVER - Press R to Restart", l)
	case skyshot.StateClear:
		w.drawCentered(screen, "CLEAR! - Press R to Restart", l)
	}

	if w.game.Paused() && w.pauseUI != nil {
		w.pauseUI.Draw(screen)
	}
}

func (w *Window) drawText(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorText)
	ebtext.Draw(screen, s, w.face, op)
}

func (w *Window) drawCentered(screen *ebiten.Image, s string, l skyshot.Level) {
	x := (l.ViewportW - ebtext.Advance(s, w.face)) / 2
	w.drawText(screen, s, x, l.ViewportH/2)
}

// Layout fixes the logical screen to the viewport; Ebiten scales the window.
func (w *Window) Layout(_, _ int) (int, int) {
	l := w.game.World().Level()
	return int(l.ViewportW), int(l.ViewportH)
}

// Run resets the game and blocks until the window is closed.
func Run(game *skyshot.Game, runtime core.RuntimeConfig, opts Options) error {
	game.Reset(runtime)
	l := game.World().Level()

	scale := core.Max(opts.Scale, 1)
	ebiten.SetWindowSize(int(l.ViewportW)*scale, int(l.ViewportH)*scale)
	ebiten.SetWindowTitle(game.Title())
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	w := NewWindow(game, opts.Logger)
	w.logger.Info("episode started", "seed", runtime.Seed, "scale", scale)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: run: %w", err)
	}
	return nil
}
