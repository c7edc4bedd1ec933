package skyshot

import (
	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

// Level holds the fixed geometry of an episode in world pixels.
// World x spans the whole level; world y is the same as viewport y.
type Level struct {
	ViewportW float64
	ViewportH float64
	Width     float64 // Full level width
	Screens   int
	Ground    core.Box // Ground strip at the bottom of the viewport
	Goal      core.Box // Goal marker near the right edge
	ClearX    float64  // The episode is cleared once the character passes this x
	TriggerH  float64  // Height of the trigger band, measured up from the viewport bottom
}

// NewLevel derives the level geometry from the configuration.
func NewLevel(cfg config.SkyshotConfig) Level {
	vw := float64(cfg.Viewport.Width)
	vh := float64(cfg.Viewport.Height)
	width := float64(cfg.LevelWidth())
	ground := float64(cfg.Level.GroundHeight)
	goal := cfg.Level.Goal

	return Level{
		ViewportW: vw,
		ViewportH: vh,
		Width:     width,
		Screens:   cfg.Level.Screens,
		Ground:    core.NewBox(0, vh-ground, vw, ground),
		Goal:      core.NewBox(width-float64(goal.OffsetX), vh-float64(goal.Height), float64(goal.Width), float64(goal.Height)),
		ClearX:    width - cfg.Level.ClearMargin,
		TriggerH:  vh + float64(cfg.Level.TriggerBandExtra),
	}
}

// CameraFor returns the camera offset that centres x, clamped to the level.
func (l Level) CameraFor(x float64) float64 {
	return core.ClampF(x-l.ViewportW/2, 0, l.Width-l.ViewportW)
}

// InTriggerBand reports whether a pointer at viewport y may fire.
func (l Level) InTriggerBand(y float64) bool {
	return y >= l.ViewportH-l.TriggerH
}

// OutOfBounds reports whether p has left [0, Width] x [0, ViewportH].
func (l Level) OutOfBounds(p core.Vec2) bool {
	return p.X < 0 || p.X > l.Width || p.Y < 0 || p.Y > l.ViewportH
}
