package skyshot

import (
	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

// Character is the auto-running player avatar.
type Character struct {
	Pos  core.Vec2 // Top-left corner
	Vel  core.Vec2
	W, H float64

	phys config.CharacterConfig
}

// NewCharacter places a character at the configured origin running right.
func NewCharacter(cfg config.CharacterConfig) *Character {
	return &Character{
		Pos:  core.Vec2{X: cfg.StartX, Y: cfg.StartY},
		Vel:  core.Vec2{X: cfg.ForwardSpeed, Y: 0},
		W:    cfg.Width,
		H:    cfg.Height,
		phys: cfg,
	}
}

// Update applies one tick of gravity and moves by the velocity.
// There is no terminal velocity.
func (c *Character) Update() {
	c.Vel.Y += c.phys.Gravity
	c.Pos = c.Pos.Add(c.Vel)
}

// Advance runs Update and classifies the result against the level.
// The checks run in a fixed order: below the viewport, above it, past the goal.
func (c *Character) Advance(l Level) State {
	c.Update()

	switch {
	case c.Pos.Y > l.ViewportH:
		return StateGameOver
	case c.Pos.Y < 0:
		return StateGameOver
	case c.Pos.X > l.ClearX:
		return StateClear
	default:
		return StatePlaying
	}
}

// Jump launches the character upward and restores forward speed,
// undoing any knockback.
func (c *Character) Jump() {
	c.Vel.Y = c.phys.JumpPower
	c.Vel.X = c.phys.ForwardSpeed
}

// Knockback pushes the character back and slightly up.
// It sets absolute values, so repeated calls in a tick do not stack.
func (c *Character) Knockback() {
	c.Vel.X = c.phys.KnockbackVX
	c.Vel.Y = c.phys.KnockbackVY
}

// Bounds returns the character's bounding box in world coordinates.
func (c *Character) Bounds() core.Box {
	return core.NewBox(c.Pos.X, c.Pos.Y, c.W, c.H)
}

// Center returns the centre of the bounding box.
func (c *Character) Center() core.Vec2 {
	return core.Vec2{X: c.Pos.X + c.W/2, Y: c.Pos.Y + c.H/2}
}

// Draw paints the character relative to the camera.
func (c *Character) Draw(dst Canvas, cameraX float64) {
	dst.FillRect(toView(c.Bounds(), cameraX), CharacterPaint)
}
