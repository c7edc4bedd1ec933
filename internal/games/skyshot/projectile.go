package skyshot

import (
	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

// Projectile is a round shot fired from the bottom of the screen.
type Projectile struct {
	Pos    core.Vec2 // Centre
	Vel    core.Vec2
	Radius float64

	spent bool // Marked for removal at the end of the tick
}

// NewProjectile aims a projectile from start toward target at the configured speed.
// Coincident points produce a projectile that never moves.
func NewProjectile(start, target core.Vec2, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		Pos:    start,
		Vel:    core.Direction(start, target).Scale(cfg.Speed),
		Radius: cfg.Radius,
	}
}

// Update moves the projectile by its velocity.
func (p *Projectile) Update() {
	p.Pos = p.Pos.Add(p.Vel)
}

// Spent reports whether the projectile has been marked for removal.
func (p *Projectile) Spent() bool {
	return p.spent
}

// Bounds returns the box enclosing the projectile's circle.
func (p *Projectile) Bounds() core.Box {
	return core.NewBox(p.Pos.X-p.Radius, p.Pos.Y-p.Radius, 2*p.Radius, 2*p.Radius)
}

// Draw paints the projectile relative to the camera.
func (p *Projectile) Draw(dst Canvas, cameraX float64) {
	dst.FillCircle(core.Vec2{X: p.Pos.X - cameraX, Y: p.Pos.Y}, p.Radius, ProjectilePaint)
}
