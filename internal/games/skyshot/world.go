package skyshot

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

// State is the episode status.
type State int

const (
	StatePlaying  State = iota // Character is running
	StateGameOver              // Character left the viewport vertically
	StateClear                 // Character reached the goal
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Terminal reports whether the episode has ended.
func (s State) Terminal() bool {
	return s != StatePlaying
}

// World is one episode of the game. It owns every entity and is never
// reset in place: restarting builds a new World.
type World struct {
	level       Level
	cfg         config.SkyshotConfig
	character   *Character
	obstacles   []Obstacle
	projectiles []*Projectile
	state       State
	camera      float64
	tick        int
	hits        int // Projectiles that reached the character
}

// NewWorld builds a fresh episode with a random obstacle layout drawn from rng.
func NewWorld(cfg config.SkyshotConfig, rng *rand.Rand) *World {
	return &World{
		level:       NewLevel(cfg),
		cfg:         cfg,
		character:   NewCharacter(cfg.Character),
		obstacles:   GenerateObstacles(rng, cfg),
		projectiles: make([]*Projectile, 0, 8),
		state:       StatePlaying,
	}
}

// Update advances the episode by one tick. Terminal episodes do not change.
func (w *World) Update() {
	if w.state.Terminal() {
		return
	}
	w.tick++

	if result := w.character.Advance(w.level); result != StatePlaying {
		w.state = result
		return
	}

	for _, o := range w.obstacles {
		if Overlaps(o, w.character) {
			w.character.Knockback()
		}
	}

	w.updateProjectiles()

	w.camera = w.level.CameraFor(w.character.Pos.X)
}

// updateProjectiles moves every projectile, then drops the ones that left the
// level or hit the character. Removal happens after the scan.
func (w *World) updateProjectiles() {
	for _, p := range w.projectiles {
		p.Update()

		if w.level.OutOfBounds(p.Pos) {
			p.spent = true
			continue
		}

		if ProjectileHitsCharacter(p, w.character) {
			w.character.Jump()
			w.hits++
			p.spent = true
		}
	}

	w.projectiles = slices.DeleteFunc(w.projectiles, (*Projectile).Spent)
}

// Shoot fires a projectile at the column under viewport point (targetX, targetY).
// The shot rises from the bottom edge of the viewport. It returns false and
// does nothing when the episode is over or the point is outside the trigger band.
func (w *World) Shoot(targetX, targetY float64) bool {
	if w.state != StatePlaying || !w.level.InTriggerBand(targetY) {
		return false
	}

	x := targetX + w.camera
	start := core.Vec2{X: x, Y: w.level.ViewportH}
	target := core.Vec2{X: x, Y: 0}
	w.projectiles = append(w.projectiles, NewProjectile(start, target, w.cfg.Projectile))
	return true
}

// Level returns the fixed level geometry.
func (w *World) Level() Level { return w.level }

// Character returns the player character.
func (w *World) Character() *Character { return w.character }

// Obstacles returns the static obstacles.
func (w *World) Obstacles() []Obstacle { return w.obstacles }

// Projectiles returns the live projectiles.
func (w *World) Projectiles() []*Projectile { return w.projectiles }

// State returns the episode status.
func (w *World) State() State { return w.state }

// Camera returns the horizontal camera offset.
func (w *World) Camera() float64 { return w.camera }

// Tick returns the number of playing ticks simulated.
func (w *World) Tick() int { return w.tick }

// Hits returns how many projectiles have reached the character.
func (w *World) Hits() int { return w.hits }

// Progress returns how far the character is toward the goal, in percent.
func (w *World) Progress() int {
	if w.state == StateClear {
		return 100
	}
	if w.level.ClearX <= 0 {
		return 0
	}
	return int(100 * core.ClampF(w.character.Pos.X/w.level.ClearX, 0, 1))
}

// Entities returns everything in draw order: obstacles, character, projectiles.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.obstacles)+1+len(w.projectiles))
	for _, o := range w.obstacles {
		out = append(out, o)
	}
	out = append(out, w.character)
	for _, p := range w.projectiles {
		out = append(out, p)
	}
	return out
}
