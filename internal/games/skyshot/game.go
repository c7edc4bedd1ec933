// Package skyshot implements a side-scrolling game where the player keeps an
// auto-running character airborne by shooting it from below.
// Projectile hits make the character jump, obstacles knock it back, and the
// episode ends when it leaves the screen vertically or reaches the goal.
package skyshot

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a World to the platform: it owns the RNG, the configuration
// and the pause flag, and replaces the World on restart.
type Game struct {
	world   *World
	cfg     config.SkyshotConfig
	pinned  bool                  // cfg was supplied by the caller, skip file loading
	staged  *config.SkyshotConfig // Applied on the next restart
	rng     *rand.Rand
	runtime core.RuntimeConfig
	paused  bool
	episode int
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.SkyshotConfig) *Game {
	return &Game{cfg: cfg, pinned: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "skyshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Skyshot"
}

// Reset initializes the game for a new session and starts the first episode.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.pinned {
		cfg, err := config.LoadSkyshot(configPath)
		if err != nil {
			cfg = config.DefaultSkyshotConfig()
		}
		g.cfg = cfg
	}
	g.staged = nil

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.episode = 0
	g.newEpisode()
}

// Restart discards the current episode and starts a new one with a fresh
// obstacle layout. It is accepted in any state.
func (g *Game) Restart() {
	if g.staged != nil {
		g.cfg = *g.staged
		g.staged = nil
	}
	g.newEpisode()
}

func (g *Game) newEpisode() {
	g.world = NewWorld(g.cfg, g.rng)
	g.paused = false
	g.episode++
}

// Resize updates the terminal size used to map clicks to the viewport.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
}

// ApplyConfig stages cfg for the next restart. The running episode keeps
// the geometry it was built with.
func (g *Game) ApplyConfig(cfg config.SkyshotConfig) {
	g.staged = &cfg
}

// Config returns the configuration of the running episode.
func (g *Game) Config() config.SkyshotConfig {
	return g.cfg
}

// Shoot fires at viewport point (x, y). See World.Shoot.
func (g *Game) Shoot(x, y float64) bool {
	if g.paused {
		return false
	}
	return g.world.Shoot(x, y)
}

// Update advances the running episode by one tick unless paused.
func (g *Game) Update() {
	if g.paused {
		return
	}
	g.world.Update()
}

// SetPaused pauses or resumes a running episode. Finished episodes cannot be paused.
func (g *Game) SetPaused(paused bool) {
	if g.world.State().Terminal() {
		g.paused = false
		return
	}
	g.paused = paused
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// World returns the running episode.
func (g *Game) World() *World {
	return g.world
}

// Episode returns the 1-based number of the running episode.
func (g *Game) Episode() int {
	return g.episode
}

// Step applies one frame of input and advances the simulation by one tick.
// Restart is handled first, then pause, then shots in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.Restart()
	}

	if in.Has(core.ActionPause) {
		g.SetPaused(!g.paused)
	}

	if !g.paused {
		view := newCellTransform(g.world.Level(), g.runtime.ScreenW, g.runtime.ScreenH)
		for _, c := range in.Clicks {
			p := view.ToViewport(c.X, c.Y)
			g.world.Shoot(p.X, p.Y)
		}

		if in.Has(core.ActionShoot) {
			g.world.Shoot(g.leadColumn(), g.world.Level().ViewportH)
		}
	}

	g.Update()

	return core.StepResult{State: g.State()}
}

// leadColumn returns the viewport x where a shot from the bottom edge meets
// the character, assuming it keeps its current horizontal speed.
func (g *Game) leadColumn() float64 {
	w := g.world
	c := w.Character()
	center := c.Center()

	ticks := 0.0
	if speed := g.cfg.Projectile.Speed; speed > 0 {
		ticks = math.Max(0, (w.Level().ViewportH-center.Y)/speed)
	}
	return center.X + c.Vel.X*ticks - w.Camera()
}

// State returns the current game state for the platform.
func (g *Game) State() core.GameState {
	s := g.world.State()
	return core.GameState{
		Score:    g.world.Progress(),
		GameOver: s.Terminal(),
		Won:      s == StateClear,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("skyshot", func() registry.Game {
		return New()
	})
}
