package skyshot

import "math"

// Snapshot contains the complete episode state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	State   string
	Camera  float64
	Hits    int
	Episode int

	CharX, CharY   float64
	CharVX, CharVY float64

	// Obstacle boxes (each obstacle is 4 floats: X, Y, W, H)
	ObstacleData []float64

	// Live projectiles (each projectile is 4 floats: X, Y, VX, VY)
	ProjectileCount int
	ProjectileData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	c := w.Character()

	obstacleData := make([]float64, 0, len(w.obstacles)*4)
	for _, o := range w.obstacles {
		obstacleData = append(obstacleData, o.Box.X, o.Box.Y, o.Box.W, o.Box.H)
	}

	projectileData := make([]float64, 0, len(w.projectiles)*4)
	for _, p := range w.projectiles {
		projectileData = append(projectileData, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}

	return Snapshot{
		Tick:    uint64(w.tick), //#nosec G115 -- tick count is always positive
		State:   w.state.String(),
		Camera:  w.camera,
		Hits:    w.hits,
		Episode: g.episode,

		CharX:  c.Pos.X,
		CharY:  c.Pos.Y,
		CharVX: c.Vel.X,
		CharVY: c.Vel.Y,

		ObstacleData:    obstacleData,
		ProjectileCount: len(w.projectiles),
		ProjectileData:  projectileData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.Camera)
	h = h*31 + uint64(snap.Hits)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Episode) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CharX)
	h = h*31 + math.Float64bits(snap.CharY)
	h = h*31 + math.Float64bits(snap.CharVX)
	h = h*31 + math.Float64bits(snap.CharVY)
	h = h*31 + uint64(snap.ProjectileCount) //#nosec G115 -- hash computation

	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
