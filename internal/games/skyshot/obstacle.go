package skyshot

import (
	"math/rand"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

// Obstacle is a static block that knocks the character back on contact.
type Obstacle struct {
	Box core.Box
}

// Update does nothing; obstacles never move.
func (o Obstacle) Update() {}

// Bounds returns the obstacle's box.
func (o Obstacle) Bounds() core.Box {
	return o.Box
}

// Draw paints the obstacle relative to the camera.
func (o Obstacle) Draw(dst Canvas, cameraX float64) {
	dst.FillRect(toView(o.Box, cameraX), ObstaclePaint)
}

// GenerateObstacles places cfg.Obstacles.Count blocks at random.
// Positions and sizes are whole pixels drawn from inclusive ranges;
// the first screen is always left empty.
func GenerateObstacles(rng *rand.Rand, cfg config.SkyshotConfig) []Obstacle {
	oc := cfg.Obstacles
	minX, maxX := cfg.Viewport.Width, cfg.LevelWidth()-oc.RightMargin
	minY, maxY := oc.MinY, cfg.Viewport.Height-oc.BottomMargin

	obstacles := make([]Obstacle, 0, oc.Count)
	for i, n := 0, oc.Count; i < n; i++ {
		x := randInclusive(rng, minX, maxX)
		y := randInclusive(rng, minY, maxY)
		w := randInclusive(rng, oc.MinSize, oc.MaxSize)
		h := randInclusive(rng, oc.MinSize, oc.MaxSize)
		obstacles = append(obstacles, Obstacle{
			Box: core.NewBox(float64(x), float64(y), float64(w), float64(h)),
		})
	}
	return obstacles
}

// randInclusive returns a uniform integer in [lo, hi], or lo when the range is empty.
func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
