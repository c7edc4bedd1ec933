package skyshot

import (
	"testing"

	"github.com/vovakirdan/skyshot/internal/config"
	"github.com/vovakirdan/skyshot/internal/core"
)

func TestOverlapsEntities(t *testing.T) {
	obstacle := Obstacle{Box: core.NewBox(100, 100, 30, 30)}

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"touching left edge", 70, 100, false},
		{"one pixel in", 71, 100, true},
		{"touching top edge", 100, 70, false},
		{"touching right edge", 130, 100, false},
		{"inside", 110, 110, true},
		{"far away", 300, 300, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCharacter(config.DefaultSkyshotConfig().Character)
			c.Pos = core.Vec2{X: tc.x, Y: tc.y}

			if got := Overlaps(obstacle, c); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestProjectileHitsCharacter(t *testing.T) {
	c := NewCharacter(config.DefaultSkyshotConfig().Character)
	c.Pos = core.Vec2{X: 100, Y: 100}
	// Inflated box spans 85..145 on both axes.

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"centre", core.Vec2{X: 115, Y: 115}, true},
		{"on inflated left edge", core.Vec2{X: 85, Y: 115}, false},
		{"just inside left edge", core.Vec2{X: 85.1, Y: 115}, true},
		{"on inflated bottom edge", core.Vec2{X: 115, Y: 145}, false},
		{"just inside bottom edge", core.Vec2{X: 115, Y: 144.9}, true},
		{"inflated corner", core.Vec2{X: 86, Y: 86}, true},
		{"outside", core.Vec2{X: 146, Y: 115}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := &Projectile{Pos: tc.pos, Radius: 15}
			if got := ProjectileHitsCharacter(p, c); got != tc.expected {
				t.Errorf("ProjectileHitsCharacter() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
