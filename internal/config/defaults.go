package config

import (
	_ "embed"
)

//go:embed defaults/skyshot.yaml
var defaultSkyshotYAML []byte

// DefaultSkyshotConfig returns the default skyshot configuration.
func DefaultSkyshotConfig() SkyshotConfig {
	return SkyshotConfig{
		Viewport: ViewportConfig{
			Width:  640,
			Height: 480,
		},
		Level: LevelConfig{
			Screens:          3,
			GroundHeight:     10,
			ClearMargin:      50,
			TriggerBandExtra: 50,
			Goal: GoalConfig{
				OffsetX: 30,
				Width:   20,
				Height:  100,
			},
		},
		Character: CharacterConfig{
			StartX:       50,
			StartY:       50,
			Width:        30,
			Height:       30,
			ForwardSpeed: 2,
			Gravity:      0.05,
			JumpPower:    -2,
			KnockbackVX:  -1,
			KnockbackVY:  -0.5,
		},
		Projectile: ProjectileConfig{
			Radius: 15,
			Speed:  10,
		},
		Obstacles: ObstacleConfig{
			Count:        10,
			MinSize:      30,
			MaxSize:      80,
			MinY:         50,
			BottomMargin: 100,
			RightMargin:  100,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
// Used by `skyshot config` to print a starting point for overrides.
func GetDefaultYAML() []byte {
	return defaultSkyshotYAML
}
