// Package config provides YAML-based game configuration loading and
// hot reloading for skyshot.
package config

// SkyshotConfig contains all tunable parameters of the game.
// Values are per tick: the physics is tuned for a 60 Hz driver.
type SkyshotConfig struct {
	Viewport   ViewportConfig   `yaml:"viewport"`
	Level      LevelConfig      `yaml:"level"`
	Character  CharacterConfig  `yaml:"character"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
}

// ViewportConfig defines the visible area in world pixels.
type ViewportConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LevelConfig defines the level geometry derived from the viewport.
type LevelConfig struct {
	Screens          int        `yaml:"screens"`            // Level width in viewports
	GroundHeight     int        `yaml:"ground_height"`      // Height of the ground strip (drawn only)
	ClearMargin      float64    `yaml:"clear_margin"`       // Clear when x passes level width minus this
	TriggerBandExtra int        `yaml:"trigger_band_extra"` // Trigger band height beyond the viewport
	Goal             GoalConfig `yaml:"goal"`
}

// GoalConfig places the goal marker relative to the level's right edge.
type GoalConfig struct {
	OffsetX int `yaml:"offset_x"` // Distance of the goal's left edge from the level's right edge
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

// CharacterConfig defines the player character's size and physics.
type CharacterConfig struct {
	StartX       float64 `yaml:"start_x"`
	StartY       float64 `yaml:"start_y"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	ForwardSpeed float64 `yaml:"forward_speed"`
	Gravity      float64 `yaml:"gravity"`
	JumpPower    float64 `yaml:"jump_power"`   // Negative = up
	KnockbackVX  float64 `yaml:"knockback_vx"` // Absolute vx after an obstacle hit
	KnockbackVY  float64 `yaml:"knockback_vy"` // Absolute vy after an obstacle hit
}

// ProjectileConfig defines projectile size and speed.
type ProjectileConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
}

// ObstacleConfig defines random obstacle generation.
type ObstacleConfig struct {
	Count        int `yaml:"count"`
	MinSize      int `yaml:"min_size"`
	MaxSize      int `yaml:"max_size"`
	MinY         int `yaml:"min_y"`
	BottomMargin int `yaml:"bottom_margin"` // Max y is viewport height minus this
	RightMargin  int `yaml:"right_margin"`  // Max x is level width minus this
}

// LevelWidth returns the full level width in pixels.
func (c SkyshotConfig) LevelWidth() int {
	return c.Viewport.Width * c.Level.Screens
}
