package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "skyshot.yaml"

// LoadSkyshot loads the game configuration.
// Search order: customPath -> ~/.skyshot/configs/skyshot.yaml -> ./configs/skyshot.yaml -> embedded default
//
// Files are decoded on top of the defaults, so an override may set only the
// keys it changes. A custom path that cannot be read, parsed or validated is
// an error; problems with the implicit locations fall through to the next one.
func LoadSkyshot(customPath string) (SkyshotConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSkyshotConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultSkyshotConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSkyshotYAML)
	if err != nil {
		return DefaultSkyshotConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the file LoadSkyshot would read first, or an empty
// string when only the embedded default is available. It only checks that
// the file exists.
func ResolvePath(customPath string) string {
	candidates := []string{customPath, userConfigPath(FileName), filepath.Join("configs", FileName)}
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (SkyshotConfig, error) {
	cfg := DefaultSkyshotConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every field that would make the level impossible to build.
func (c SkyshotConfig) Validate() error {
	var errs []error

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %dx%d", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Level.Screens < 1 {
		errs = append(errs, fmt.Errorf("level.screens must be at least 1, got %d", c.Level.Screens))
	}
	if c.Character.Width <= 0 || c.Character.Height <= 0 {
		errs = append(errs, fmt.Errorf("character size must be positive, got %gx%g", c.Character.Width, c.Character.Height))
	}
	if c.Projectile.Radius < 0 {
		errs = append(errs, fmt.Errorf("projectile.radius must not be negative, got %g", c.Projectile.Radius))
	}
	if c.Obstacles.Count < 0 {
		errs = append(errs, fmt.Errorf("obstacles.count must not be negative, got %d", c.Obstacles.Count))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize {
		errs = append(errs, fmt.Errorf("obstacle size range [%d, %d] is invalid", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Obstacles.Count > 0 {
		if maxX := c.LevelWidth() - c.Obstacles.RightMargin; maxX < c.Viewport.Width {
			errs = append(errs, fmt.Errorf("obstacle x range [%d, %d] is empty", c.Viewport.Width, maxX))
		}
		if maxY := c.Viewport.Height - c.Obstacles.BottomMargin; maxY < c.Obstacles.MinY {
			errs = append(errs, fmt.Errorf("obstacle y range [%d, %d] is empty", c.Obstacles.MinY, maxY))
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyshot", "configs", filename)
}
