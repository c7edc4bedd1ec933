package skyshot

import "github.com/vovakirdan/skyshot/internal/core"

// Paint describes how a shape is drawn. Pixel frontends use only Color;
// the terminal frontend also uses Glyph.
type Paint struct {
	Color core.Color
	Glyph rune
}

// Paints used by the scene.
var (
	CharacterPaint  = Paint{Color: core.ColorRed, Glyph: '█'}
	ObstaclePaint   = Paint{Color: core.ColorBrown, Glyph: '▓'}
	ProjectilePaint = Paint{Color: core.ColorBlue, Glyph: '●'}
	GoalPaint       = Paint{Color: core.ColorGreen, Glyph: '▐'}
	GroundPaint     = Paint{Color: core.ColorGreen, Glyph: '▀'}
	DividerPaint    = Paint{Color: core.ColorBlack, Glyph: '┊'}
)

// Canvas is the render context handed to entities by a frontend.
// Coordinates are viewport pixels; the camera has already been applied.
type Canvas interface {
	FillRect(b core.Box, p Paint)
	FillCircle(center core.Vec2, radius float64, p Paint)
}

// Entity is anything in the world that advances per tick and can draw itself.
type Entity interface {
	Update()
	Bounds() core.Box
	Draw(c Canvas, cameraX float64)
}

var (
	_ Entity = (*Character)(nil)
	_ Entity = Obstacle{}
	_ Entity = (*Projectile)(nil)
)

// toView shifts a world box into viewport coordinates.
func toView(b core.Box, cameraX float64) core.Box {
	b.X -= cameraX
	return b
}
