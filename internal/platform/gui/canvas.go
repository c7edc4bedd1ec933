package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyshot/internal/core"
	"github.com/vovakirdan/skyshot/internal/games/skyshot"
)

var (
	colorBackground  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorTriggerBand = color.RGBA{R: 200, G: 200, B: 255, A: 255}
	colorText        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// palette maps scene colors to RGB. Unknown colors draw black.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:   {R: 255, G: 0, B: 0, A: 255},
	core.ColorGreen: {R: 0, G: 255, B: 0, A: 255},
	core.ColorBlue:  {R: 0, G: 0, B: 255, A: 255},
	core.ColorBrown: {R: 150, G: 75, B: 0, A: 255},
	core.ColorBlack: {R: 0, G: 0, B: 0, A: 255},
	core.ColorWhite: {R: 255, G: 255, B: 255, A: 255},
	core.ColorGray:  {R: 128, G: 128, B: 128, A: 255},
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return colorText
}

// imageCanvas draws the scene onto an Ebiten image in viewport pixels.
type imageCanvas struct {
	dst *ebiten.Image
}

var _ skyshot.Canvas = imageCanvas{}

func (c imageCanvas) FillRect(b core.Box, p skyshot.Paint) {
	vector.FillRect(c.dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), rgba(p.Color), false)
}

func (c imageCanvas) FillCircle(center core.Vec2, radius float64, p skyshot.Paint) {
	vector.FillCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), rgba(p.Color), true)
}
