// Package window runs the shooter in a desktop window through Ebitengine.
// The logical screen is the 1000x750 world, so world units map 1:1 to pixels.
package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/galaxy-shooter/internal/core"
)

// sky is the clear color of the playfield.
var sky = color.RGBA{R: 4, G: 4, B: 16, A: 255}

// Canvas adapts an ebiten.Image to core.Surface.
type Canvas struct {
	dst    *ebiten.Image
	worldW float64
	worldH float64
	face   font.Face
}

var _ core.Surface = (*Canvas)(nil)

// NewCanvas creates a canvas covering a worldW x worldH world.
func NewCanvas(worldW, worldH float64) *Canvas {
	return &Canvas{worldW: worldW, worldH: worldH, face: basicfont.Face7x13}
}

// Target sets the image drawn into for the current frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Bounds returns the world rectangle.
func (c *Canvas) Bounds() core.Rect {
	return core.NewRect(0, 0, c.worldW, c.worldH)
}

// Clear fills the frame with a near-black sky.
func (c *Canvas) Clear() {
	if c.dst == nil {
		return
	}
	c.dst.Fill(sky)
}

// FillRect paints a solid rectangle.
func (c *Canvas) FillRect(r core.Rect, col core.Color, alpha float64) {
	if c.dst == nil || alpha <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.RGBA(alpha), true)
}

// StrokeRect paints a one pixel outline.
func (c *Canvas) StrokeRect(r core.Rect, col core.Color) {
	if c.dst == nil {
		return
	}
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, col.RGBA(1), true)
}

// FillCircle paints a solid disc.
func (c *Canvas) FillCircle(cx, cy, radius float64, col core.Color, alpha float64) {
	if c.dst == nil || alpha <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), col.RGBA(alpha), true)
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y float64, s string, col core.Color) {
	if c.dst == nil {
		return
	}
	bx, by := textOrigin(x, y, c.face.Metrics().Ascent.Ceil())
	text.Draw(c.dst, s, c.face, bx, by, col.RGBA(1))
}

// TextCentered draws s horizontally centered at height y.
func (c *Canvas) TextCentered(y float64, s string, col core.Color) {
	width := font.MeasureString(c.face, s).Ceil()
	c.Text(centeredX(c.worldW, width), y, s, col)
}

// textOrigin converts a top-left position to the baseline origin text.Draw expects.
func textOrigin(x, y float64, ascent int) (int, int) {
	return int(x), int(y) + ascent
}

func centeredX(worldW float64, width int) float64 {
	return (worldW - float64(width)) / 2
}
