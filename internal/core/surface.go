package core

import "math"

// Surface is the drawing target the game renders into once per frame.
// Coordinates are world units; the implementation scales them to its output.
type Surface interface {
	// Bounds returns the world rectangle the surface covers.
	Bounds() Rect
	// Clear erases the previous frame.
	Clear()
	// FillRect paints a solid rectangle; alpha in [0, 1] controls intensity.
	FillRect(r Rect, c Color, alpha float64)
	// StrokeRect paints a rectangle outline.
	StrokeRect(r Rect, c Color)
	// FillCircle paints a solid disc centered at (cx, cy).
	FillCircle(cx, cy, radius float64, c Color, alpha float64)
	// Text draws a string with its top-left corner at (x, y).
	Text(x, y float64, s string, c Color)
	// TextCentered draws a string horizontally centered at height y.
	TextCentered(y float64, s string, c Color)
}

// ScreenSurface adapts a character Screen to the Surface interface by
// scaling world coordinates down to cells.
type ScreenSurface struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenSurface wraps screen so that a worldW x worldH world fills it.
func NewScreenSurface(screen *Screen, worldW, worldH float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, worldW: worldW, worldH: worldH}
}

// Screen returns the wrapped screen buffer.
func (s *ScreenSurface) Screen() *Screen {
	return s.screen
}

// Bounds returns the world rectangle.
func (s *ScreenSurface) Bounds() Rect {
	return NewRect(0, 0, s.worldW, s.worldH)
}

// Clear blanks the screen.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

func (s *ScreenSurface) scale() (float64, float64) {
	if s.worldW <= 0 || s.worldH <= 0 {
		return 0, 0
	}
	return float64(s.screen.Width()) / s.worldW, float64(s.screen.Height()) / s.worldH
}

// cellSpan converts a world interval to a half-open cell interval covering
// at least one cell.
func cellSpan(start, end, scale float64) (int, int) {
	a := int(math.Floor(start * scale))
	b := int(math.Ceil(end * scale))
	if b <= a {
		b = a + 1
	}
	return a, b
}

// shade picks a block glyph for an intensity.
func shade(alpha float64) rune {
	switch {
	case alpha <= 0:
		return ' '
	case alpha >= 0.75:
		return '█'
	case alpha >= 0.5:
		return '▓'
	case alpha >= 0.25:
		return '▒'
	default:
		return '░'
	}
}

// FillRect fills every cell the rectangle touches.
func (s *ScreenSurface) FillRect(r Rect, c Color, alpha float64) {
	sx, sy := s.scale()
	x0, x1 := cellSpan(r.X, r.Right(), sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), sy)
	s.screen.FillCells(x0, y0, x1-x0, y1-y0, shade(alpha), c)
}

// StrokeRect draws a box outline, or a filled block when too small for one.
func (s *ScreenSurface) StrokeRect(r Rect, c Color) {
	sx, sy := s.scale()
	x0, x1 := cellSpan(r.X, r.Right(), sx)
	y0, y1 := cellSpan(r.Y, r.Bottom(), sy)
	if x1-x0 < 2 || y1-y0 < 2 {
		s.screen.FillCells(x0, y0, x1-x0, y1-y0, '▪', c)
		return
	}
	s.screen.DrawBox(x0, y0, x1-x0, y1-y0, c)
}

// FillCircle sets every cell whose center lies inside the disc.
func (s *ScreenSurface) FillCircle(cx, cy, radius float64, c Color, alpha float64) {
	sx, sy := s.scale()
	if sx == 0 || sy == 0 {
		return
	}
	glyph := shade(alpha)
	x0, x1 := cellSpan(cx-radius, cx+radius, sx)
	y0, y1 := cellSpan(cy-radius, cy+radius, sy)
	painted := false
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			wx := (float64(col) + 0.5) / sx
			wy := (float64(row) + 0.5) / sy
			if Distance(wx, wy, cx, cy) <= radius {
				s.screen.SetColored(col, row, glyph, c)
				painted = true
			}
		}
	}
	if !painted {
		s.screen.SetColored(int(cx*sx), int(cy*sy), glyph, c)
	}
}

// Text writes s starting at the cell containing (x, y).
func (s *ScreenSurface) Text(x, y float64, str string, c Color) {
	sx, sy := s.scale()
	s.screen.DrawTextColored(int(x*sx), int(y*sy), str, c)
}

// TextCentered writes s centered on the row containing y.
func (s *ScreenSurface) TextCentered(y float64, str string, c Color) {
	_, sy := s.scale()
	col := (s.screen.Width() - len([]rune(str))) / 2
	s.screen.DrawTextColored(col, int(y*sy), str, c)
}
