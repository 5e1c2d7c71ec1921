package core

import "unicode/utf8"

// Sprite is one frame of ASCII art. Spaces are transparent.
type Sprite struct {
	Lines []string
	Color Color
}

// Size returns the sprite's width and height in cells.
func (sp Sprite) Size() (int, int) {
	w := 0
	for _, line := range sp.Lines {
		w = Max(w, utf8.RuneCountInString(line))
	}
	return w, len(sp.Lines)
}

// Canvas is a drawing surface measured in world units.
// Viewport implements it over a terminal cell buffer.
type Canvas interface {
	Clear()
	Width() float64
	Height() float64
	DrawRect(r RectF, fill rune, c Color)
	DrawSprite(sp Sprite, r RectF)
	DrawText(text string, x, y float64, c Color)
	TextWidth(text string) float64
}

// Viewport projects a fixed-size world (in world units) onto a Screen.
// Scale factors are recomputed on every call, so the screen may be resized
// between frames without the game noticing.
type Viewport struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewViewport creates a viewport drawing a worldW x worldH world onto s.
func NewViewport(s *Screen, worldW, worldH float64) *Viewport {
	return &Viewport{screen: s, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying cell buffer.
func (v *Viewport) Screen() *Screen {
	return v.screen
}

// Width returns the world width.
func (v *Viewport) Width() float64 {
	return v.worldW
}

// Height returns the world height.
func (v *Viewport) Height() float64 {
	return v.worldH
}

func (v *Viewport) scale() (float64, float64) {
	return float64(v.screen.Width()) / v.worldW, float64(v.screen.Height()) / v.worldH
}

// Clear blanks the screen.
func (v *Viewport) Clear() {
	v.screen.Clear()
}

// DrawRect fills the cells covered by a world rectangle.
func (v *Viewport) DrawRect(r RectF, fill rune, c Color) {
	sx, sy := v.scale()
	v.screen.DrawRect(r.Cells(sx, sy), fill, c)
}

// DrawSprite draws a sprite centered in the cells covered by r.
// Sprites larger than the projected rect overflow symmetrically.
func (v *Viewport) DrawSprite(sp Sprite, r RectF) {
	sx, sy := v.scale()
	cells := r.Cells(sx, sy)
	w, h := sp.Size()
	x0 := cells.X + (cells.W-w)/2
	y0 := cells.Y + (cells.H-h)/2

	for dy, line := range sp.Lines {
		dx := 0
		for _, ch := range line {
			if ch != ' ' {
				v.screen.SetColored(x0+dx, y0+dy, ch, sp.Color)
			}
			dx++
		}
	}
}

// DrawText writes text with its top-left corner at world position (x, y).
func (v *Viewport) DrawText(text string, x, y float64, c Color) {
	sx, sy := v.scale()
	cx, cy := NewRectF(x, y, 0, 0).Cells(sx, sy).Center()
	v.screen.DrawText(cx, cy, text, c)
}

// TextWidth returns the world width occupied by text.
func (v *Viewport) TextWidth(text string) float64 {
	sx, _ := v.scale()
	if sx == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(text)) / sx
}

var _ Canvas = (*Viewport)(nil)
