package core

import "math"

// Scale is the number of fixed-point steps per world unit.
// Positions and velocities are hundredths of a unit so motion accumulates
// without rounding.
const Scale = 100

// Fixed is a fixed-point world coordinate (scaled by Scale).
type Fixed int64

// ToFixed converts world units to fixed-point, rounding to the nearest step.
func ToFixed(f float64) Fixed {
	return Fixed(math.Round(f * Scale))
}

// FixedInt converts a whole number of world units to fixed-point.
func FixedInt(n int) Fixed {
	return Fixed(n) * Scale
}

// Float converts fixed-point back to world units.
func (f Fixed) Float() float64 {
	return float64(f) / Scale
}

// Box is an axis-aligned rectangle in fixed-point world units.
// Entities collide and cull on Boxes; only drawing converts to RectF.
type Box struct {
	X, Y Fixed
	W, H Fixed
}

// NewBox creates a box from its top-left corner and size.
func NewBox(pos, size Vec) Box {
	return Box{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() Fixed {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() Fixed {
	return b.Y + b.H
}

// CenterX returns the horizontal center, truncated to a whole step.
func (b Box) CenterX() Fixed {
	return b.X + b.W/2
}

// CenterY returns the vertical center, truncated to a whole step.
func (b Box) CenterY() Fixed {
	return b.Y + b.H/2
}

// Intersects reports whether two boxes overlap.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// RectF projects the box into world units for drawing.
func (b Box) RectF() RectF {
	return NewRectF(b.X.Float(), b.Y.Float(), b.W.Float(), b.H.Float())
}
