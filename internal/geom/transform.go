package geom

import "math"

// Transform maps logical coordinates to device coordinates with a
// uniform scale and a letterbox offset. Apply and Invert are exact
// inverses up to floating-point rounding.
type Transform struct {
	Scale  float64
	Dx, Dy float64
}

// Identity returns the transform that maps every point to itself.
func Identity() Transform { return Transform{Scale: 1} }

// FitTransform computes the transform that fits the logical design
// size into the given surface, preserving aspect ratio and centering
// the drawing in the leftover space. Degenerate (zero or negative)
// sizes are rejected by callers before reaching here.
func FitTransform(design, surface Size) Transform {
	s := math.Min(surface.W/design.W, surface.H/design.H)
	return Transform{
		Scale: s,
		Dx:    (surface.W - design.W*s) / 2,
		Dy:    (surface.H - design.H*s) / 2,
	}
}

// Apply maps a logical point to device coordinates.
func (t Transform) Apply(p Point) Point {
	return Point{p.X*t.Scale + t.Dx, p.Y*t.Scale + t.Dy}
}

// Invert maps a device point back to logical coordinates.
func (t Transform) Invert(p Point) Point {
	return Point{(p.X - t.Dx) / t.Scale, (p.Y - t.Dy) / t.Scale}
}
