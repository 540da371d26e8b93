package state

import (
	"math"

	"github.com/euba/PaintApp/internal/geom"
)

// Kind identifies which primitive a shape is.
type Kind string

const (
	KindFreehand Kind = "freehand"
	KindLine     Kind = "line"
	KindRect     Kind = "rect"
	KindTriangle Kind = "triangle"
	KindCircle   Kind = "circle"
	KindText     Kind = "text"
)

// Width is a stroke width tier.
type Width string

const (
	WidthThin   Width = "thin"
	WidthNormal Width = "normal"
	WidthThick  Width = "thick"
)

// StrokePx resolves a width tier to its pixel stroke width.
func (w Width) StrokePx() float64 {
	switch w {
	case WidthThin:
		return 2
	case WidthThick:
		return 8
	default:
		return 4
	}
}

// FontPx resolves a width tier to the text size used by the text tool.
func (w Width) FontPx() float64 {
	switch w {
	case WidthThin:
		return 18
	case WidthThick:
		return 32
	default:
		return 24
	}
}

// Style selects solid or dashed stroking.
type Style string

const (
	StyleSolid  Style = "solid"
	StyleDashed Style = "dashed"
)

// Color is an 8-bit RGBA color. It implements color.Color so shapes
// can be handed straight to image and Fyne drawing code.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

var (
	Black   = Color{0, 0, 0, 255}
	Red     = Color{255, 0, 0, 255}
	Green   = Color{0, 128, 0, 255}
	Blue    = Color{0, 0, 255, 255}
	Yellow  = Color{255, 255, 0, 255}
	Cyan    = Color{0, 255, 255, 255}
	Magenta = Color{255, 0, 255, 255}
	Orange  = Color{255, 165, 0, 255}
	Purple  = Color{128, 0, 128, 255}
	Pink    = Color{255, 105, 180, 255}
	Brown   = Color{139, 69, 19, 255}
	Gray    = Color{128, 128, 128, 255}
	White   = Color{255, 255, 255, 255}
)

// Palette is the selectable color set, in toolbar order.
var Palette = []Color{
	Black, Red, Green, Blue, Yellow, Cyan,
	Magenta, Orange, Purple, Pink, Brown, Gray,
}

// Shape is one committed drawing primitive. Stroke is the pixel width
// resolved from the Width tier when the shape was created; it is never
// re-derived afterwards. A shape is immutable once committed to
// history.
//
// Points semantics by kind: freehand holds the full polyline; line two
// endpoints; rect two opposite corners; circle two points spanning a
// diameter; triangle its three vertices (derived from the drag box at
// finalize); text a single anchor plus the Text string.
type Shape struct {
	ID     string       `json:"id"`
	Kind   Kind         `json:"kind"`
	Color  Color        `json:"color"`
	Width  Width        `json:"width"`
	Stroke float64      `json:"stroke"`
	Style  Style        `json:"style"`
	Points []geom.Point `json:"points"`
	Text   string       `json:"text,omitempty"`
}

// DashSpec derives the dash pattern for this shape's stroke width.
// On and off runs are three stroke widths each, so dash density looks
// the same across brush sizes.
func (s Shape) DashSpec() geom.DashSpec {
	d := 3 * s.Stroke
	return geom.DashSpec{On: d, Off: d}
}

// StrokePath returns the polyline to stroke and whether it is closed.
// Closed shapes use a canonical vertex order (rect: top-left then
// clockwise; circle: angle 0 sampled counterclockwise) so dash
// placement does not depend on drag direction. Text shapes have no
// stroke path.
func (s Shape) StrokePath() ([]geom.Point, bool) {
	switch s.Kind {
	case KindFreehand, KindLine:
		return s.Points, false
	case KindRect:
		if len(s.Points) < 2 {
			return nil, false
		}
		minX, minY, maxX, maxY := cornerBox(s.Points[0], s.Points[1])
		return []geom.Point{
			{X: minX, Y: minY},
			{X: maxX, Y: minY},
			{X: maxX, Y: maxY},
			{X: minX, Y: maxY},
		}, true
	case KindTriangle:
		if len(s.Points) < 3 {
			return nil, false
		}
		return s.Points[:3], true
	case KindCircle:
		if len(s.Points) < 2 {
			return nil, false
		}
		c, r := circleParams(s.Points[0], s.Points[1])
		n := circleSamples(r)
		pts := make([]geom.Point, n)
		for i := 0; i < n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			pts[i] = geom.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
		}
		return pts, true
	default:
		return nil, false
	}
}

// Bounds returns the axis-aligned bounds of the shape's geometry.
// ok is false for a shape with no points.
func (s Shape) Bounds() (min, max geom.Point, ok bool) {
	pts, _ := s.StrokePath()
	if len(pts) == 0 {
		pts = s.Points
	}
	if len(pts) == 0 {
		return geom.Point{}, geom.Point{}, false
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max, true
}

func cornerBox(a, b geom.Point) (minX, minY, maxX, maxY float64) {
	return math.Min(a.X, b.X), math.Min(a.Y, b.Y),
		math.Max(a.X, b.X), math.Max(a.Y, b.Y)
}

func circleParams(a, b geom.Point) (center geom.Point, radius float64) {
	center = geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	radius = a.Dist(b) / 2
	return
}

// circleSamples picks the outline resolution from the perimeter so
// small circles stay cheap and large ones stay smooth. The same
// polyline feeds live rendering, dashing, and export.
func circleSamples(radius float64) int {
	n := int(math.Ceil(2 * math.Pi * radius / 2.5))
	if n < 36 {
		n = 36
	}
	if n > 360 {
		n = 360
	}
	return n
}
