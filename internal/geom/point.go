package geom

import "math"

// Point is a location in logical (resolution-independent) coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in logical coordinates.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Segment is a straight stretch between two points.
type Segment struct {
	A, B Point
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func (s Segment) Length() float64 { return s.A.Dist(s.B) }
