package state

import (
	"errors"

	"github.com/google/uuid"

	"github.com/euba/PaintApp/internal/geom"
)

// ErrEmptyShape signals a degenerate gesture at finalize: a zero-extent
// drag, a one-point freehand path, or empty text. It is non-fatal; the
// caller discards the draft and skips the commit.
var ErrEmptyShape = errors.New("shape has no extent")

// Draft accumulates an in-progress gesture. It is the only mutable
// stage of a shape's life; Finalize produces the immutable Shape.
type Draft struct {
	kind   Kind
	color  Color
	width  Width
	style  Style
	points []geom.Point
	text   string
}

// NewDraft begins a gesture at the given logical point.
func NewDraft(kind Kind, color Color, width Width, style Style, start geom.Point) *Draft {
	return &Draft{
		kind:   kind,
		color:  color,
		width:  width,
		style:  style,
		points: []geom.Point{start},
	}
}

// Extend feeds a pointer-move into the gesture. Freehand appends to
// the polyline; line, rect, triangle and circle track the second
// anchor; text ignores pointer motion.
func (d *Draft) Extend(p geom.Point) {
	switch d.kind {
	case KindFreehand:
		d.points = append(d.points, p)
	case KindText:
		// anchor only
	default:
		if len(d.points) < 2 {
			d.points = append(d.points, p)
		} else {
			d.points[1] = p
		}
	}
}

// SetText sets the committed string for a text draft.
func (d *Draft) SetText(s string) { d.text = s }

// Finalize validates the gesture and returns the immutable shape,
// assigning its ID. Degenerate geometry returns ErrEmptyShape.
func (d *Draft) Finalize() (Shape, error) {
	s, ok := d.build()
	if !ok {
		return Shape{}, ErrEmptyShape
	}
	s.ID = uuid.NewString()
	return s, nil
}

// Snapshot returns the draft rendered as a shape for live display.
// ok is false while the gesture has no drawable extent yet. The
// snapshot carries no ID; only Finalize assigns one.
func (d *Draft) Snapshot() (Shape, bool) {
	return d.build()
}

func (d *Draft) build() (Shape, bool) {
	s := Shape{
		Kind:   d.kind,
		Color:  d.color,
		Width:  d.width,
		Stroke: d.width.StrokePx(),
		Style:  d.style,
		Text:   d.text,
	}
	switch d.kind {
	case KindFreehand:
		if len(d.points) < 2 {
			return Shape{}, false
		}
		s.Points = append([]geom.Point(nil), d.points...)
	case KindLine, KindCircle:
		if len(d.points) < 2 || d.points[0] == d.points[1] {
			return Shape{}, false
		}
		s.Points = []geom.Point{d.points[0], d.points[1]}
	case KindRect, KindTriangle:
		if len(d.points) < 2 {
			return Shape{}, false
		}
		minX, minY, maxX, maxY := cornerBox(d.points[0], d.points[1])
		if minX == maxX || minY == maxY {
			return Shape{}, false
		}
		if d.kind == KindRect {
			s.Points = []geom.Point{{X: minX, Y: minY}, {X: maxX, Y: maxY}}
		} else {
			// isoceles: apex at top-center of the drag box
			s.Points = []geom.Point{
				{X: (minX + maxX) / 2, Y: minY},
				{X: maxX, Y: maxY},
				{X: minX, Y: maxY},
			}
		}
	case KindText:
		if d.text == "" {
			return Shape{}, false
		}
		s.Points = []geom.Point{d.points[0]}
	default:
		return Shape{}, false
	}
	return s, true
}
