package state

import (
	"math"

	"github.com/euba/PaintApp/internal/geom"
)

// Logical design size of the drawing surface. Stored shapes live in
// this coordinate space regardless of window size.
const (
	DesignWidth  = 1000.0
	DesignHeight = 800.0
)

// Canvas bundles the drawing engine's state: the history log, the
// fit transform, the active tool settings, and the in-progress draft.
// It is passed by reference into the event-handling layer; there is no
// package-level mutable state. All methods take and return logical
// coordinates; converting from device coordinates is the caller's job
// via Transform.
type Canvas struct {
	design geom.Size
	log    Log
	tf     geom.Transform

	tool  Kind
	color Color
	width Width
	style Style

	draft *Draft
}

// NewCanvas returns a canvas with the default design size and tool
// settings (freehand, black, normal, solid).
func NewCanvas() *Canvas {
	design := geom.Size{W: DesignWidth, H: DesignHeight}
	return &Canvas{
		design: design,
		tf:     geom.FitTransform(design, design),
		tool:   KindFreehand,
		color:  Black,
		width:  WidthNormal,
		style:  StyleSolid,
	}
}

func (c *Canvas) Design() geom.Size         { return c.design }
func (c *Canvas) Transform() geom.Transform { return c.tf }

func (c *Canvas) Tool() Kind   { return c.tool }
func (c *Canvas) Color() Color { return c.color }
func (c *Canvas) Width() Width { return c.width }
func (c *Canvas) Style() Style { return c.style }

func (c *Canvas) SetTool(k Kind)     { c.tool = k }
func (c *Canvas) SetColor(col Color) { c.color = col }
func (c *Canvas) SetWidth(w Width)   { c.width = w }
func (c *Canvas) SetStyle(s Style)   { c.style = s }

// Resize recomputes the fit transform for a new surface size.
// Degenerate sizes are ignored.
func (c *Canvas) Resize(surface geom.Size) {
	if surface.W <= 0 || surface.H <= 0 {
		return
	}
	c.tf = geom.FitTransform(c.design, surface)
}

// PointerDown begins a gesture with the current tool settings. For the
// text tool the draft holds the anchor until CommitText or CancelDraft.
func (c *Canvas) PointerDown(p geom.Point) {
	c.draft = NewDraft(c.tool, c.color, c.width, c.style, p)
}

// PointerMove extends the in-progress gesture. No-op without a draft.
func (c *Canvas) PointerMove(p geom.Point) {
	if c.draft != nil {
		c.draft.Extend(p)
	}
}

// PointerUp finalizes and commits the gesture. A degenerate gesture
// returns ErrEmptyShape and commits nothing. Text drafts stay pending
// until CommitText.
func (c *Canvas) PointerUp(p geom.Point) error {
	if c.draft == nil {
		return nil
	}
	if c.tool == KindText {
		return nil
	}
	// freehand has already recorded the motion; anchor tools take the
	// release position as the final anchor
	if c.tool != KindFreehand {
		c.draft.Extend(p)
	}
	s, err := c.draft.Finalize()
	c.draft = nil
	if err != nil {
		return err
	}
	c.log.Commit(s)
	return nil
}

// CommitText finalizes a pending text draft with the given string.
// An empty string returns ErrEmptyShape and commits nothing.
func (c *Canvas) CommitText(text string) error {
	if c.draft == nil {
		return ErrEmptyShape
	}
	c.draft.SetText(text)
	s, err := c.draft.Finalize()
	c.draft = nil
	if err != nil {
		return err
	}
	c.log.Commit(s)
	return nil
}

// CancelDraft discards the in-progress gesture without committing.
func (c *Canvas) CancelDraft() { c.draft = nil }

// Renderable returns the shapes to draw right now: the active history
// prefix followed by a snapshot of the in-progress draft, if it has
// drawable extent.
func (c *Canvas) Renderable() []Shape {
	shapes := c.log.ActiveShapes()
	if c.draft != nil {
		if s, ok := c.draft.Snapshot(); ok {
			shapes = append(shapes, s)
		}
	}
	return shapes
}

// ActiveShapes returns the committed shapes only, draft excluded.
func (c *Canvas) ActiveShapes() []Shape { return c.log.ActiveShapes() }

func (c *Canvas) Undo() error { return c.log.Undo() }
func (c *Canvas) Redo() error { return c.log.Redo() }

func (c *Canvas) CanUndo() bool { return c.log.CanUndo() }
func (c *Canvas) CanRedo() bool { return c.log.CanRedo() }

// Clear records a clear-canvas operation. Undo restores the cleared
// shapes.
func (c *Canvas) Clear() {
	c.draft = nil
	c.log.CommitClear()
}

// HasShapes reports whether anything is currently visible.
func (c *Canvas) HasShapes() bool { return len(c.log.ActiveShapes()) > 0 }

// Bounds returns the joint bounds of all visible shapes; ok is false
// on an empty canvas.
func (c *Canvas) Bounds() (min, max geom.Point, ok bool) {
	for _, s := range c.log.ActiveShapes() {
		lo, hi, has := s.Bounds()
		if !has {
			continue
		}
		if !ok {
			min, max, ok = lo, hi, true
			continue
		}
		min.X = math.Min(min.X, lo.X)
		min.Y = math.Min(min.Y, lo.Y)
		max.X = math.Max(max.X, hi.X)
		max.Y = math.Max(max.Y, hi.Y)
	}
	return
}
