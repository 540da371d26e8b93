package ui

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/euba/PaintApp/internal/geom"
	"github.com/euba/PaintApp/internal/state"
)

// BoardWidget is the interactive drawing surface. It translates
// pointer events into the engine's gesture protocol (begin/extend/
// finalize), renders the engine's renderable shape list, and keeps the
// engine behind a lock because Fyne renderers run on the framework
// thread.
type BoardWidget struct {
	widget.BaseWidget
	mu     sync.RWMutex
	engine *state.Canvas

	drawing bool

	OnChange func()                  // history or shape list changed
	OnText   func(anchor geom.Point) // text tool tapped; open the input dialog
	OnStatus func(text string)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget() *BoardWidget {
	b := &BoardWidget{engine: state.NewCanvas()}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) status(text string) {
	if b.OnStatus != nil {
		b.OnStatus(text)
	}
}

func (b *BoardWidget) changed() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

// toLogical maps a widget-local position to the engine's logical space.
func (b *BoardWidget) toLogical(pos fyne.Position) geom.Point {
	return b.engine.Transform().Invert(geom.Point{X: float64(pos.X), Y: float64(pos.Y)})
}

func (b *BoardWidget) SetTool(k state.Kind) {
	b.mu.Lock()
	b.engine.SetTool(k)
	b.mu.Unlock()
}

func (b *BoardWidget) SetColor(c state.Color) {
	b.mu.Lock()
	b.engine.SetColor(c)
	b.mu.Unlock()
}

func (b *BoardWidget) SetWidth(w state.Width) {
	b.mu.Lock()
	b.engine.SetWidth(w)
	b.mu.Unlock()
}

func (b *BoardWidget) SetStyle(s state.Style) {
	b.mu.Lock()
	b.engine.SetStyle(s)
	b.mu.Unlock()
}

func (b *BoardWidget) Tool() state.Kind {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.engine.Tool()
}

func (b *BoardWidget) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.engine.CanUndo()
}

func (b *BoardWidget) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.engine.CanRedo()
}

// Snapshot copies the committed shape list for export, so the
// rasterizer never shares the live slice.
func (b *BoardWidget) Snapshot() []state.Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]state.Shape(nil), b.engine.ActiveShapes()...)
}

func (b *BoardWidget) Design() geom.Size { return b.engine.Design() }

func (b *BoardWidget) Undo() {
	b.mu.Lock()
	err := b.engine.Undo()
	b.mu.Unlock()
	if errors.Is(err, state.ErrNothingToUndo) {
		return
	}
	b.Refresh()
	b.changed()
	b.status("Undone")
}

func (b *BoardWidget) Redo() {
	b.mu.Lock()
	err := b.engine.Redo()
	b.mu.Unlock()
	if errors.Is(err, state.ErrNothingToRedo) {
		return
	}
	b.Refresh()
	b.changed()
	b.status("Redone")
}

func (b *BoardWidget) Clear() {
	b.mu.Lock()
	b.engine.Clear()
	b.mu.Unlock()
	b.Refresh()
	b.changed()
	b.status("Canvas cleared")
}

// CommitText finalizes a pending text gesture with the dialog result.
func (b *BoardWidget) CommitText(text string) {
	b.mu.Lock()
	err := b.engine.CommitText(text)
	b.mu.Unlock()
	if errors.Is(err, state.ErrEmptyShape) {
		return
	}
	b.Refresh()
	b.changed()
}

func (b *BoardWidget) CancelText() {
	b.mu.Lock()
	b.engine.CancelDraft()
	b.mu.Unlock()
}

// SaveTo writes the drawing as JSON through a Fyne save dialog result.
func (b *BoardWidget) SaveTo(writer fyne.URIWriteCloser) {
	defer func() {
		if err := writer.Close(); err != nil {
			slog.Error("close save writer", "component", "board", "err", err)
		}
	}()
	b.mu.RLock()
	n := len(b.engine.ActiveShapes())
	err := b.engine.Save(writer)
	b.mu.RUnlock()
	if err != nil {
		slog.Error("save drawing", "component", "board", "err", err)
		b.status("Error saving file")
		return
	}
	b.status(fmt.Sprintf("Saved %d shapes", n))
}

// LoadFrom replaces the drawing with a saved JSON file.
func (b *BoardWidget) LoadFrom(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error("close load reader", "component", "board", "err", err)
		}
	}()
	b.mu.Lock()
	err := b.engine.Load(reader)
	n := len(b.engine.ActiveShapes())
	b.mu.Unlock()
	if err != nil {
		slog.Error("load drawing", "component", "board", "err", err)
		b.status("Error loading file")
		return
	}
	b.Refresh()
	b.changed()
	b.status(fmt.Sprintf("Loaded %d shapes", n))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	p := b.toLogical(e.Position)
	b.mu.Lock()
	tool := b.engine.Tool()
	b.engine.PointerDown(p)
	b.drawing = tool != state.KindText
	b.mu.Unlock()
	if tool == state.KindText {
		if b.OnText != nil {
			b.OnText(p)
		}
		return
	}
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.mu.Lock()
	if !b.drawing {
		b.mu.Unlock()
		return
	}
	b.engine.PointerMove(b.toLogical(e.Position))
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.mu.Lock()
	if !b.drawing {
		b.mu.Unlock()
		return
	}
	b.drawing = false
	err := b.engine.PointerUp(b.toLogical(e.Position))
	b.mu.Unlock()
	// a degenerate gesture is simply not committed
	if err != nil && !errors.Is(err, state.ErrEmptyShape) {
		slog.Error("finalize gesture", "component", "board", "err", err)
	}
	b.Refresh()
	b.changed()
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
func (b *BoardWidget) DragEnd()                       {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	return r
}

type boardRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.mu.Lock()
	r.board.engine.Resize(geom.Size{W: float64(size.Width), H: float64(size.Height)})
	r.board.mu.Unlock()
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// Objects rebuilds the canvas object list from the engine's renderable
// shapes. Live rendering always strokes anti-aliased; dashed shapes
// reuse the same dash generator the export path uses, so on-screen and
// exported dash placement match.
func (r *boardRenderer) Objects() []fyne.CanvasObject {
	r.board.mu.RLock()
	defer r.board.mu.RUnlock()

	tf := r.board.engine.Transform()
	objects := []fyne.CanvasObject{r.background}
	for _, s := range r.board.engine.Renderable() {
		objects = appendShapeObjects(objects, s, tf)
	}
	return objects
}

func appendShapeObjects(objects []fyne.CanvasObject, s state.Shape, tf geom.Transform) []fyne.CanvasObject {
	if s.Kind == state.KindText {
		return appendTextObjects(objects, s, tf)
	}
	path, closed := s.StrokePath()
	if len(path) < 2 {
		return objects
	}
	strokeW := float32(s.Stroke * tf.Scale)
	if s.Style == state.StyleDashed {
		for _, seg := range geom.DashSegments(path, closed, s.DashSpec()) {
			objects = append(objects, lineObject(seg.A, seg.B, s.Color, strokeW, tf))
		}
		return objects
	}
	for i := 1; i < len(path); i++ {
		objects = append(objects, lineObject(path[i-1], path[i], s.Color, strokeW, tf))
	}
	if closed {
		objects = append(objects, lineObject(path[len(path)-1], path[0], s.Color, strokeW, tf))
	}
	return objects
}

func appendTextObjects(objects []fyne.CanvasObject, s state.Shape, tf geom.Transform) []fyne.CanvasObject {
	size := float32(s.Width.FontPx() * tf.Scale)
	anchor := tf.Apply(s.Points[0])
	for i, line := range strings.Split(s.Text, "\n") {
		t := canvas.NewText(line, s.Color)
		t.TextSize = size
		t.Resize(t.MinSize())
		t.Move(fyne.NewPos(float32(anchor.X), float32(anchor.Y)+float32(i)*size*1.3))
		objects = append(objects, t)
	}
	return objects
}

func lineObject(a, b geom.Point, col state.Color, strokeW float32, tf geom.Transform) fyne.CanvasObject {
	da, db := tf.Apply(a), tf.Apply(b)
	l := canvas.NewLine(col)
	l.StrokeWidth = strokeW
	l.Position1 = fyne.NewPos(float32(da.X), float32(da.Y))
	l.Position2 = fyne.NewPos(float32(db.X), float32(db.Y))
	return l
}

func (r *boardRenderer) Refresh() { canvas.Refresh(r.board) }

func (r *boardRenderer) Destroy() {}
