package state

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euba/PaintApp/internal/geom"
)

func TestFreehandCommitClearUndo(t *testing.T) {
	c := NewCanvas()
	c.PointerDown(geom.Point{X: 0, Y: 0})
	c.PointerMove(geom.Point{X: 10, Y: 0})
	c.PointerMove(geom.Point{X: 10, Y: 10})
	require.NoError(t, c.PointerUp(geom.Point{X: 10, Y: 10}))

	shapes := c.Renderable()
	require.Len(t, shapes, 1)
	want := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	assert.Equal(t, want, shapes[0].Points)

	c.Clear()
	assert.Empty(t, c.Renderable())

	require.NoError(t, c.Undo())
	shapes = c.Renderable()
	require.Len(t, shapes, 1)
	assert.Equal(t, want, shapes[0].Points)
	assert.Equal(t, KindFreehand, shapes[0].Kind)

	require.NoError(t, c.Undo())
	assert.Empty(t, c.Renderable())
}

func TestDegenerateGestureIsSkipped(t *testing.T) {
	c := NewCanvas()
	c.SetTool(KindRect)
	c.PointerDown(geom.Point{X: 5, Y: 5})
	err := c.PointerUp(geom.Point{X: 5, Y: 5})
	assert.ErrorIs(t, err, ErrEmptyShape)
	assert.Empty(t, c.Renderable())
	assert.False(t, c.CanUndo(), "nothing was committed")
}

func TestRenderableIncludesDraft(t *testing.T) {
	c := NewCanvas()
	c.SetTool(KindLine)
	c.PointerDown(geom.Point{X: 0, Y: 0})
	c.PointerMove(geom.Point{X: 30, Y: 40})

	shapes := c.Renderable()
	require.Len(t, shapes, 1)
	assert.Empty(t, shapes[0].ID, "draft snapshot has no ID yet")
	assert.Empty(t, c.ActiveShapes(), "draft is not committed")
}

func TestTextGesture(t *testing.T) {
	c := NewCanvas()
	c.SetTool(KindText)
	c.PointerDown(geom.Point{X: 12, Y: 34})
	require.NoError(t, c.PointerUp(geom.Point{X: 12, Y: 34}), "text stays pending on release")
	assert.Empty(t, c.ActiveShapes())

	require.NoError(t, c.CommitText("note"))
	shapes := c.ActiveShapes()
	require.Len(t, shapes, 1)
	assert.Equal(t, "note", shapes[0].Text)
	assert.Equal(t, geom.Point{X: 12, Y: 34}, shapes[0].Points[0])
}

func TestCancelDraft(t *testing.T) {
	c := NewCanvas()
	c.SetTool(KindText)
	c.PointerDown(geom.Point{X: 1, Y: 1})
	c.CancelDraft()
	assert.ErrorIs(t, c.CommitText("late"), ErrEmptyShape)
	assert.Empty(t, c.ActiveShapes())
}

func TestResizeRecomputesTransform(t *testing.T) {
	c := NewCanvas()
	c.Resize(geom.Size{W: 500, H: 400})
	tf := c.Transform()
	assert.Equal(t, 0.5, tf.Scale)

	// degenerate sizes are ignored
	c.Resize(geom.Size{W: 0, H: 400})
	assert.Equal(t, tf, c.Transform())
}

func TestToolSettingsResolvedAtCreation(t *testing.T) {
	c := NewCanvas()
	c.SetTool(KindLine)
	c.SetColor(Red)
	c.SetWidth(WidthThick)
	c.SetStyle(StyleDashed)

	c.PointerDown(geom.Point{X: 0, Y: 0})
	require.NoError(t, c.PointerUp(geom.Point{X: 50, Y: 0}))

	// later setting changes must not affect the committed shape
	c.SetColor(Blue)
	c.SetWidth(WidthThin)

	s := c.ActiveShapes()[0]
	assert.Equal(t, Red, s.Color)
	assert.Equal(t, 8.0, s.Stroke)
	assert.Equal(t, StyleDashed, s.Style)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := NewCanvas()
	c.PointerDown(geom.Point{X: 0, Y: 0})
	c.PointerMove(geom.Point{X: 10, Y: 0})
	require.NoError(t, c.PointerUp(geom.Point{X: 10, Y: 0}))

	c.SetTool(KindCircle)
	c.SetColor(Purple)
	c.SetStyle(StyleDashed)
	c.PointerDown(geom.Point{X: 20, Y: 20})
	require.NoError(t, c.PointerUp(geom.Point{X: 80, Y: 20}))

	var buf bytes.Buffer
	require.NoError(t, c.Save(&buf))

	loaded := NewCanvas()
	require.NoError(t, loaded.Load(&buf))
	assert.Equal(t, c.ActiveShapes(), loaded.ActiveShapes())

	// each loaded shape is individually undoable
	require.NoError(t, loaded.Undo())
	assert.Len(t, loaded.ActiveShapes(), 1)
}

func TestLoadRejectsGarbage(t *testing.T) {
	c := NewCanvas()
	err := c.Load(bytes.NewBufferString("not json"))
	assert.Error(t, err)
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas()
	_, _, ok := c.Bounds()
	assert.False(t, ok)

	c.SetTool(KindRect)
	c.PointerDown(geom.Point{X: 10, Y: 20})
	require.NoError(t, c.PointerUp(geom.Point{X: 110, Y: 70}))
	c.SetTool(KindLine)
	c.PointerDown(geom.Point{X: 200, Y: 5})
	require.NoError(t, c.PointerUp(geom.Point{X: 250, Y: 300}))

	min, max, ok := c.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.Point{X: 10, Y: 5}, min)
	assert.Equal(t, geom.Point{X: 250, Y: 300}, max)
}
