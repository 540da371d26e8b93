package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/euba/PaintApp/internal/state"
)

// colorSwatch is a tappable color square for the palette.
type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar is the bottom control bar: tool and width selectors, the
// solid/dashed toggle, the palette, the eraser, history actions and
// the file actions wired in by the app shell.
type Toolbar struct {
	board *BoardWidget

	object    fyne.CanvasObject
	undoBtn   *widget.Button
	redoBtn   *widget.Button
	lastColor state.Color

	OnExport      func()
	OnQuickExport func()
	OnSave        func()
	OnOpen        func()
}

var toolNames = []string{"Pen", "Line", "Rectangle", "Triangle", "Circle", "Text"}

var toolKinds = map[string]state.Kind{
	"Pen":       state.KindFreehand,
	"Line":      state.KindLine,
	"Rectangle": state.KindRect,
	"Triangle":  state.KindTriangle,
	"Circle":    state.KindCircle,
	"Text":      state.KindText,
}

var widthNames = []string{"Thin", "Normal", "Thick"}

var widthTiers = map[string]state.Width{
	"Thin":   state.WidthThin,
	"Normal": state.WidthNormal,
	"Thick":  state.WidthThick,
}

func NewToolbar(board *BoardWidget) *Toolbar {
	t := &Toolbar{board: board, lastColor: state.Black}

	toolSelect := widget.NewSelect(toolNames, func(name string) {
		board.SetTool(toolKinds[name])
	})
	toolSelect.SetSelected("Pen")

	widthSelect := widget.NewSelect(widthNames, func(name string) {
		board.SetWidth(widthTiers[name])
	})
	widthSelect.SetSelected("Normal")

	dashedCheck := widget.NewCheck("Dashed", func(on bool) {
		if on {
			board.SetStyle(state.StyleDashed)
		} else {
			board.SetStyle(state.StyleSolid)
		}
	})

	onColorTapped := func(c state.Color) {
		t.lastColor = c
		board.SetColor(c)
	}
	swatches := container.NewHBox()
	for _, c := range state.Palette {
		swatches.Add(newColorSwatch(c, onColorTapped))
	}

	eraser := widget.NewButtonWithIcon("Eraser", theme.DeleteIcon(), func() {
		// erasing is drawing in background white with a thick pen
		board.SetColor(state.White)
		board.SetWidth(state.WidthThick)
		widthSelect.SetSelected("Thick")
	})
	pen := widget.NewButtonWithIcon("Pen", theme.DocumentCreateIcon(), func() {
		board.SetColor(t.lastColor)
		board.SetTool(state.KindFreehand)
		toolSelect.SetSelected("Pen")
	})

	t.undoBtn = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), board.Undo)
	t.redoBtn = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), board.Redo)
	t.undoBtn.Disable()
	t.redoBtn.Disable()

	clear := widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), board.Clear)

	export := widget.NewButtonWithIcon("Export", theme.DocumentSaveIcon(), func() {
		if t.OnExport != nil {
			t.OnExport()
		}
	})
	snapshot := widget.NewButtonWithIcon("Snapshot", theme.MediaPhotoIcon(), func() {
		if t.OnQuickExport != nil {
			t.OnQuickExport()
		}
	})
	save := widget.NewButtonWithIcon("Save", theme.FolderNewIcon(), func() {
		if t.OnSave != nil {
			t.OnSave()
		}
	})
	open := widget.NewButtonWithIcon("Open", theme.FolderOpenIcon(), func() {
		if t.OnOpen != nil {
			t.OnOpen()
		}
	})

	t.object = container.NewHBox(
		toolSelect,
		widthSelect,
		dashedCheck,
		widget.NewSeparator(),
		swatches,
		widget.NewSeparator(),
		pen,
		eraser,
		t.undoBtn,
		t.redoBtn,
		clear,
		widget.NewSeparator(),
		export,
		snapshot,
		save,
		open,
	)
	return t
}

func (t *Toolbar) Object() fyne.CanvasObject { return t.object }

// RefreshHistory syncs the undo/redo buttons with history
// availability.
func (t *Toolbar) RefreshHistory(canUndo, canRedo bool) {
	setEnabled(t.undoBtn, canUndo)
	setEnabled(t.redoBtn, canRedo)
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
