package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/euba/PaintApp/internal/export"
	"github.com/euba/PaintApp/internal/geom"
)

const (
	AppName    = "Paint App"
	AppVersion = "1.0.0"
)

// AppInfo returns the display name and version of the application.
func AppInfo() string { return AppName + " v" + AppVersion }

// RunApp builds the window, wires the board, toolbar and dialogs
// together, and runs the event loop until the window closes.
func RunApp() {
	a := app.New()
	win := a.NewWindow(AppName)
	win.Resize(fyne.NewSize(1000, 800))

	board := NewBoardWidget()
	status := widget.NewLabel("Ready")
	board.OnStatus = status.SetText
	board.OnText = func(_ geom.Point) { showTextDialog(win, board) }

	tb := NewToolbar(board)
	board.OnChange = func() {
		tb.RefreshHistory(board.CanUndo(), board.CanRedo())
	}
	tb.OnExport = func() { showExportDialog(win, board) }
	tb.OnQuickExport = func() { showQuickExportDialog(win, board) }
	tb.OnSave = func() { showSaveDialog(win, board) }
	tb.OnOpen = func() { showOpenDialog(win, board) }

	bottom := container.NewVBox(tb.Object(), status)
	win.SetContent(container.NewBorder(nil, bottom, nil, nil, board))

	addShortcuts(win, board)

	slog.Info("application started", "component", "app", "app", AppInfo())
	win.ShowAndRun()
	slog.Info("application stopped", "component", "app")
}

func addShortcuts(win fyne.Window, board *BoardWidget) {
	c := win.Canvas()
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { board.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift},
		func(fyne.Shortcut) { board.Redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { board.Redo() })
}

// showExportDialog runs the high-fidelity export: re-rasterize the
// committed shapes at 2x the design size with the export edge policy.
func showExportDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		img := export.Render(board.Snapshot(), board.Design(), export.DefaultScale)
		if err := export.WritePNG(writer, img); err != nil {
			slog.Error("export png", "component", "app", "err", err)
			board.status("Export failed")
			return
		}
		board.status("Exported " + writer.URI().Name())
	}, win)
	d.SetFileName("drawing.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

// showQuickExportDialog saves the pixels currently on screen, as-is.
// Lower fidelity than Export: no upscaling, no edge policy.
func showQuickExportDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		img := win.Canvas().Capture()
		if err := export.WritePNG(writer, img); err != nil {
			slog.Error("quick export png", "component", "app", "err", err)
			board.status("Export failed")
			return
		}
		board.status("Exported " + writer.URI().Name())
	}, win)
	d.SetFileName("screenshot.png")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.Show()
}

func showSaveDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		board.SaveTo(writer)
	}, win)
	d.SetFileName("drawing.json")
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

func showOpenDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		board.LoadFrom(reader)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}
