package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showTextDialog collects the string for a pending text gesture.
// OK commits at the anchored point; Cancel discards the draft.
func showTextDialog(win fyne.Window, board *BoardWidget) {
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder("Enter text...")

	d := dialog.NewCustomConfirm("Add Text", "OK", "Cancel", entry, func(ok bool) {
		if !ok {
			board.CancelText()
			return
		}
		board.CommitText(entry.Text)
	}, win)
	d.Resize(fyne.NewSize(340, 200))
	d.Show()
	win.Canvas().Focus(entry)
}
