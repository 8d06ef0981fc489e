package fynetable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/plusk0/recordtable/table"
)

// popupMenu shows a fyne.Menu on the canvas of owner.
type popupMenu struct {
	menu  *fyne.Menu
	owner fyne.CanvasObject
}

var _ table.Menu = popupMenu{}

func (p popupMenu) Show(at table.Point) {
	c := fyne.CurrentApp().Driver().CanvasForObject(p.owner)
	if c == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(p.menu, c, fyne.NewPos(at.X, at.Y))
}
