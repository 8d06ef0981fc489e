package fynetable

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// cell is one recycled table cell. It shows a label, captures left, right
// and double clicks, and swaps the label for an entry while editing.
type cell struct {
	widget.BaseWidget
	label *widget.Label
	entry *widget.Entry
	id    widget.TableCellID

	onTapped func(id widget.TableCellID, secondary bool, at fyne.Position)
	canEdit  func(id widget.TableCellID) bool
	onSubmit func(id widget.TableCellID, text string)
}

func newCell() *cell {
	c := &cell{
		label: widget.NewLabel(""),
		entry: widget.NewEntry(),
	}
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.entry.Hide()
	c.entry.OnSubmitted = c.submit
	c.ExtendBaseWidget(c)
	return c
}

func (c *cell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.label, c.entry))
}

// Tapped implements fyne.Tappable for left clicks
func (c *cell) Tapped(e *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.id, false, e.AbsolutePosition)
	}
}

// TappedSecondary implements fyne.SecondaryTappable for right clicks
func (c *cell) TappedSecondary(e *fyne.PointEvent) {
	if c.onTapped != nil {
		c.onTapped(c.id, true, e.AbsolutePosition)
	}
}

// DoubleTapped starts editing when the table allows it.
func (c *cell) DoubleTapped(*fyne.PointEvent) {
	c.beginEdit()
}

func (c *cell) beginEdit() {
	if c.canEdit == nil || !c.canEdit(c.id) {
		return
	}
	c.entry.SetText(c.label.Text)
	c.label.Hide()
	c.entry.Show()
	// focus the entry so the user can type immediately
	if cv := fyne.CurrentApp().Driver().CanvasForObject(c); cv != nil {
		cv.Focus(c.entry)
	}
}

func (c *cell) submit(text string) {
	c.endEdit()
	if c.onSubmit != nil {
		c.onSubmit(c.id, text)
	}
}

func (c *cell) endEdit() {
	if !c.editing() {
		return
	}
	c.entry.Hide()
	c.label.Show()
}

func (c *cell) editing() bool { return c.entry.Visible() }

// show binds the cell to id and displays text; a recycled cell drops any
// edit in progress.
func (c *cell) show(id widget.TableCellID, text string, selected bool) {
	if c.id != id {
		c.endEdit()
	}
	c.id = id
	if selected {
		c.label.Importance = widget.HighImportance
	} else {
		c.label.Importance = widget.MediumImportance
	}
	c.label.SetText(text)
	c.label.Refresh()
}
