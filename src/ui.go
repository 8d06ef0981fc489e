package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/plusk0/recordtable/fynetable"
	"github.com/plusk0/recordtable/internal/config"
	"github.com/plusk0/recordtable/internal/contacts"
	"github.com/plusk0/recordtable/table"
)

const columnWidth = 160

// contactStore is the part of contacts.Store the window writes through.
type contactStore interface {
	Save([]contacts.Contact) error
	All() ([]contacts.Contact, error)
}

type contactsView struct {
	app    fyne.App
	win    fyne.Window
	store  contactStore
	table  *fynetable.Table[contacts.Contact]
	status *widget.Label
}

// createUI lays out the toolbar, the contact table and a status line.
func createUI(a fyne.App, win fyne.Window, store contactStore, list *[]contacts.Contact, cfg config.App) (fyne.CanvasObject, error) {
	v, err := newContactsView(a, win, store, list, cfg)
	if err != nil {
		return nil, err
	}
	readOnly := widget.NewCheck("Read-only", v.table.SetReadOnly)
	readOnly.SetChecked(cfg.ReadOnly)
	detailsBtn := widget.NewButton("Details", v.showDetails)
	reloadBtn := widget.NewButton("Reload", v.reload)

	toolbar := container.NewHBox(readOnly, widget.NewSeparator(), detailsBtn, reloadBtn)
	return container.NewBorder(toolbar, v.status, nil, nil, v.table), nil
}

func newContactsView(a fyne.App, win fyne.Window, store contactStore, list *[]contacts.Contact, cfg config.App) (*contactsView, error) {
	tbl, err := fynetable.New(list, cfg.EmptyLabel, table.WithLogger(log.Default()))
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}
	v := &contactsView{
		app:    a,
		win:    win,
		store:  store,
		table:  tbl,
		status: widget.NewLabel(""),
	}
	for col := range tbl.Core().Schema().Width() {
		tbl.SetColumnWidth(col, columnWidth)
	}
	tbl.SetReadOnly(cfg.ReadOnly)
	tbl.OnChanged = v.save
	tbl.SetContextMenu(fyne.NewMenu("",
		fyne.NewMenuItem("Show details", v.showDetails),
		fyne.NewMenuItem("Copy name", v.copyName),
	))
	v.setStatus()
	return v, nil
}

func (v *contactsView) save() {
	if err := v.store.Save(*v.table.Core().List()); err != nil {
		log.Printf("warning: saving contacts: %v", err)
		dialog.ShowError(err, v.win)
		return
	}
	v.setStatus()
}

// reload replaces the list with what the store holds. Row indices no
// longer point at the same contacts, so the selection is dropped.
func (v *contactsView) reload() {
	fresh, err := v.store.All()
	if err != nil {
		dialog.ShowError(err, v.win)
		return
	}
	*v.table.Core().List() = fresh
	v.table.Core().ClearSelection()
	v.table.Reload()
	v.setStatus()
}

func (v *contactsView) showDetails() {
	v.table.ExecuteActionOnSelection(func(c contacts.Contact) {
		dialog.ShowInformation(c.Name, details(c), v.win)
	})
}

func (v *contactsView) copyName() {
	v.table.ExecuteActionOnSelection(func(c contacts.Contact) {
		v.app.Clipboard().SetContent(c.Name)
	})
}

func (v *contactsView) setStatus() {
	v.status.SetText(fmt.Sprintf("%d contacts", len(*v.table.Core().List())))
}

func details(c contacts.Contact) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", c.ID)
	fmt.Fprintf(&b, "Age: %d\n", c.Age)
	fmt.Fprintf(&b, "E-mail: %s\n", c.Email)
	fmt.Fprintf(&b, "Tags: %s\n", table.Text(c.Tags))
	fmt.Fprintf(&b, "Active: %t\n", c.Active)
	fmt.Fprintf(&b, "Joined: %s", c.Joined.Format("2006-01-02"))
	return b.String()
}
