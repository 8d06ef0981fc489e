package table

// AllColumns in EditCommitted.Col means every field of the row changed,
// as after a full-row paste or refresh.
const AllColumns = -1

// Event is something the widget reports to the table.
type Event interface {
	event()
}

// EditCommitted reports a new value stored at (Row, Col) in the grid.
type EditCommitted struct {
	Row   int
	Col   int
	Value any
}

// SortRequested carries sort keys by priority. Only the first is honored.
type SortRequested struct {
	Keys []SortKey
}

// RowActivated reports a click on Row. Secondary marks a context click.
type RowActivated struct {
	Row       int
	Secondary bool
	At        Point
}

func (EditCommitted) event() {}
func (SortRequested) event() {}
func (RowActivated) event()  {}

type SortDirection int

const (
	Unsorted SortDirection = iota
	Ascending
	Descending
)

func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return "unsorted"
}

type SortKey struct {
	Column    int
	Direction SortDirection
}

// Point is a position in the widget's coordinate space.
type Point struct {
	X, Y float32
}

// Menu is a context menu the table can pop up.
type Menu interface {
	Show(at Point)
}
