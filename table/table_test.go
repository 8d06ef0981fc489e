package table

import (
	"bytes"
	"log"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `table:"order=1"`
	Age  int    `table:"order=2,editable=false"`
}

type account struct {
	Owner   string  `table:"order=1,label=Owner"`
	Balance float64 `table:"order=2"`
	Age     int     `table:"order=3"`
	Active  bool
	Tags    []string
}

// newTestTable builds a table over list with its log captured in a buffer.
func newTestTable[T any](t *testing.T, list *[]T, opts ...Option) (*Table[T], *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	opts = append([]Option{WithLogger(log.New(&buf, "", 0))}, opts...)
	tbl, err := New(list, opts...)
	require.NoError(t, err)
	return tbl, &buf
}

func people() []person {
	return []person{{Name: "Bea", Age: 30}, {Name: "Al", Age: 40}}
}

func TestNewRejectsNilList(t *testing.T) {
	_, err := New[person](nil)
	require.Error(t, err)
}

func TestNewRejectsNonStruct(t *testing.T) {
	list := []int{1, 2}
	_, err := New(&list)
	require.ErrorIs(t, err, ErrNotStruct)
}

func TestScenarioColumnsAndRows(t *testing.T) {
	list := people()
	tbl, _ := newTestTable(t, &list)

	m := tbl.Model()
	require.Equal(t, 2, m.ColumnCount())
	require.Equal(t, "Name", m.Header(0))
	require.Equal(t, "Age", m.Header(1))
	require.Equal(t, []int{1}, tbl.Schema().NonEditable())

	want := [][]any{{"Bea", 30}, {"Al", 40}}
	for r, row := range want {
		for c, v := range row {
			got, ok := m.ValueAt(r, c)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
	}
}

func TestReadOnlyOverridesEveryColumn(t *testing.T) {
	list := []account{{Owner: "a", Balance: 1, Age: 2}}
	tbl, _ := newTestTable(t, &list)
	require.True(t, tbl.IsCellEditable(0, 0))

	tbl.SetReadOnly(true)
	require.True(t, tbl.ReadOnly())
	for col := 0; col < tbl.Model().ColumnCount(); col++ {
		require.False(t, tbl.IsCellEditable(0, col), "column %d", col)
		require.False(t, tbl.CommitEdit(0, col, "x"))
	}
	require.Equal(t, "a", list[0].Owner)

	tbl.SetReadOnly(false)
	require.True(t, tbl.IsCellEditable(0, 0))
}

func TestDispatchRoutesEvents(t *testing.T) {
	list := people()
	tbl, _ := newTestTable(t, &list)

	tbl.Dispatch(SortRequested{Keys: []SortKey{{Column: 0, Direction: Ascending}}})
	require.Equal(t, "Al", list[0].Name)

	require.NoError(t, tbl.Model().SetValueAt("Alan", 0, 0))
	tbl.Dispatch(EditCommitted{Row: 0, Col: 0, Value: "Alan"})
	require.Equal(t, "Alan", list[0].Name)

	tbl.Dispatch(RowActivated{Row: 1})
	require.Equal(t, 1, tbl.Selected())
}

func TestReloadPicksUpCallerChanges(t *testing.T) {
	list := people()
	tbl, _ := newTestTable(t, &list)
	tbl.Select(1)

	list = list[:1]
	list[0].Name = "Cy"
	tbl.Reload()

	require.Equal(t, 1, tbl.Model().RowCount())
	require.Equal(t, "Cy", tbl.Model().Text(0, 0))
	require.Equal(t, -1, tbl.Selected())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
