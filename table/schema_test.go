package table

import (
	"bytes"
	"log"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnNames(cols []Column) []string {
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
	}
	return names
}

func derive(t *testing.T, v any) ([]Column, string) {
	t.Helper()
	var buf bytes.Buffer
	cols := DeriveColumns(reflect.TypeOf(v), log.New(&buf, "", 0))
	return cols, buf.String()
}

type Base struct {
	Created string `table:"order=0"`
	hidden  int
}

func TestDeriveColumnsOrder(t *testing.T) {
	type ranked struct {
		Zeta  string
		B     string `table:"order=2"`
		Alpha string
		C     string `table:"order=1"`
	}
	type plain struct {
		Zulu  int
		Bravo int
		Alfa  int
	}
	type ties struct {
		Second string `table:"order=5"`
		First  string `table:"order=5"`
		Lead   string `table:"order=-1"`
	}
	type embedded struct {
		Base
		Name   string
		secret string
	}

	tests := []struct {
		name string
		v    any
		want []string
	}{
		{"ranked before unranked", ranked{}, []string{"C", "B", "Alpha", "Zeta"}},
		{"no ranks sorts by name", plain{}, []string{"Alfa", "Bravo", "Zulu"}},
		{"equal ranks keep declaration order", ties{}, []string{"Lead", "Second", "First"}},
		{"promoted fields and no unexported", embedded{}, []string{"Created", "Name"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, _ := derive(t, tt.v)
			assert.Equal(t, tt.want, columnNames(cols))
		})
	}
}

func TestDeriveColumnsTags(t *testing.T) {
	type tagged struct {
		Name  string `table:"label=Full name,order=1"`
		Age   int    `table:"editable=false"`
		ID    string `table:"readonly"`
		Note  string `table:"editable=true"`
		Odd   string `table:"editable=maybe,order=x,colour=red"`
		Plain string
	}
	cols, logged := derive(t, tagged{})

	byName := map[string]Column{}
	for _, c := range cols {
		byName[c.Name] = c
	}
	assert.Equal(t, "Full name", byName["Name"].Label)
	assert.Equal(t, "Plain", byName["Plain"].Label)
	assert.False(t, byName["Age"].Editable)
	assert.False(t, byName["ID"].Editable)
	assert.True(t, byName["Note"].Editable)
	assert.True(t, byName["Plain"].Editable)

	// malformed options are ignored with a warning
	assert.True(t, byName["Odd"].Editable)
	assert.False(t, byName["Odd"].Ranked)
	assert.Contains(t, logged, `ignoring editable "maybe"`)
	assert.Contains(t, logged, `ignoring order "x"`)
	assert.Contains(t, logged, `unknown table option "colour"`)
}

func TestDeriveSchemaPointerRecords(t *testing.T) {
	s, err := DeriveSchema(reflect.TypeOf(&person{}), false, "", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Name", "Age"}, s.Headers())
	assert.Equal(t, 2, s.Width())
	assert.False(t, s.IsPlaceholder())
}

func TestDeriveSchemaNotStruct(t *testing.T) {
	_, err := DeriveSchema(reflect.TypeOf(""), false, "", nil)
	require.ErrorIs(t, err, ErrNotStruct)

	_, err = DeriveSchema(nil, false, "", nil)
	require.ErrorIs(t, err, ErrNotStruct)
}

func TestEmptyListUsesPlaceholderColumn(t *testing.T) {
	var list []person
	tbl, _ := newTestTable(t, &list, WithPlaceholder("Nothing to show"))

	s := tbl.Schema()
	require.True(t, s.IsPlaceholder())
	assert.Equal(t, []string{"Nothing to show"}, s.Headers())
	assert.Equal(t, []int{0}, s.NonEditable())
	_, ok := s.Field(0)
	assert.False(t, ok)

	m := tbl.Model()
	assert.Equal(t, 1, m.ColumnCount())
	assert.Equal(t, 0, m.RowCount())
	assert.Equal(t, "Nothing to show", m.Header(0))
	assert.False(t, tbl.IsCellEditable(0, 0))
}

func TestEmptyListDefaultPlaceholder(t *testing.T) {
	list := []person{}
	tbl, _ := newTestTable(t, &list)
	assert.Equal(t, []string{""}, tbl.Schema().Headers())
}

func TestColumnCountMatchesExportedFields(t *testing.T) {
	list := []account{{Owner: "x"}}
	tbl, _ := newTestTable(t, &list)
	assert.Equal(t, 5, tbl.Model().ColumnCount())
	assert.Equal(t, []string{"Owner", "Balance", "Age", "Active", "Tags"}, tbl.Schema().Headers())
}

func TestLabelStopsAtComma(t *testing.T) {
	type rec struct {
		City string `table:"label=City, State,order=1"`
	}
	cols, logged := derive(t, rec{})

	require.Len(t, cols, 1)
	assert.Equal(t, "City", cols[0].Label)
	assert.True(t, cols[0].Ranked)
	assert.Contains(t, logged, `unknown table option "State"`)
}
