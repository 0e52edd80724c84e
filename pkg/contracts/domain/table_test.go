package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{Columns: []Column{
		{
			Name: "Artifact",
			Kind: KindString,
			Values: []Value{
				StringValue("Jade mask"), StringValue("Obsidian blade"), Null(),
				StringValue("Gold idol"), StringValue("Clay pot"), StringValue("Bone flute"),
			},
		},
		{
			Name: "Depth",
			Kind: KindFloat,
			Values: []Value{
				FloatValue(1.5), FloatValue(2.25), FloatValue(3), Null(), FloatValue(4.75), FloatValue(0.5),
			},
		},
	}}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{name: "null", value: Null(), want: "NaN"},
		{name: "zero value is null", value: Value{}, want: "NaN"},
		{name: "int", value: IntValue(42), want: "42"},
		{name: "negative int", value: IntValue(-7), want: "-7"},
		{name: "float", value: FloatValue(2.5), want: "2.5"},
		{name: "whole float", value: FloatValue(3), want: "3"},
		{name: "date", value: TimeValue(time.Date(1920, 5, 21, 0, 0, 0, 0, time.UTC)), want: "1920-05-21"},
		{name: "datetime", value: TimeValue(time.Date(1920, 5, 21, 14, 30, 0, 0, time.UTC)), want: "1920-05-21 14:30:00"},
		{name: "string", value: StringValue("Main Chamber"), want: "Main Chamber"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
}

func TestValue_IsNull(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.True(t, Value{}.IsNull())
	assert.False(t, StringValue("").IsNull())
	assert.False(t, IntValue(0).IsNull())
}

func TestTable_Shape(t *testing.T) {
	tbl := sampleTable()

	assert.Equal(t, 6, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumColumns())
	assert.Equal(t, []string{"Artifact", "Depth"}, tbl.ColumnNames())

	var empty *Table
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 0, empty.NumColumns())
	assert.Equal(t, 0, (&Table{}).NumRows())
}

func TestTable_Column(t *testing.T) {
	tbl := sampleTable()

	col, ok := tbl.Column("Depth")
	require.True(t, ok)
	assert.Equal(t, KindFloat, col.Kind)
	assert.Len(t, col.Values, 6)

	_, ok = tbl.Column("Missing")
	assert.False(t, ok)
}

func TestTable_Row(t *testing.T) {
	tbl := sampleTable()

	row, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []Value{StringValue("Obsidian blade"), FloatValue(2.25)}, row)

	_, err = tbl.Row(6)
	assert.Error(t, err)
	_, err = tbl.Row(-1)
	assert.Error(t, err)
}

func TestTable_Head(t *testing.T) {
	tbl := sampleTable()

	tests := []struct {
		name     string
		n        int
		wantRows int
	}{
		{name: "first five", n: 5, wantRows: 5},
		{name: "more than available", n: 10, wantRows: 6},
		{name: "zero", n: 0, wantRows: 0},
		{name: "negative", n: -3, wantRows: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head := tbl.Head(tt.n)
			assert.Equal(t, tt.wantRows, head.NumRows())
			assert.Equal(t, tbl.ColumnNames(), head.ColumnNames())
		})
	}

	// Head must not alias the source values
	head := tbl.Head(2)
	head.Columns[0].Values[0] = StringValue("changed")
	assert.Equal(t, "Jade mask", tbl.Columns[0].Values[0].Str)
}

func TestTable_Info(t *testing.T) {
	infos := sampleTable().Info()

	require.Len(t, infos, 2)
	assert.Equal(t, ColumnInfo{Index: 0, Name: "Artifact", NonNullCount: 5, Kind: KindString}, infos[0])
	assert.Equal(t, ColumnInfo{Index: 1, Name: "Depth", NonNullCount: 5, Kind: KindFloat}, infos[1])
}
