package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ValueKind identifies the scalar type held by a Value or a Column
type ValueKind string

const (
	KindNull   ValueKind = "null"
	KindInt    ValueKind = "int64"
	KindFloat  ValueKind = "float64"
	KindTime   ValueKind = "datetime"
	KindString ValueKind = "string"
)

// Value is a single table cell. The zero Value is the missing-value marker.
type Value struct {
	Kind  ValueKind `json:"kind"`
	Int   int64     `json:"int,omitempty"`
	Float float64   `json:"float,omitempty"`
	Time  time.Time `json:"time,omitempty"`
	Str   string    `json:"str,omitempty"`
}

// Null returns the missing-value marker
func Null() Value { return Value{Kind: KindNull} }

// IntValue wraps an int64
func IntValue(i int64) Value { return Value{Kind: KindInt, Int: i} }

// FloatValue wraps a float64
func FloatValue(f float64) Value { return Value{Kind: KindFloat, Float: f} }

// TimeValue wraps a timestamp
func TimeValue(t time.Time) Value { return Value{Kind: KindTime, Time: t} }

// StringValue wraps a string
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// IsNull reports whether v is the missing-value marker
func (v Value) IsNull() bool {
	return v.Kind == KindNull || v.Kind == ""
}

// String renders the value for display. Missing values render as NaN.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindTime:
		if v.Time.Hour() == 0 && v.Time.Minute() == 0 && v.Time.Second() == 0 {
			return v.Time.Format("2006-01-02")
		}
		return v.Time.Format("2006-01-02 15:04:05")
	case KindString:
		return v.Str
	default:
		return "NaN"
	}
}

// Column is a named, homogeneously typed sequence of values
type Column struct {
	Name   string    `json:"name"`
	Kind   ValueKind `json:"kind"`
	Values []Value   `json:"values"`
}

// NonNull counts the values that are not missing
func (c Column) NonNull() int {
	n := 0
	for _, v := range c.Values {
		if !v.IsNull() {
			n++
		}
	}
	return n
}

// Table is an in-memory dataset with named columns and ordered rows.
// All columns hold the same number of values.
type Table struct {
	Columns []Column `json:"columns"`
}

// ColumnInfo summarizes one column of a table
type ColumnInfo struct {
	Index        int       `json:"index"`
	Name         string    `json:"name"`
	NonNullCount int       `json:"non_null_count"`
	Kind         ValueKind `json:"kind"`
}

// NumRows returns the row count
func (t *Table) NumRows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	if t == nil {
		return 0
	}
	return len(t.Columns)
}

// ColumnNames returns the column names in order
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, t.NumColumns())
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Row returns the values of row i across all columns
func (t *Table) Row(i int) ([]Value, error) {
	if i < 0 || i >= t.NumRows() {
		return nil, fmt.Errorf("row %d out of range [0, %d)", i, t.NumRows())
	}
	row := make([]Value, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row, nil
}

// Head returns a new table holding at most the first n rows
func (t *Table) Head(n int) *Table {
	if n < 0 {
		n = 0
	}
	if n > t.NumRows() {
		n = t.NumRows()
	}
	head := &Table{Columns: make([]Column, len(t.Columns))}
	for i, c := range t.Columns {
		values := make([]Value, n)
		copy(values, c.Values[:n])
		head.Columns[i] = Column{Name: c.Name, Kind: c.Kind, Values: values}
	}
	return head
}

// Info returns the per-column summary of the table
func (t *Table) Info() []ColumnInfo {
	infos := make([]ColumnInfo, 0, t.NumColumns())
	for i, c := range t.Columns {
		infos = append(infos, ColumnInfo{
			Index:        i,
			Name:         c.Name,
			NonNullCount: c.NonNull(),
			Kind:         c.Kind,
		})
	}
	return infos
}
