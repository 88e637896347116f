// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"

	"cogentcore.org/lowess/plot"
)

// Table is a table of float64 columns aligned by a common row index.
// Missing values are NaN.
type Table struct {
	// Columns has the list of columns, in order.
	Columns []*Column
}

// Column is one named column of a [Table].
type Column struct {
	// Name is the header name of the column.
	Name string

	// Values are the row values, with NaN for missing.
	Values plot.Values
}

// NewTable returns a new empty Table.
func NewTable() *Table {
	return &Table{}
}

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return len(dt.Columns) }

// NumRows returns the number of rows, which is the length
// of the first column, or 0 if there are none.
func (dt *Table) NumRows() int {
	if len(dt.Columns) == 0 {
		return 0
	}
	return len(dt.Columns[0].Values)
}

// ColumnIndex returns the index of the column with the given name,
// or -1 if not found.
func (dt *Table) ColumnIndex(name string) int {
	for i, cl := range dt.Columns {
		if cl.Name == name {
			return i
		}
	}
	return -1
}

// ColumnByName returns the column with the given name,
// or an error if not found.
func (dt *Table) ColumnByName(name string) (*Column, error) {
	i := dt.ColumnIndex(name)
	if i < 0 {
		return nil, fmt.Errorf("table.ColumnByName: column named %q not found", name)
	}
	return dt.Columns[i], nil
}

// AddColumn adds a column with the given name and values, which must
// have the same length as the existing columns. Names must be unique.
func (dt *Table) AddColumn(name string, values plot.Values) (*Column, error) {
	if dt.ColumnIndex(name) >= 0 {
		return nil, fmt.Errorf("table.AddColumn: column named %q already exists", name)
	}
	if len(dt.Columns) > 0 && len(values) != dt.NumRows() {
		return nil, fmt.Errorf("table.AddColumn: column %q has %d rows, table has %d", name, len(values), dt.NumRows())
	}
	cl := &Column{Name: name, Values: values}
	dt.Columns = append(dt.Columns, cl)
	return cl, nil
}

// ColumnNames returns the names of the columns, in order.
func (dt *Table) ColumnNames() []string {
	nms := make([]string, len(dt.Columns))
	for i, cl := range dt.Columns {
		nms[i] = cl.Name
	}
	return nms
}
