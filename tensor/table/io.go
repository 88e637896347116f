// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/lowess/base/errors"
	"cogentcore.org/lowess/plot"
)

// Delims are standard CSV delimiter options (Tab, Comma, Space)
type Delims int32 //enums:enum

const (
	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Space is the space rune delimiter, for SSV space separated value
	Space

	// Detect is used during reading a file -- reads the first line and detects tabs or commas
	Detect
)

func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Comma:
		return ','
	case Space:
		return ' '
	}
	return '\t'
}

// NA is the string written for missing values.
const NA = "NA"

// DetectDelim returns the delimiter used in the given header line:
// Tab if it has any tabs, else Comma if it has any commas, else Space.
func DetectDelim(line string) Delims {
	switch {
	case strings.Contains(line, "\t"):
		return Tab
	case strings.Contains(line, ","):
		return Comma
	}
	return Space
}

// OpenCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
// See [ReadCSV] for the format.
func OpenCSV(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// OpenFS is the version of [OpenCSV] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, errors.Log(err)
	}
	defer fp.Close()
	return ReadCSV(bufio.NewReader(fp), delim)
}

// ReadCSV reads a table from a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// using the Go standard encoding/csv reader conforming to the official CSV standard.
// The first row holds the column names. Cells that are empty, NA or NaN
// are missing values (NaN), and all other cells must be numbers.
func ReadCSV(r io.Reader, delim Delims) (*Table, error) {
	if delim == Detect {
		br := bufio.NewReader(r)
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		delim = DetectDelim(line)
		r = io.MultiReader(strings.NewReader(line), br)
	}
	cr := csv.NewReader(r)
	cr.Comma = delim.Rune()
	cr.TrimLeadingSpace = delim != Space
	rec, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("table.ReadCSV: no header row")
	}
	dt := NewTable()
	rows := len(rec) - 1
	for _, hd := range rec[0] {
		hd = strings.TrimSpace(hd)
		if _, err := dt.AddColumn(hd, make(plot.Values, rows)); err != nil {
			return nil, err
		}
	}
	for ri := range rows {
		if err := dt.readCSVRow(rec[ri+1], ri); err != nil {
			return nil, err
		}
	}
	return dt, nil
}

// readCSVRow reads a record of CSV data into given row in table.
func (dt *Table) readCSVRow(rec []string, row int) error {
	for ci, cl := range dt.Columns {
		str := strings.TrimSpace(rec[ci])
		v, err := ParseValue(str)
		if err != nil {
			return fmt.Errorf("table.ReadCSV: row %d, column %q: %w", row+1, cl.Name, err)
		}
		cl.Values[row] = v
	}
	return nil
}

// ParseValue parses one cell, where empty, NA and NaN are missing (NaN).
func ParseValue(str string) (float64, error) {
	switch str {
	case "", NA, "NaN", "-NaN":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return math.NaN(), fmt.Errorf("value %q is not a number", str)
	}
	return v, nil
}

// FormatValue returns the string for one cell, writing NaN as NA.
func FormatValue(v float64) string {
	if math.IsNaN(v) {
		return NA
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg).
func (dt *Table) SaveCSV(filename string, delim Delims) error {
	fp, err := os.Create(filename)
	if err != nil {
		return errors.Log(err)
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = dt.WriteCSV(bw, delim)
	if ferr := bw.Flush(); err == nil {
		err = ferr
	}
	return err
}

// WriteCSV writes a table to a comma-separated-values (CSV) file
// (where comma = any delimiter, specified in the delim arg),
// with a header row of the column names and NA for missing values.
func (dt *Table) WriteCSV(w io.Writer, delim Delims) error {
	if delim == Detect {
		delim = Comma
	}
	cw := csv.NewWriter(w)
	cw.Comma = delim.Rune()
	if err := cw.Write(dt.ColumnNames()); err != nil {
		return err
	}
	rec := make([]string, dt.NumColumns())
	for ri := range dt.NumRows() {
		for ci, cl := range dt.Columns {
			rec[ci] = FormatValue(cl.Values[ri])
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// String returns the table as comma separated values.
func (dt *Table) String() string {
	var b bytes.Buffer
	errors.Log(dt.WriteCSV(&b, Comma))
	return b.String()
}
