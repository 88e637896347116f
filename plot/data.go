// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from github.com/gonum/plot:
// Copyright ©2015 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"math"
	"strconv"

	"cogentcore.org/lowess/base/errors"
	"cogentcore.org/lowess/math32/minmax"
)

// data defines the main data interfaces for plotting
// and the different Roles for data.

var (
	ErrInfinity = errors.New("plotter: infinite data point")
	ErrNoData   = errors.New("plotter: no data points")
	ErrLengths  = errors.New("plot.Data has inconsistent lengths: all data elements must have the same length")
)

// Data is a map of Roles and Data for that Role, providing the
// primary way of passing data to a Plotter
type Data map[Roles]Valuer

// Valuer is the data interface for plotting, supporting either
// float64 or string representations.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D(i int) returns float64 value at given index.
	Float1D(i int) float64

	// String1D(i int) returns string value at given index.
	String1D(i int) string
}

// Roles are the roles that a given set of data values can play,
// designed to be sufficiently generalizable across all different
// types of plots.
type Roles int32 //enums:enum

const (
	// NoRole is the default no-role specified case.
	NoRole Roles = iota

	// X axis
	X

	// Y axis
	Y

	// Low is a lower error bar or region.
	Low

	// High is an upper error bar or region.
	High

	// Size controls the size of points etc.
	Size

	// Color controls the color of points or other elements.
	Color

	// Label renders a label, typically from string data, but can also be used for values.
	Label
)

// CheckFloats returns an error if any of the arguments are Infinity.
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// CheckNaNs returns true if any of the floats are NaN
func CheckNaNs(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// Range updates given Range with values from data.
func Range(data Valuer, rng *minmax.F64) {
	for i := 0; i < data.Len(); i++ {
		rng.FitValInRange(data.Float1D(i))
	}
}

// RangeClamp updates the given axis Min, Max range values based
// on the range of values in the given [Data], and the given style range.
func RangeClamp(data Valuer, axisRng *minmax.F64, styleRng *minmax.Range64) {
	Range(data, axisRng)
	axisRng.Min, axisRng.Max = styleRng.Clamp(axisRng.Min, axisRng.Max)
}

// Len returns the common length of the data elements, or 0 if empty.
// Logs and returns an error if the lengths differ.
func (dt Data) Len() (int, error) {
	n := -1
	for _, v := range dt {
		if n < 0 {
			n = v.Len()
			continue
		}
		if v.Len() != n {
			return 0, errors.Log(ErrLengths)
		}
	}
	return max(n, 0), nil
}

// CheckLengths checks that all the data elements have the same length.
// Logs and returns an error if not.
func (dt Data) CheckLengths() error {
	_, err := dt.Len()
	return err
}

// Values provides a minimal implementation of the Data interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

func (vs Values) String1D(i int) string {
	return strconv.FormatFloat(vs[i], 'g', -1, 64)
}
