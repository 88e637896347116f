// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"slices"
	"sort"

	"cogentcore.org/lowess/math32/minmax"
)

// Plotter is an interface that wraps the data preparation for
// one element of a plot. Drawing is left to a renderer that
// reads the Data and Style.
type Plotter interface {
	// Data returns the data by roles for this plot, for both the original
	// data and the derived values to render.
	Data() Data

	// UpdateRange updates the given ranges to include the plotted values.
	UpdateRange(xr, yr *minmax.F64)

	// Stylers returns the styler functions for this element.
	Stylers() *Stylers
}

// PlotterType registers a Plotter so that it can be created with appropriate data.
type PlotterType struct {
	// Name of the plot type.
	Name string

	// Doc is the documentation for this Plotter.
	Doc string

	// Required Data roles for this plot. Data for these Roles must be provided.
	Required []Roles

	// Optional Data roles for this plot.
	Optional []Roles

	// New returns a new plotter of this type with given data in given roles.
	New func(data Data) (Plotter, error)
}

// Plotters is the registry of [Plotter] types.
var Plotters = map[string]PlotterType{}

// RegisterPlotter registers a plotter type.
func RegisterPlotter(name, doc string, required, optional []Roles, newFun func(data Data) (Plotter, error)) {
	Plotters[name] = PlotterType{Name: name, Doc: doc, Required: required, Optional: optional, New: newFun}
}

// PlotterByType returns [PlotterType] info for a registered [Plotter]
// of given type name, e.g., "Smooth", or an error if not found.
func PlotterByType(typeName string) (*PlotterType, error) {
	pt, ok := Plotters[typeName]
	if !ok {
		return nil, fmt.Errorf("plot.PlotterByType type name is not registered: %s", typeName)
	}
	return &pt, nil
}

// PlotterNames returns the sorted names of the registered plotters.
func PlotterNames() []string {
	nms := make([]string, 0, len(Plotters))
	for nm := range Plotters {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// CheckRoles returns an error if the data is missing any of the Required
// roles of this plotter type.
func (pt *PlotterType) CheckRoles(data Data) error {
	for _, rl := range pt.Required {
		if _, ok := data[rl]; !ok {
			return fmt.Errorf("plot.%s: required data role %s is missing", pt.Name, rl)
		}
	}
	for rl := range data {
		if !slices.Contains(pt.Required, rl) && !slices.Contains(pt.Optional, rl) {
			return fmt.Errorf("plot.%s: data role %s is not used by this plotter", pt.Name, rl)
		}
	}
	return nil
}

// NewPlotter returns a new [Plotter] of the given registered type,
// after checking the data roles.
func NewPlotter(typeName string, data Data) (Plotter, error) {
	pt, err := PlotterByType(typeName)
	if err != nil {
		return nil, err
	}
	if err := pt.CheckRoles(data); err != nil {
		return nil, err
	}
	return pt.New(data)
}
